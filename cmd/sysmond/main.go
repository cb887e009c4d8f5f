package main

import (
	"log"

	"github.com/softwarewrighter/system-monitor/pkg/server"
)

func main() {
	if err := server.Serve(); err != nil {
		log.Fatal(err)
	}
}
