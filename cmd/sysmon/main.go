package main

import (
	"github.com/softwarewrighter/system-monitor/pkg/cli"
)

func main() {
	cli.Execute()
}
