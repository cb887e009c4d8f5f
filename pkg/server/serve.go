package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/softwarewrighter/system-monitor/pkg/logging"
	"github.com/softwarewrighter/system-monitor/pkg/version"
)

// Serve is the standalone daemon entry point. It wires logging, loads
// configuration from SYSMON_CONFIG (optional) and the environment, and runs
// the server until SIGINT or SIGTERM.
func Serve() error {
	logging.SetDefaultStructuredLogger("sysmond", version.Version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := LoadConfig(os.Getenv("SYSMON_CONFIG"))
	if err != nil {
		return err
	}
	cfg.Name = "sysmond"
	cfg.Version = version.Version

	return New(WithConfig(cfg)).Run(ctx)
}
