package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/softwarewrighter/system-monitor/pkg/logging"
	"github.com/softwarewrighter/system-monitor/pkg/monitor"
	"github.com/softwarewrighter/system-monitor/pkg/serializer"
	"github.com/softwarewrighter/system-monitor/pkg/version"
)

const name = "sysmon"

// Shared flags.
var (
	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Usage:   "log level (debug, info, warn, error)",
		Sources: cli.EnvVars("LOG_LEVEL"),
	}

	sandboxFlag = &cli.BoolFlag{
		Name:    "sandbox",
		Usage:   "use the no-access provider (placeholder values only)",
		Sources: cli.EnvVars("SYSMON_SANDBOX"),
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write output to file (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Value:   string(serializer.FormatJSON),
		Usage:   "output format (json, yaml, table)",
		Sources: cli.EnvVars("SYSMON_FORMAT"),
	}
)

// Root builds the sysmon command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "query host metrics: system identity, memory, disks, per-core CPU",
		Version: version.Version,
		Flags: []cli.Flag{
			logLevelFlag,
			sandboxFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version.Version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version.Version,
				"commit", version.Commit,
				"date", version.Date,
			)
			return ctx, nil
		},
		Commands: []*cli.Command{
			systemCmd(),
			memoryCmd(),
			disksCmd(),
			cpuCmd(),
			reportCmd(),
			watchCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the CLI with signal-based cancellation. Called by main.main.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Root().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newMonitor builds a Monitor honoring the global sandbox flag.
func newMonitor(cmd *cli.Command) *monitor.Monitor {
	if cmd.Bool("sandbox") {
		return monitor.New(monitor.WithSandbox())
	}
	return monitor.New()
}

// parseFormat resolves the format flag into a serializer format.
func parseFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}
