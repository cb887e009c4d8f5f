package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/softwarewrighter/system-monitor/pkg/report"
	"github.com/softwarewrighter/system-monitor/pkg/serializer"
	"github.com/softwarewrighter/system-monitor/pkg/version"
)

var (
	intervalFlag = &cli.DurationFlag{
		Name:    "interval",
		Aliases: []string{"i"},
		Value:   5 * time.Second,
		Usage:   "delay between captures",
	}

	countFlag = &cli.IntFlag{
		Name:    "count",
		Aliases: []string{"n"},
		Usage:   "stop after this many captures (default: run until interrupted)",
	}
)

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:                  "report",
		EnableShellCompletion: true,
		Usage:                 "Capture all four metric views in a single report",
		Flags:                 []cli.Flag{outputFlag, formatFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseFormat(cmd)
			if err != nil {
				return err
			}

			c := report.NewCollector(newMonitor(cmd), report.WithVersion(version.Version))
			rep, err := c.Collect(ctx)
			if err != nil {
				return err
			}

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer w.Close()

			return w.Serialize(rep)
		},
	}
}

func watchCmd() *cli.Command {
	return &cli.Command{
		Name:                  "watch",
		EnableShellCompletion: true,
		Usage:                 "Capture reports on an interval until interrupted",
		Flags:                 []cli.Flag{outputFlag, formatFlag, intervalFlag, countFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseFormat(cmd)
			if err != nil {
				return err
			}

			c := report.NewCollector(newMonitor(cmd), report.WithVersion(version.Version))

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer w.Close()

			interval := cmd.Duration("interval")
			limit := int(cmd.Int("count"))

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			// First capture is immediate, subsequent ones on ticker ticks.
			for captured := 0; ; {
				rep, err := c.Collect(ctx)
				if err != nil {
					return err
				}
				if err := w.Serialize(rep); err != nil {
					return err
				}

				captured++
				if limit > 0 && captured >= limit {
					return nil
				}

				select {
				case <-ctx.Done():
					slog.Debug("watch stopped", "captures", captured)
					return nil
				case <-ticker.C:
				}
			}
		},
	}
}
