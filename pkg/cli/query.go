package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/softwarewrighter/system-monitor/pkg/monitor"
	"github.com/softwarewrighter/system-monitor/pkg/serializer"
)

func systemCmd() *cli.Command {
	return &cli.Command{
		Name:                  "system",
		EnableShellCompletion: true,
		Usage:                 "Show system identity, core count, memory totals, and uptime",
		Flags:                 []cli.Flag{outputFlag, formatFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runQuery(cmd, func(m *monitor.Monitor) any {
				return m.SystemInfo()
			})
		},
	}
}

func memoryCmd() *cli.Command {
	return &cli.Command{
		Name:                  "memory",
		EnableShellCompletion: true,
		Usage:                 "Show physical memory usage",
		Flags:                 []cli.Flag{outputFlag, formatFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runQuery(cmd, func(m *monitor.Monitor) any {
				return m.MemoryInfo()
			})
		},
	}
}

func disksCmd() *cli.Command {
	return &cli.Command{
		Name:                  "disks",
		EnableShellCompletion: true,
		Usage:                 "List mounted volumes with capacity and usage",
		Flags:                 []cli.Flag{outputFlag, formatFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runQuery(cmd, func(m *monitor.Monitor) any {
				return m.ListDisks()
			})
		},
	}
}

func cpuCmd() *cli.Command {
	return &cli.Command{
		Name:                  "cpu",
		EnableShellCompletion: true,
		Usage:                 "Show per-core usage and frequency",
		Flags:                 []cli.Flag{outputFlag, formatFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runQuery(cmd, func(m *monitor.Monitor) any {
				return m.CPUInfo()
			})
		},
	}
}

// runQuery executes one metric read and serializes it to the configured
// destination.
func runQuery(cmd *cli.Command, read func(*monitor.Monitor) any) error {
	outFormat, err := parseFormat(cmd)
	if err != nil {
		return err
	}

	w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer w.Close()

	return w.Serialize(read(newMonitor(cmd)))
}
