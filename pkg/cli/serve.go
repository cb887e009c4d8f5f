package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/softwarewrighter/system-monitor/pkg/report"
	"github.com/softwarewrighter/system-monitor/pkg/server"
	"github.com/softwarewrighter/system-monitor/pkg/version"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "path to YAML config file",
		Sources: cli.EnvVars("SYSMON_CONFIG"),
	}

	portFlag = &cli.IntFlag{
		Name:    "port",
		Aliases: []string{"p"},
		Usage:   "listen port (overrides config file and PORT)",
	}
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the metrics HTTP server",
		Flags:                 []cli.Flag{configFlag, portFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := server.LoadConfig(cmd.String("config"))
			if err != nil {
				return err
			}
			if port := int(cmd.Int("port")); port > 0 {
				cfg.Port = port
			}
			cfg.Name = "sysmond"
			cfg.Version = version.Version

			c := report.NewCollector(newMonitor(cmd), report.WithVersion(version.Version))

			return server.New(
				server.WithConfig(cfg),
				server.WithCollector(c),
			).Run(ctx)
		},
	}
}
