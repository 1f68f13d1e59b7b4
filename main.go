package main

import (
	"context"
	stdlog "log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wmo-im/wiscat/cmd"
	"github.com/wmo-im/wiscat/pkg/config"
	"github.com/wmo-im/wiscat/pkg/log"
)

func main() {
	app := &cli.Command{
		Name:  "wiscat",
		Usage: "Search and reporting tools for WMO WIS 1.0 and WIS2 metadata catalogues",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path",
				Value: getDefaultConfigPathOrExit(),
			},
			&cli.StringFlag{
				Name:    "verbosity",
				Aliases: []string{"v"},
				Usage:   "Logging verbosity (ERROR, WARNING, INFO, DEBUG)",
				Value:   "WARNING",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, log.SetVerbosity(c.String("verbosity"))
		},
		Commands: []*cli.Command{
			cmd.CatalogueCommand(),
			cmd.ReportCommand(),
			cmd.GDCCommand(),
			cmd.ArchiveCommand(),
			cmd.MetricsCommand(),
			cmd.VersionCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		stdlog.Fatal(err)
	}
}

func getDefaultConfigPathOrExit() string {
	path, err := config.GetDefaultConfigPath()
	if err != nil {
		stdlog.Fatalf("Failed to get default config path: %v", err)
	}
	return path
}
