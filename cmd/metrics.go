package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/wmo-im/wiscat/pkg/wis2"
)

// MetricsCommand creates the WIS2 metrics command group, analyses that run
// over a directory of WCMP2 records extracted from a GDC archive.
func MetricsCommand() *cli.Command {
	return &cli.Command{
		Name:  "metrics",
		Usage: "Run metrics against an extracted WIS2 GDC archive",
		Commands: []*cli.Command{
			dataPolicyCommand("core", "Analyze core records"),
			dataPolicyCommand("recommended", "Analyze recommended records"),
			earthSystemDisciplineCommand(),
			metricsKPICommand(),
		},
	}
}

func dataPolicyCommand(policy, usage string) *cli.Command {
	return &cli.Command{
		Name:      policy,
		Usage:     usage,
		ArgsUsage: "ARCHIVE_DIR",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one archive directory")
			}

			report, err := wis2.AnalyzeDataPolicy(c.Args().First(), policy)
			if err != nil {
				return err
			}
			return echoJSON(report)
		},
	}
}

func earthSystemDisciplineCommand() *cli.Command {
	return &cli.Command{
		Name:      "earth-system-discipline",
		Usage:     "Analyze Earth system disciplines",
		ArgsUsage: "ARCHIVE_DIR",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one archive directory")
			}

			report, err := wis2.AnalyzeEarthSystemDiscipline(c.Args().First())
			if err != nil {
				return err
			}
			return echoJSON(report)
		},
	}
}

func metricsKPICommand() *cli.Command {
	return &cli.Command{
		Name:      "kpi",
		Usage:     "Analyze Key Performance Indicators (KPIs)",
		ArgsUsage: "CENTRE_ID ARCHIVE_DIR",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 2 {
				return fmt.Errorf("expected a centre identifier and an archive directory")
			}
			centreID := c.Args().Get(0)
			archiveDir := c.Args().Get(1)

			report, err := wis2.AnalyzeKPI(archiveDir, centreID)
			if err != nil {
				return err
			}
			return echoJSON(map[string]*wis2.KPIReport{centreID: report})
		},
	}
}
