package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/wmo-im/wiscat/pkg/kpi"
	"github.com/wmo-im/wiscat/pkg/wis1"
)

// ReportCommand creates the WIS 1.0 reporting command group.
func ReportCommand() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "WIS 1.0 reporting functions",
		Commands: []*cli.Command{
			termsByOrgCommand(),
			recordsByOrgCommand(),
			reportKPICommand(),
		},
	}
}

// echoTally prints a one- or two-level organization tally, or "No results"
// when nothing was tallied.
func echoTally(files []string, byAuthority bool) error {
	if byAuthority {
		results := wis1.GroupByAuthority(files)
		if len(results) == 0 {
			fmt.Println("No results")
			return nil
		}
		return echoJSON(results)
	}

	results := wis1.GroupByOriginator(files)
	if len(results) == 0 {
		fmt.Println("No results")
		return nil
	}
	return echoJSON(results)
}

func termsByOrgCommand() *cli.Command {
	return &cli.Command{
		Name:  "terms-by-org",
		Usage: "Analyze term searches by organization",
		Flags: []cli.Flag{
			directoryFlag(false),
			fileListFlag(),
			termsFlag(),
			groupFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var files []string
			var err error

			if fileListPath := c.String("file-list"); fileListPath != "" {
				files, err = loadFileList(fileListPath)
			} else if directory := c.String("directory"); directory != "" {
				terms := c.StringSlice("term")
				fmt.Printf("Analyzing records in %s for terms %v\n", directory, terms)
				files, err = wis1.SearchFilesByTerm(directory, terms, wis1.PolicySkip)
			} else {
				return fmt.Errorf("missing --file-list or --directory option")
			}
			if err != nil {
				return err
			}

			return echoTally(files, c.Bool("group"))
		},
	}
}

func recordsByOrgCommand() *cli.Command {
	return &cli.Command{
		Name:  "records-by-org",
		Usage: "Report number of records by organization / originator",
		Flags: []cli.Flag{
			directoryFlag(false),
			fileListFlag(),
			groupFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			files, err := resolveFileList(c)
			if err != nil {
				return err
			}
			return echoTally(files, c.Bool("group"))
		},
	}
}

// kpiBrief is the condensed per-file result of a KPI run.
type kpiBrief struct {
	Identifier string  `json:"identifier"`
	Percentage float64 `json:"percentage"`
	Grade      string  `json:"grade,omitempty"`
}

func reportKPICommand() *cli.Command {
	return &cli.Command{
		Name:  "kpi",
		Usage: "KPI assessment of metadata files",
		Flags: []cli.Flag{
			directoryFlag(false),
			fileListFlag(),
			&cli.IntFlag{
				Name:    "kpi",
				Aliases: []string{"k"},
				Usage:   "KPI to run, default is all",
			},
			&cli.StringFlag{
				Name:    "output-format",
				Aliases: []string{"o"},
				Usage:   "Output format of the KPI results (brief, summary, full)",
				Value:   "brief",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			files, err := resolveFileList(c)
			if err != nil {
				return err
			}

			format := c.String("output-format")
			switch format {
			case "brief", "summary", "full":
			default:
				return fmt.Errorf("invalid output format %q (expected brief, summary or full)", format)
			}

			selected := int(c.Int("kpi"))
			results := map[string]any{}

			for _, path := range files {
				record, err := wis1.ParseRecord(path)
				if err != nil {
					return err
				}

				scored := kpi.EvaluateWIS1(record)

				if selected > 0 {
					score, err := scored.Select(selected)
					if err != nil {
						return err
					}
					if format == "brief" {
						results[path] = kpiBrief{
							Identifier: scored.Identifier,
							Percentage: score.Percentage,
						}
					} else {
						results[path] = score
					}
					continue
				}

				switch format {
				case "brief":
					results[path] = kpiBrief{
						Identifier: scored.Identifier,
						Percentage: scored.Summary.Percentage,
						Grade:      scored.Summary.Grade,
					}
				case "summary":
					results[path] = scored.Summary
				default:
					results[path] = scored
				}
			}

			return echoJSON(results)
		},
	}
}
