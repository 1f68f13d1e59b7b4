package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/wmo-im/wiscat/pkg/render"
	"github.com/wmo-im/wiscat/pkg/wis2"
)

// GDCCommand creates the WIS2 Global Discovery Catalogue command group.
func GDCCommand() *cli.Command {
	return &cli.Command{
		Name:  "gdc",
		Usage: "Query a WIS2 Global Discovery Catalogue",
		Commands: []*cli.Command{
			gdcSearchCommand(),
			gdcGetCommand(),
		},
	}
}

func gdcSearchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the WIS2 GDC",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Full text query",
			},
			&cli.StringFlag{
				Name:    "bbox",
				Aliases: []string{"b"},
				Usage:   "Bounding box filter (minx,miny,maxx,maxy)",
			},
			&cli.StringFlag{
				Name:  "begin",
				Usage: "Begin of the time range (RFC3339)",
			},
			&cli.StringFlag{
				Name:  "end",
				Usage: "End of the time range (RFC3339)",
			},
			&cli.StringFlag{
				Name:  "sortby",
				Usage: "Sort property and direction (prop[:A|D], default A)",
			},
			&cli.StringFlag{
				Name:  "centre-id",
				Usage: "Centre identifier to filter on",
			},
			&cli.StringFlag{
				Name:  "data-policy",
				Usage: "Data policy filter (core or recommended)",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of results",
			},
			&cli.IntFlag{
				Name:  "offset",
				Usage: "Result offset for pagination",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if policy := c.String("data-policy"); policy != "" &&
				policy != "core" && policy != "recommended" {
				return fmt.Errorf("invalid data policy %q (expected core or recommended)", policy)
			}

			client, err := loadedClient(c)
			if err != nil {
				return err
			}

			opts := wis2.SearchOptions{
				Query:      c.String("query"),
				BBox:       c.String("bbox"),
				Begin:      c.String("begin"),
				End:        c.String("end"),
				SortBy:     c.String("sortby"),
				CentreID:   c.String("centre-id"),
				DataPolicy: c.String("data-policy"),
				Limit:      int(c.Int("limit")),
				Offset:     int(c.Int("offset")),
			}

			fmt.Println("\nQuerying WIS2 GDC ...")
			results, err := client.Search(ctx, opts)
			if err != nil {
				return fmt.Errorf("could not query catalogue: %w", err)
			}

			plural := "s"
			if results.Matched == 1 {
				plural = ""
			}
			fmt.Printf("\nResults: %d record%s\n", results.Matched, plural)

			if len(results.Records) == 0 {
				return nil
			}

			fmt.Println(render.ResultsTable(results))
			return nil
		},
	}
}

func gdcGetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Get a WIS2 GDC record by identifier",
		ArgsUsage: "IDENTIFIER",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one record identifier")
			}

			client, err := loadedClient(c)
			if err != nil {
				return err
			}

			fmt.Println("\nQuerying WIS2 GDC ...")
			record, err := client.GetRecord(ctx, c.Args().First())
			if errors.Is(err, wis2.ErrNotFound) {
				return fmt.Errorf("record identifier not found")
			}
			if err != nil {
				return err
			}

			fmt.Println(renderRecordDetail(record))
			return nil
		},
	}
}
