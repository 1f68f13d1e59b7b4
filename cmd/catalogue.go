package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/wmo-im/wiscat/pkg/config"
	"github.com/wmo-im/wiscat/pkg/wis1"
)

// CatalogueCommand creates the WIS 1.0 catalogue command group.
func CatalogueCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalogue",
		Usage: "WIS 1.0 catalogue functions",
		Commands: []*cli.Command{
			catalogueCacheCommand(),
			catalogueSearchCommand(),
		},
	}
}

func catalogueCacheCommand() *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Cache a local copy of the catalogue",
		Flags: []cli.Flag{
			directoryFlag(true),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			timeout := cfg.HTTPTimeout.Duration
			if timeout == 0 {
				timeout = 30 * time.Second
			}

			fmt.Println("Caching WIS 1.0 Catalogue")
			if err := wis1.CacheCatalogue(cfg.CatalogueURL, c.String("directory"), timeout); err != nil {
				return err
			}
			fmt.Println("Done")
			return nil
		},
	}
}

func catalogueSearchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search terms in the catalogue (local directory with metadata XML)",
		Flags: []cli.Flag{
			directoryFlag(true),
			termsFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			results, err := wis1.SearchFilesByTerm(
				c.String("directory"), c.StringSlice("term"), wis1.PolicyAbort)
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Println("No results")
				return nil
			}
			return echoJSON(results)
		},
	}
}
