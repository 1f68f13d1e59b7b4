package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// ArchiveCommand creates the WIS2 archive command group.
func ArchiveCommand() *cli.Command {
	return &cli.Command{
		Name:  "archive",
		Usage: "Archive utilities against a WIS2 GDC",
		Commands: []*cli.Command{
			archiveGetCommand(),
		},
	}
}

func archiveGetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Download and extract the metadata archive",
		ArgsUsage: "OUTPUT_DIR",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one output directory")
			}
			outputDir := c.Args().First()

			client, err := loadedClient(c)
			if err != nil {
				return err
			}

			fmt.Printf("Downloading and extracting metadata archive to %s\n", outputDir)
			if err := client.DownloadArchive(ctx, outputDir); err != nil {
				return err
			}
			fmt.Println("Done")
			return nil
		},
	}
}
