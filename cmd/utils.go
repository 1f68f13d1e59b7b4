package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/wmo-im/wiscat/pkg/config"
	"github.com/wmo-im/wiscat/pkg/wis1"
	"github.com/wmo-im/wiscat/pkg/wis2"
)

// loadFileList reads a JSON file containing a literal array of metadata
// file paths, the --file-list alternative to walking a directory.
func loadFileList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file list %s: %w", path, err)
	}

	var fileList []string
	if err := json.Unmarshal(data, &fileList); err != nil {
		return nil, fmt.Errorf("decoding file list %s: %w", path, err)
	}

	return fileList, nil
}

// resolveFileList yields the files to process from --file-list or
// --directory, whichever is set.
func resolveFileList(c *cli.Command) ([]string, error) {
	if fileListPath := c.String("file-list"); fileListPath != "" {
		return loadFileList(fileListPath)
	}
	if directory := c.String("directory"); directory != "" {
		fmt.Printf("Analyzing records in %s\n", directory)
		return wis1.CreateFileList(directory)
	}
	return nil, fmt.Errorf("missing --file-list or --directory option")
}

// loadedClient builds a GDC client from the resolved configuration.
func loadedClient(c *cli.Command) (*wis2.Client, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	timeout := cfg.HTTPTimeout.Duration
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return wis2.NewClient(cfg.GDCURL, timeout), nil
}

func directoryFlag(required bool) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "directory",
		Aliases:  []string{"d"},
		Usage:    "Directory with metadata files to process",
		Required: required,
	}
}

func fileListFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "file-list",
		Aliases: []string{"f"},
		Usage:   "File containing a JSON list of metadata files to process, alternative to -d",
	}
}

func termsFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:     "term",
		Aliases:  []string{"t"},
		Usage:    "Terms (sub-strings) to be searched in the metadata, case insensitive",
		Required: true,
	}
}

func groupFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "group",
		Aliases: []string{"g"},
		Usage:   "Group organizations by citation authority in the file identifier",
	}
}
