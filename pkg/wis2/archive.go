package wis2

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wmo-im/wiscat/pkg/archive"
)

// DownloadArchive locates the rel=archives link on the collection document,
// downloads the referenced payload (zip or gzipped tar) and extracts it
// under outDir.
func (c *Client) DownloadArchive(ctx context.Context, outDir string) error {
	logger.Debugf("fetching collection information from %s", c.baseURL)

	body, err := c.get(ctx, c.baseURL, nil)
	if err != nil {
		return err
	}

	var collection struct {
		Links []Link `json:"links"`
	}
	if err := json.Unmarshal(body, &collection); err != nil {
		return fmt.Errorf("decoding collection document: %w", err)
	}

	var archiveLink string
	for _, link := range collection.Links {
		if link.Rel == "archives" {
			archiveLink = link.Href
			break
		}
	}
	if archiveLink == "" {
		return fmt.Errorf("collection %s has no archives link", c.baseURL)
	}

	logger.Debugf("fetching metadata archive from %s", archiveLink)
	payload, err := c.get(ctx, archiveLink, nil)
	if err != nil {
		return err
	}

	logger.Debugf("extracting archive to %s", outDir)
	if err := archive.Extract(payload, outDir); err != nil {
		return fmt.Errorf("extracting archive: %w", err)
	}

	return nil
}
