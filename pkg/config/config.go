// Package config loads wiscat configuration from an optional TOML file,
// falling back to built-in defaults. The GDC base URL can additionally be
// overridden through the WISCAT_GDC_URL environment variable; the resolved
// value is passed explicitly to the wis2 client rather than read from
// process state elsewhere.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultGDCURL is the WIS2 Global Discovery Catalogue collection queried
	// when no configuration or environment override is present.
	DefaultGDCURL = "https://api.weather.gc.ca/collections/wis2-discovery-metadata"

	// DefaultCatalogueURL is the WIS 1.0 catalogue archive downloaded by
	// `wiscat catalogue cache`.
	DefaultCatalogueURL = "https://gisc.dwd.de/oaidownload/wis-catalogue.tar.gz"

	// EnvGDCURL overrides the GDC collection URL when set.
	EnvGDCURL = "WISCAT_GDC_URL"
)

type Config struct {
	GDCURL       string   `toml:"gdc_url"`
	CatalogueURL string   `toml:"catalogue_url"`
	HTTPTimeout  Duration `toml:"http_timeout"`
}

// Duration wraps time.Duration so TOML values can be written as "30s".
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// GetDefaultConfigPath returns the per-user config file location.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting user config directory: %w", err)
	}
	return filepath.Join(configDir, "wiscat", "config.toml"), nil
}

// GetDefaultConfig returns the built-in defaults.
func GetDefaultConfig() *Config {
	return &Config{
		GDCURL:       DefaultGDCURL,
		CatalogueURL: DefaultCatalogueURL,
		HTTPTimeout:  Duration{30 * time.Second},
	}
}

// LoadConfig reads the config file at configPath, applying defaults for
// unset values. A missing file is not an error; defaults are returned.
// WISCAT_GDC_URL, when set, wins over both the file and the default.
func LoadConfig(configPath string) (*Config, error) {
	config := GetDefaultConfig()

	if data, err := os.ReadFile(configPath); err == nil {
		var fileConfig Config
		if err := toml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("unmarshaling config: %w", err)
		}
		if fileConfig.GDCURL != "" {
			config.GDCURL = fileConfig.GDCURL
		}
		if fileConfig.CatalogueURL != "" {
			config.CatalogueURL = fileConfig.CatalogueURL
		}
		if fileConfig.HTTPTimeout.Duration != 0 {
			config.HTTPTimeout = fileConfig.HTTPTimeout
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if url := os.Getenv(EnvGDCURL); url != "" {
		config.GDCURL = url
	}

	return config, nil
}
