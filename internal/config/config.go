package config

import (
	"fmt"
	"time"

	"github.com/plantimetable/calstream/errs"
	"github.com/plantimetable/calstream/format"
)

type FetchConfig struct {
	URL            string        `yaml:"url"`
	Timeout        time.Duration `yaml:"timeout"`
	UserAgent      string        `yaml:"userAgent"`
	AcceptEncoding []string      `yaml:"acceptEncoding"`
}

type SourceConfig struct {
	DB  string `yaml:"db"`
	CSV string `yaml:"csv"`
}

type EncodeConfig struct {
	Compression string `yaml:"compression"`
	BareTokens  bool   `yaml:"bareTokens"`
}

type RenderConfig struct {
	HideTotals bool `yaml:"hideTotals"`
}

type Config struct {
	LogLevel string       `yaml:"logLevel"`
	Fetch    FetchConfig  `yaml:"fetch"`
	Source   SourceConfig `yaml:"source"`
	Encode   EncodeConfig `yaml:"encode"`
	Render   RenderConfig `yaml:"render"`
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Fetch: FetchConfig{
			Timeout:        30 * time.Second,
			UserAgent:      "calstream",
			AcceptEncoding: []string{"zstd", "s2", "lz4", "identity"},
		},
		Source: SourceConfig{
			DB: "calstream.db",
		},
		Encode: EncodeConfig{
			Compression: "identity",
			BareTokens:  true,
		},
	}
}

// Validate checks values that would otherwise fail deep inside a command.
func (c *Config) Validate() error {
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("%w: fetch.timeout must be positive, got %s", errs.ErrInvalidConfig, c.Fetch.Timeout)
	}

	for _, enc := range c.Fetch.AcceptEncoding {
		if _, err := format.ParseCompression(enc); err != nil {
			return fmt.Errorf("%w: fetch.acceptEncoding: %w", errs.ErrInvalidConfig, err)
		}
	}

	if _, err := format.ParseCompression(c.Encode.Compression); err != nil {
		return fmt.Errorf("%w: encode.compression: %w", errs.ErrInvalidConfig, err)
	}

	return nil
}
