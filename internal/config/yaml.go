package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAMLConfig loads filename in YAML format into cfg.
func LoadYAMLConfig(filename string, cfg any) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", filename, err)
	}

	return nil
}

// Load returns the defaults overlaid with the YAML file at configPath. An
// empty path returns the validated defaults.
func Load(configPath string) (*Config, error) {
	conf := Default()

	if configPath != "" {
		if err := LoadYAMLConfig(configPath, conf); err != nil {
			return nil, err
		}
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}
