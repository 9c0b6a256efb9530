package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// TypesGroupingConfig controls whether large namespaces get per-kind
// subdirectories (Classes/, Structs/, ...) in the output tree.
type TypesGroupingConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	MinCount int  `mapstructure:"minCount"`
}

type Config struct {
	YamlPath          string              `mapstructure:"yamlPath"`
	OutputPath        string              `mapstructure:"outputPath"`
	IndexSlug         string              `mapstructure:"indexSlug"`
	TypesGrouping     TypesGroupingConfig `mapstructure:"typesGrouping"`
	BrNewline         string              `mapstructure:"brNewline"`
	ForceNewline      bool                `mapstructure:"forceNewline"`
	ForcedNewline     string              `mapstructure:"forcedNewline"`
	RewriteInterlinks bool                `mapstructure:"rewriteInterlinks"`
}

// DefaultPath returns the config file path, honoring the DFMG_CONFIG override.
func DefaultPath() string {
	if p := os.Getenv("DFMG_CONFIG"); p != "" {
		return p
	}
	return "./config.yaml"
}

// Load reads the config file at path and applies defaults and the
// DFMG_YAML_PATH / DFMG_OUTPUT_PATH environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("indexSlug", "/api")
	v.SetDefault("typesGrouping.enabled", false)
	v.SetDefault("typesGrouping.minCount", 12)
	v.SetDefault("brNewline", "\n\n")
	v.SetDefault("forceNewline", false)
	v.SetDefault("forcedNewline", "  \n")
	v.SetDefault("rewriteInterlinks", false)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var config Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &config,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if p := os.Getenv("DFMG_YAML_PATH"); p != "" {
		config.YamlPath = p
	}
	if p := os.Getenv("DFMG_OUTPUT_PATH"); p != "" {
		config.OutputPath = p
	}

	if config.YamlPath == "" {
		return nil, fmt.Errorf("config %s: yamlPath is required", path)
	}
	if config.OutputPath == "" {
		return nil, fmt.Errorf("config %s: outputPath is required", path)
	}

	return &config, nil
}
