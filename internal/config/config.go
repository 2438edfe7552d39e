package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	AppleDataset  string `mapstructure:"apple_dataset" yaml:"apple_dataset"`
	GoogleDataset string `mapstructure:"google_dataset" yaml:"google_dataset"`
	NonASCIILimit int    `mapstructure:"non_ascii_limit" yaml:"non_ascii_limit"`
	TopN          int    `mapstructure:"top_n" yaml:"top_n"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.app-market-analysis/config.yaml, creating the
// directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".app-market-analysis")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("APPMARKET")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("apple_dataset", "data/AppleStore.csv")
	v.SetDefault("google_dataset", "data/googleplaystore.csv")
	v.SetDefault("non_ascii_limit", 3)
	v.SetDefault("top_n", 0)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".app-market-analysis")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
