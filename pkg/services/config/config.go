package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config selects the dataset the web server serves. When Registry is set the
// store comes from the named profile in that file; otherwise a synthetic
// dataset is generated from Records/Seed.
type Config struct {
	Registry string `mapstructure:"registry"`
	Profile  string `mapstructure:"profile"`
	Records  int    `mapstructure:"records"`
	Seed     int64  `mapstructure:"seed"`
}

func Default() *Config {
	return &Config{Profile: "default"}
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("profile", "default")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse dataset config: %w", err)
	}
	return &cfg, nil
}
