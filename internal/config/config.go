package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdem-server/internal/util"
)

// Config provides configuration for the hold'em table server
type Config struct {
	loaded bool

	Addr  string `yaml:"addr" envconfig:"addr"`
	Table struct {
		Seats         int `yaml:"seats" envconfig:"seats"`
		BigBlind      int `yaml:"bigBlind" envconfig:"big_blind"`
		StartingStack int `yaml:"startingStack" envconfig:"starting_stack"`
	}
	Log struct {
		Level             string `yaml:"level" envconfig:"log_level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	var c Config
	c.Addr = ":5000"
	c.Table.Seats = 8
	c.Table.BigBlind = 50
	c.Table.StartingStack = 1500
	return c
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration.
// The YAML file is optional; environment variables always apply on top.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("holdem", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
