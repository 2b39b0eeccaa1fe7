package config

import (
	"os"

	"updownriver-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the Up and Down the River server
type Config struct {
	loaded bool

	// PGDSN enables the finished-game archive when set
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`

	Log struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`

	Game struct {
		MinPlayers int  `yaml:"minPlayers" envconfig:"min_players"`
		MaxPlayers int  `yaml:"maxPlayers" envconfig:"max_players"`
		DealerHook bool `yaml:"dealerHook" envconfig:"dealer_hook"`
	} `yaml:"game"`
}

var config Config

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	var c Config
	c.MigrationsPath = "./sql"
	c.Game.MinPlayers = 2
	c.Game.MaxPlayers = 6

	return c
}

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
// A missing config file is fine; defaults plus environment apply
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("UDR_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("udr", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
