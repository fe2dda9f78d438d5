package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the toolkit.
type Config struct {
	AppName     string
	Environment string
	LogLevel    string
	LogEncoding string
}

// Load reads settings from the environment and, when configFile is set, from that file.
// Environment variables win over file values.
func Load(configFile string) (Config, error) {
	v := viper.New()
	v.SetDefault("APP_NAME", "tienda")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_ENCODING", "console")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg := Config{
		AppName:     strings.TrimSpace(v.GetString("APP_NAME")),
		Environment: strings.TrimSpace(v.GetString("APP_ENV")),
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		LogEncoding: strings.ToLower(strings.TrimSpace(v.GetString("LOG_ENCODING"))),
	}

	if cfg.AppName == "" {
		cfg.AppName = "tienda"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	switch cfg.LogEncoding {
	case "":
		cfg.LogEncoding = "console"
	case "json", "console":
		// supported
	default:
		return Config{}, fmt.Errorf("unsupported log encoding: %s", cfg.LogEncoding)
	}

	return cfg, nil
}
