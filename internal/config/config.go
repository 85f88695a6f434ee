// Package config loads SDK embedding configuration from an optional
// YAML file layered under TESSERO_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server ServerConfig `koanf:"server"`
	API    APIConfig    `koanf:"api"`
	Widget WidgetConfig `koanf:"widget"`
}

type ServerConfig struct {
	Port int `koanf:"port"`
}

type APIConfig struct {
	// BaseURL is the recommendation API root. The default, /api, only
	// works when the embedding proxies the API; standalone embeddings
	// set an absolute URL.
	BaseURL string `koanf:"base_url"`

	// UserID, when set, is passed to Initialize. Empty selects
	// anonymous mode.
	UserID string `koanf:"user_id"`
}

type WidgetConfig struct {
	Count      int      `koanf:"count"`
	Categories []string `koanf:"categories"`
	Location   string   `koanf:"location"`
}

// Load reads the optional YAML file at path (skipped when path is empty
// or missing), then overlays environment variables. TESSERO_API__BASE_URL
// maps to api.base_url.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load config file %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider("TESSERO_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "TESSERO_")), "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	// Default values
	if !k.Exists("server.port") {
		k.Set("server.port", 8080)
	}
	if !k.Exists("api.base_url") {
		k.Set("api.base_url", "/api")
	}
	if !k.Exists("widget.count") {
		k.Set("widget.count", 10)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
