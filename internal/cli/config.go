// Package cli implements the logic behind the notate commands, keeping
// the cobra layer thin.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// RedisConfig configures the optional render cache.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
	Prefix   string        `mapstructure:"prefix"`
}

// ServeConfig configures the rendering service.
type ServeConfig struct {
	Port  string      `mapstructure:"port"`
	Redis RedisConfig `mapstructure:"redis"`
	Packs []string    `mapstructure:"packs"`
}

// DefaultServeConfig returns the serve defaults: port 8080, no cache,
// no extra packs.
func DefaultServeConfig() *ServeConfig {
	return &ServeConfig{Port: "8080"}
}

// LoadServeConfig reads a YAML config file over the defaults. The YAML
// is decoded loosely and mapped through mapstructure so durations can
// be written as "5m".
func LoadServeConfig(path string) (*ServeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg := DefaultServeConfig()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      cfg,
		ErrorUnused: true,
		DecodeHook:  mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
