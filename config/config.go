package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/neurofleetx/fleetops/core/metrics"
	"github.com/neurofleetx/fleetops/core/sim"
	"github.com/neurofleetx/fleetops/infra/mqtt"
	"github.com/neurofleetx/fleetops/infra/store"
)

// Config is the root service configuration.
type Config struct {
	Store     store.Config   `json:"store"`
	MQTT      mqtt.Config    `json:"mqtt"`
	Metrics   metrics.Config `json:"metrics"`
	Simulator sim.Config     `json:"simulator"`
}

// Load reads the configuration file (yaml or json by extension) and applies
// FLEET_ environment overrides, with "__" separating nested keys.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("FLEET_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "fleet_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Store.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Simulator.SetDefaults()
	if err := cfg.Store.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Simulator.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
