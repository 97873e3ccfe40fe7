package store

import "fmt"

// Config selects the vehicle store backend.
type Config struct {
	// Backend is one of "memory", "postgres" or "redis".
	Backend       string `json:"backend"`
	PostgresURL   string `json:"postgres_url"`
	RedisAddr     string `json:"redis_addr"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`
	// SeedDemoFleet populates the memory backend with the demo vehicles.
	SeedDemoFleet bool `json:"seed_demo_fleet"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "memory"
	}
}

// Validate checks mandatory fields per backend.
func (c Config) Validate() error {
	switch c.Backend {
	case "memory":
	case "postgres":
		if c.PostgresURL == "" {
			return fmt.Errorf("postgres backend requires postgres_url")
		}
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("redis backend requires redis_addr")
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Backend)
	}
	return nil
}
