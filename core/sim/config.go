package sim

import "fmt"

// Config holds the simulator's timing parameters.
type Config struct {
	// PeriodSeconds is the tick interval. The same value feeds the
	// distance integration (speed * period / 3600).
	PeriodSeconds int `json:"period_seconds"`
}

// SetDefaults applies the standard 5 second tick.
func (c *Config) SetDefaults() {
	if c.PeriodSeconds == 0 {
		c.PeriodSeconds = 5
	}
}

// Validate checks the tick period is usable.
func (c Config) Validate() error {
	if c.PeriodSeconds < 1 {
		return fmt.Errorf("period_seconds must be at least 1, got %d", c.PeriodSeconds)
	}
	return nil
}
