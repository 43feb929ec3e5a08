package app

import (
	"encoding/json"
	"os"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
)

// Config holds the host-side configuration: grid dimensions, pixel scale,
// initial fill rate, generation cadence and RNG seed. A zero seed means
// "seed from the clock".
type Config struct {
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Scale    int           `json:"scale"`
	FillRate float64       `json:"fill_rate"`
	Interval time.Duration `json:"interval"`
	Seed     int64         `json:"seed"`
}

// DefaultConfig returns the historical defaults: a 640x480 output window at
// scale 4 with a 10% initial fill, advancing every half second.
func DefaultConfig() *Config {
	return &Config{
		Width:    160,
		Height:   120,
		Scale:    4,
		FillRate: 0.1,
		Interval: 500 * time.Millisecond,
		Seed:     0,
	}
}

// LoadConfig loads configuration from a JSON file, starting from defaults.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %v", filename)
	}

	if err = json.Unmarshal(data, config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %v", filename)
	}

	return config, nil
}

// RegisterFlags attaches the configuration to the global flaggy parser.
func (c *Config) RegisterFlags() {
	flaggy.Int(&c.Width, "x", "width", "grid width in cells")
	flaggy.Int(&c.Height, "y", "height", "grid height in cells")
	flaggy.Int(&c.Scale, "c", "scale", "pixels per cell")
	flaggy.Float64(&c.FillRate, "f", "fill", "initial probability that a cell starts alive")
	flaggy.Duration(&c.Interval, "i", "interval", "time between generations, for example 500ms")
	flaggy.Int64(&c.Seed, "s", "seed", "RNG seed, 0 seeds from the clock")
}

// ResolveSeed returns the configured seed, substituting the clock when unset.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
