package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the startup defaults for the player
type Config struct {
	TickRate time.Duration `json:"tick_rate"`
	CellSize int           `json:"cell_size"`
	Color    int           `json:"color"`
	OffsetX  int           `json:"offset_x"`
	OffsetY  int           `json:"offset_y"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		TickRate: time.Second,
		CellSize: 1,
		Color:    0,
		OffsetX:  0,
		OffsetY:  0,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
