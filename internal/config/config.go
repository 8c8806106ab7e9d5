package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/buscaminas/internal/mines"
)

type Duration struct{ time.Duration }

// [Duration] implements [json.Marshaler]
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Accepts either a duration string ("15s") or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		return err
	default:
		return errors.New("invalid duration")
	}
}

type BoardConfig struct {
	Rows  int     `json:"rows"`
	Cols  int     `json:"cols"`
	Mines int     `json:"mines"`
	Seed  *uint64 `json:"seed,omitempty"`
}

// Options turns the seed, if any, into board options.
func (b BoardConfig) Options() []mines.Option {
	if b.Seed == nil {
		return nil
	}
	return []mines.Option{mines.WithSeed(*b.Seed)}
}

type LogConfig struct {
	Level      string `json:"level"`
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode            string      `json:"mode"`
	Addr            string      `json:"addr"`
	BasePath        string      `json:"base_path"`
	ShutdownTimeout Duration    `json:"shutdown_timeout"`
	Board           BoardConfig `json:"board"`
	Log             LogConfig   `json:"log"`
}

func Default() Config {
	return Config{
		Mode:            "production",
		Addr:            ":8080",
		ShutdownTimeout: Duration{15 * time.Second},
		Board: BoardConfig{
			Rows:  9,
			Cols:  9,
			Mines: 10,
		},
		Log: LogConfig{
			Level:      "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Read overlays the JSON file at path onto config. Fields missing from the
// file keep their current values.
func Read(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else if err := json.Unmarshal(b, config); err != nil {
		return fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv lets the environment override the file.
func (c *Config) ApplyEnv() {
	if _, ok := os.LookupEnv("DEVELOPMENT"); ok {
		if Development() {
			c.Mode = "development"
		} else {
			c.Mode = "production"
		}
	}
	if port := Port(); port != "" {
		c.Addr = port
	}
	if basePath := BasePath(); basePath != "" {
		c.BasePath = basePath
	}
}

func (c Config) Validate() error {
	if err := mines.ValidateParams(c.Board.Rows, c.Board.Cols, c.Board.Mines); err != nil {
		return fmt.Errorf("invalid board config: %w", err)
	}
	if c.ShutdownTimeout.Duration < 0 {
		return errors.New("shutdown timeout cannot be negative")
	}
	return nil
}

func (c Config) Fields() logrus.Fields {
	fields := logrus.Fields{
		"mode":             c.Mode,
		"addr":             c.Addr,
		"base_path":        c.BasePath,
		"shutdown_timeout": c.ShutdownTimeout.String(),
		"board_rows":       c.Board.Rows,
		"board_cols":       c.Board.Cols,
		"board_mines":      c.Board.Mines,
		"log_level":        c.Log.Level,
		"log_file":         c.Log.File,
	}
	if c.Board.Seed != nil {
		fields["board_seed"] = *c.Board.Seed
	}
	return fields
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}
