package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/buscaminas/internal/config"
)

// New builds the process logger. Entries go to out as text and, when
// cfg.File is set, to a size-rotated JSON log file as well. Pass io.Discard
// as out to keep the terminal clean.
func New(cfg config.LogConfig, development bool, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(out)

	level, err := Level(cfg.Level, development)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	log.SetFormatter(&logrus.TextFormatter{ForceColors: development})

	if cfg.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to open log file %s: %w", cfg.File, err)
		}
		log.AddHook(hook)
	}

	return log, nil
}

// Level parses name, falling back to debug in development and info
// otherwise when name is empty.
func Level(name string, development bool) (logrus.Level, error) {
	if name == "" {
		if development {
			return logrus.DebugLevel, nil
		}
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
