package logging

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"trailers/inventory/internal/config"
)

// Setup configures the standard logrus logger. Output goes to stderr so that
// exported data on stdout is never interleaved with log lines.
func Setup(cfg config.LogConfig) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	formatter, err := newFormatter(cfg.Format)
	if err != nil {
		return err
	}

	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	log.SetFormatter(formatter)
	return nil
}

func newFormatter(format string) (log.Formatter, error) {
	switch format {
	case "", "text":
		return &log.TextFormatter{FullTimestamp: true}, nil
	case "json":
		return &log.JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
