package log

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/sirupsen/logrus"
)

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Level  string `config:"LOG_LEVEL" default:"info"`
	Format string `config:"LOG_FORMAT" default:"text"`
}

// Initialize builds the logger and registers it in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	logger, err := NewLogger(il.Level, il.Format)
	if err != nil {
		return ctx, err
	}
	depend.Register(logger)
	return ctx, nil
}

// NewLogger creates a logrus logger writing to stdout. format is "text" or "json".
func NewLogger(level, format string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	logger.SetLevel(parsedLevel)

	switch strings.ToLower(format) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: expected text or json", format)
	}
	return logger, nil
}
