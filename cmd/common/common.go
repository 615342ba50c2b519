// Package common holds the configuration, logging and exit code handling
// shared by the go2projector commands.
package common

import (
	"errors"
	"fmt"
	"io"

	"github.com/danieldk/projector"
	"github.com/sirupsen/logrus"
)

// Exit codes
const (
	ExitSuccess     = 0 // Success, possibly with warnings
	ExitError       = 1 // General error (I/O failure, bad arguments)
	ExitConfigError = 2 // Invalid configuration or options
	ExitDataError   = 3 // No usable vectors in the input
)

// ExitCode maps a command error to a process exit status.
func ExitCode(err error) int {
	var cfgErr *ConfigError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, projector.ErrNoConsistentVectors):
		return ExitDataError
	case errors.Is(err, projector.ErrInvalidOptions),
		errors.Is(err, projector.ErrUnknownEncoding),
		errors.As(err, &cfgErr):
		return ExitConfigError
	default:
		return ExitError
	}
}

// NewLogger creates a text logger at the given level.
func NewLogger(out io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("log level: %w", err)}
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	return logger, nil
}
