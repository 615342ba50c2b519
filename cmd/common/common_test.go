package common

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/danieldk/projector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("disk on fire")))
	assert.Equal(t, ExitDataError, ExitCode(fmt.Errorf("reading: %w", projector.ErrNoConsistentVectors)))
	assert.Equal(t, ExitConfigError, ExitCode(projector.ErrUnknownEncoding))
	assert.Equal(t, ExitConfigError, ExitCode(&ConfigError{Err: errors.New("bad")}))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLogger(&buf, "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.WithField("action", "test").Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "action=test")

	_, err = NewLogger(&buf, "loud")
	assert.Equal(t, ExitConfigError, ExitCode(err))
}
