package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriterLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Str("file", "a.sparse").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"file":"a.sparse"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestNewWriterDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWriter(&buf, "")
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewWriterBadLevel(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, "loud")
	require.Error(t, err)
}
