package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_InfoLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, false)

	log.Debug().Msg("hidden")
	log.Info().Str("source", "bank.csv").Msg("imported")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "imported")
	assert.Contains(t, out, "bank.csv")
}

func TestNewWithWriter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, true)

	log.Debug().Msg("diagnostics")
	assert.Contains(t, buf.String(), "diagnostics")
}
