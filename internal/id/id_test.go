package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBatchID(t *testing.T) {
	assert.Equal(t, "2025-01-003", FormatBatchID(2025, 1, 3))
	assert.Equal(t, "2024-12-100", FormatBatchID(2024, 12, 100))
}

func TestParseBatchID(t *testing.T) {
	year, month, seq, err := ParseBatchID("2025-01-003")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 1, month)
	assert.Equal(t, 3, seq)
}

func TestParseBatchID_RoundTrip(t *testing.T) {
	year, month, seq, err := ParseBatchID(FormatBatchID(2024, 7, 42))
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 7, month)
	assert.Equal(t, 42, seq)
}

func TestParseBatchID_Invalid(t *testing.T) {
	for _, in := range []string{"", "2025", "2025-01", "abcd-ef-ghi"} {
		_, _, _, err := ParseBatchID(in)
		assert.Error(t, err, "input %q", in)
	}
}
