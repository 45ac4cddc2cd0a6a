package market

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bars.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV_WithHeader(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, `time,open,high,low,close,volume
2024-01-01T00:00:00Z,100,105,99,104,1234.5
2024-01-01T01:00:00Z,104,106,103,105,987
`)

	bars, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, bars, 2)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), bars[0].Time)
	assert.Equal(t, 100.0, bars[0].Open)
	assert.Equal(t, 105.0, bars[0].High)
	assert.Equal(t, 99.0, bars[0].Low)
	assert.Equal(t, 104.0, bars[0].Close)
	assert.Equal(t, 1234.5, bars[0].Volume)
	assert.Equal(t, 105.0, bars[1].Close)
}

func TestLoadCSV_NoHeader(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "2024-01-01T00:00:00Z,1,2,0.5,1.5,10\n")

	bars, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, bars, 1)
	assert.Equal(t, 1.5, bars[0].Close)
}

func TestLoadCSV_UnixMillis(t *testing.T) {
	t.Parallel()

	// 2024-01-01T00:00:00Z in milliseconds.
	path := writeTemp(t, "1704067200000,1,2,0.5,1.5,10\n")

	bars, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, bars, 1)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), bars[0].Time)
}

func TestLoadCSV_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"short row", "2024-01-01T00:00:00Z,1,2,0.5\n"},
		{"bad time", "yesterday,1,2,0.5,1.5,10\n"},
		{"bad float", "2024-01-01T00:00:00Z,1,2,0.5,abc,10\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadCSV(writeTemp(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestHLC3(t *testing.T) {
	t.Parallel()

	b := Bar{High: 3, Low: 1, Close: 2}
	assert.InDelta(t, 2.0, b.HLC3(), 1e-12)
}
