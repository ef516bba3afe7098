package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeAcceptedLayouts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"RFC3339 com milissegundos", "2026-08-28T10:15:30.123Z", true},
		{"RFC3339", "2026-08-28T10:15:30Z", true},
		{"data pura", "2026-08-28", true},
		{"vazio", "", false},
		{"formato brasileiro", "28/08/2026", false},
		{"lixo", "amanhã", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseTime(tt.in)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestParseTimeRoundTripsNowISO(t *testing.T) {
	parsed, ok := ParseTime(NowISO())
	require.True(t, ok)
	assert.WithinDuration(t, time.Now(), parsed, time.Second)
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, 8, 28, 23, 59, 59, 999, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), DateOnly(in))
}
