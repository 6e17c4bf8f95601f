package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	fallback := 168 * time.Hour

	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"hours", "24h", 24 * time.Hour},
		{"composite", "1h30m", 90 * time.Minute},
		{"empty falls back", "", fallback},
		{"garbage falls back", "one week", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDuration(tt.input, fallback))
		})
	}
}
