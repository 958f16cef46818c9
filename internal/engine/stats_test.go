package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		timings  []time.Duration
		wantMean time.Duration
		wantStd  time.Duration
	}{
		{"empty", nil, 0, 0},
		{"single", []time.Duration{7 * time.Millisecond}, 7 * time.Millisecond, 0},
		{"constant", []time.Duration{time.Second, time.Second, time.Second}, time.Second, 0},
		{"sample std", []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}, 2 * time.Second, time.Second},
		{"pair", []time.Duration{2 * time.Second, 4 * time.Second}, 3 * time.Second, 1414213562 * time.Nanosecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std := Summarize(tt.timings)
			assert.Equal(t, tt.wantMean, mean)
			assert.InDelta(t, float64(tt.wantStd), float64(std), 2)
		})
	}
}
