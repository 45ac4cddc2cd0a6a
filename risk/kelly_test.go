package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKellyFraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		winRate float64
		avgWin  float64
		avgLoss float64
		want    float64
	}{
		{"zero loss, no estimate", 0.6, 1.0, 0.0, 0.0},
		{"even odds even payoff", 0.5, 1.0, 1.0, 0.0},
		{"positive edge", 0.6, 1.0, 1.0, 0.2},
		{"negative edge floored", 0.4, 1.0, 1.0, 0.0},
		{"capped at half", 0.9, 10.0, 1.0, MaxKelly},
		{"signed loss same as magnitude", 0.6, 1.0, -1.0, 0.2},
		{"negative avg win", 0.6, -0.5, 1.0, 0.0},
		{"high payoff ratio", 0.5, 2.0, 1.0, 0.25},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := KellyFraction(tt.winRate, tt.avgWin, tt.avgLoss)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestKellyFraction_AlwaysInRange(t *testing.T) {
	t.Parallel()

	rates := []float64{0.0, 0.1, 0.5, 0.9, 1.0}
	wins := []float64{0.0, 0.001, 0.5, 3.0}
	losses := []float64{0.001, 0.5, 3.0}

	for _, wr := range rates {
		for _, w := range wins {
			for _, l := range losses {
				k := KellyFraction(wr, w, l)
				assert.GreaterOrEqual(t, k, 0.0)
				assert.LessOrEqual(t, k, MaxKelly)
			}
		}
	}
}
