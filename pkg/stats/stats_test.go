package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-9)
}

func TestPresentMean(t *testing.T) {
	tests := []struct {
		name  string
		in    []float64
		want  float64
		count int
	}{
		{"all present", []float64{22, 38, 26}, 28.666666, 3},
		{"skips NaN", []float64{22, math.NaN(), 38}, 30, 2},
		{"empty", nil, math.NaN(), 0},
		{"only NaN", []float64{math.NaN()}, math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := PresentMean(tt.in)
			assert.Equal(t, tt.count, n)
			if tt.count == 0 {
				assert.True(t, math.IsNaN(got))
				return
			}
			assert.InDelta(t, tt.want, got, 1e-5)
		})
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 10.0, Round(20.0/2, 2))
	assert.Equal(t, 2.33, Round(7.0/3, 2))
	assert.Equal(t, 2.67, Round(8.0/3, 2))
	assert.Equal(t, -1.5, Round(-1.499, 1))

	// exact ties round to even
	assert.Equal(t, 3.62, Round(7.25/2, 2))
	assert.Equal(t, 13.12, Round(26.25/2, 2))
	assert.Equal(t, 0.12, Round(0.25/2, 2))
	assert.Equal(t, 0.38, Round(0.75/2, 2))
	assert.Equal(t, 2.0, Round(2.5, 0))
	assert.True(t, math.IsNaN(Round(math.NaN(), 2)))
}

func TestCountBy(t *testing.T) {
	got := CountBy([]string{"T1", "T2", "T1", "T3", "T1"})
	assert.Equal(t, map[string]int{"T1": 3, "T2": 1, "T3": 1}, got)
	assert.Empty(t, CountBy([]int{}))
}

func TestSum(t *testing.T) {
	assert.Equal(t, 6.0, Sum([]float64{1, 2, 3}))
}
