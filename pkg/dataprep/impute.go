package dataprep

import (
	"math"

	"titanicprep/pkg/stats"
)

// ImputeTruncatedMean replaces NaN entries with the integer part of the mean
// of the present entries. The mean is taken once, before any replacement.
// It returns the filled copy and the fill value.
func ImputeTruncatedMean(column string, col []float64) ([]float64, float64, error) {
	out := make([]float64, len(col))
	copy(out, col)

	mean, n := stats.PresentMean(col)
	if n == len(col) {
		return out, mean, nil
	}
	if n == 0 {
		return nil, 0, newDataError(ErrMissingValue, column, NoRow, "no values to average")
	}

	fill := math.Trunc(mean)
	for i, v := range out {
		if math.IsNaN(v) {
			out[i] = fill
		}
	}
	return out, fill, nil
}

// ImputeConstant replaces missing values with a fixed constant.
func ImputeConstant(col []string, missing []bool, constant string) []string {
	out := make([]string, len(col))
	for i, v := range col {
		if missing[i] {
			out[i] = constant
		} else {
			out[i] = v
		}
	}
	return out
}
