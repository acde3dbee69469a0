package stats

import (
	"math"
	"strconv"
)

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(n)
}

// PresentMean computes the average of the non-NaN values of a slice.
// The second return value is the number of values that took part; when it
// is zero the mean is NaN.
func PresentMean(x []float64) (float64, int) {
	sum, n := 0.0, 0
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN(), 0
	}
	return sum / float64(n), n
}

// Round rounds v to the given number of decimal places. Exact ties go to
// the even digit, so 3.625 becomes 3.62.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// CountBy groups values and returns how many times each one occurs.
func CountBy[T comparable](x []T) map[T]int {
	counts := make(map[T]int, len(x))
	for _, v := range x {
		counts[v]++
	}
	return counts
}

// Sum returns the sum of all elements in the slice.
func Sum(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += v
	}
	return s
}
