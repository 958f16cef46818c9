package engine

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summarize returns the arithmetic mean and sample standard deviation of
// timings. The deviation is zero for fewer than two timings.
func Summarize(timings []time.Duration) (mean, std time.Duration) {
	if len(timings) == 0 {
		return 0, 0
	}
	xs := make([]float64, len(timings))
	for i, d := range timings {
		xs[i] = float64(d)
	}
	if len(xs) == 1 {
		return timings[0], 0
	}
	m, s := stat.MeanStdDev(xs, nil)
	return time.Duration(m), time.Duration(s)
}
