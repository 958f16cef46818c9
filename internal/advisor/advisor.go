// Package advisor bounds the Monte Carlo error of a π estimate for a given
// sample count, modelling each point as a Bernoulli trial with p = π/4.
package advisor

import (
	"fmt"
	"math"

	"github.com/daryltucker/pi-runner/internal/model"
)

// DefaultThreshold is the standard error considered reliable.
const DefaultThreshold = 0.01

// QuarterProbability is the chance a uniform point in the unit square lands
// inside the quarter circle.
const QuarterProbability = math.Pi / 4

// StdError is the expected standard error of the π estimate for total samples.
func StdError(total int) float64 {
	p := QuarterProbability
	return 4 * math.Sqrt(p*(1-p)/float64(total))
}

// MinimumSamples is the smallest sample count whose expected standard error
// does not exceed threshold.
func MinimumSamples(threshold float64) int {
	p := QuarterProbability
	return int(math.Ceil(16 * p * (1 - p) / (threshold * threshold)))
}

// Advise evaluates total against threshold.
func Advise(total int, threshold float64) (model.AdvisoryOutcome, error) {
	if total <= 0 {
		return model.AdvisoryOutcome{}, fmt.Errorf("%w: n_samples must be a positive integer, got %d", model.ErrInvalidArgument, total)
	}
	if !(threshold > 0) || math.IsInf(threshold, 1) {
		return model.AdvisoryOutcome{}, fmt.Errorf("%w: error threshold must be a positive number, got %v", model.ErrInvalidArgument, threshold)
	}
	stdErr := StdError(total)
	return model.AdvisoryOutcome{
		ExpectedStdError:          stdErr,
		MeetsThreshold:            stdErr <= threshold,
		MinimumSamplesRecommended: MinimumSamples(threshold),
	}, nil
}

// Message renders the warning shown when an outcome misses its threshold.
func Message(o model.AdvisoryOutcome, total int, threshold float64) string {
	return fmt.Sprintf(
		"%d samples give an expected standard error of %.3f, which is above the %.3f threshold. Consider using at least %d samples.",
		total, o.ExpectedStdError, threshold, o.MinimumSamplesRecommended,
	)
}
