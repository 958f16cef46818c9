/*
PURPOSE:
  Defines the core data structures used throughout Pi Runner.
  These models represent sampling requests, estimates and benchmark timings.

REQUIREMENTS:
  User-specified:
  - Record total samples, inside count, estimate and elapsed time.
  - Record mode, worker count, mean and std time per benchmark configuration.

  Implementation-discovered:
  - Need JSON tags for the JSON-lines benchmark dump.
  - Mode must be an explicit enum, not a boolean "vectorized" flag.

ARCHITECTURE INTEGRATION:
  - Used by: internal/sampler, internal/partition, internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - ParseMode and SampleRequest.Validate return ErrInvalidArgument.

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Use time.Duration for elapsed times.

USAGE:
  req := model.SampleRequest{TotalSamples: 100000, Mode: model.ModeBatch, Workers: 4}

SELF-HEALING INSTRUCTIONS:
  - If a new strategy is added, extend Mode, ParseMode and sampler.New.

RELATED FILES:
  - internal/model/errors.go
  - internal/output/csv.go
  - internal/output/json.go

MAINTENANCE:
  - Update when adding new metrics to capture.
*/

package model

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects the sampling strategy.
type Mode int

const (
	// ModeBatch classifies a whole block of points per pass.
	ModeBatch Mode = iota
	// ModeScalar draws and classifies one point at a time.
	ModeScalar
)

// String returns the canonical name used in flags and reports.
func (m Mode) String() string {
	switch m {
	case ModeBatch:
		return "batch"
	case ModeScalar:
		return "scalar"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// MarshalText lets Mode appear by name in JSON output.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText accepts the same names as ParseMode (used by the YAML config).
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMode maps a user supplied name onto a Mode.
// "vectorized" and "sequential" are accepted as aliases for batch and scalar.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "batch", "vectorized":
		return ModeBatch, nil
	case "scalar", "sequential", "loop":
		return ModeScalar, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q (want scalar or batch)", ErrInvalidArgument, s)
	}
}

// SampleRequest describes one estimation run.
type SampleRequest struct {
	TotalSamples int  `json:"total_samples"`
	Mode         Mode `json:"mode"`
	Workers      int  `json:"workers"`
}

// Validate rejects non-positive sample or worker counts.
func (r SampleRequest) Validate() error {
	if r.TotalSamples <= 0 {
		return fmt.Errorf("%w: n_samples must be a positive integer, got %d", ErrInvalidArgument, r.TotalSamples)
	}
	if r.Workers <= 0 {
		return fmt.Errorf("%w: workers must be a positive integer, got %d", ErrInvalidArgument, r.Workers)
	}
	if r.Mode != ModeBatch && r.Mode != ModeScalar {
		return fmt.Errorf("%w: unknown %s", ErrInvalidArgument, r.Mode)
	}
	return nil
}

// EffectiveWorkers is Workers clamped to TotalSamples.
func (r SampleRequest) EffectiveWorkers() int {
	if r.Workers > r.TotalSamples {
		return r.TotalSamples
	}
	return r.Workers
}

// ChunkPlan holds one chunk size per worker, summing to the total sample count.
type ChunkPlan []int

// Total returns the sum of all chunk sizes.
func (p ChunkPlan) Total() int {
	total := 0
	for _, n := range p {
		total += n
	}
	return total
}

// PartialResult is the output of one worker.
type PartialResult struct {
	ChunkSize   int
	InsideCount int
}

// EstimationResult is the outcome of a single estimation run.
type EstimationResult struct {
	PiEstimate   float64         `json:"pi_estimate"`
	TotalSamples int             `json:"total_samples"`
	InsideCount  int             `json:"inside_count"`
	Mode         Mode            `json:"mode"`
	Workers      int             `json:"workers"`
	Elapsed      time.Duration   `json:"elapsed_ns"`
	Advisory     AdvisoryOutcome `json:"advisory"`
	// BelowFloor is set when TotalSamples is under the configured robustness floor.
	BelowFloor bool `json:"below_floor"`
}

// AdvisoryOutcome is the sample-size advisor's verdict for a sample count.
type AdvisoryOutcome struct {
	ExpectedStdError          float64 `json:"expected_std_error"`
	MeetsThreshold            bool    `json:"meets_threshold"`
	MinimumSamplesRecommended int     `json:"minimum_samples_recommended"`
}

// BenchmarkRow is the timing summary of one {mode, workers} configuration.
type BenchmarkRow struct {
	Mode     Mode          `json:"mode"`
	Workers  int           `json:"workers"`
	Repeats  int           `json:"repeats"`
	MeanTime time.Duration `json:"mean_time_ns"`
	StdTime  time.Duration `json:"std_time_ns"`
}

// ScalingPoint is one point of the worker scaling curve.
type ScalingPoint struct {
	Workers int           `json:"workers"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// BenchmarkReport collects everything a benchmark run produced.
type BenchmarkReport struct {
	Timestamp    time.Time      `json:"timestamp"`
	TotalSamples int            `json:"total_samples"`
	Repeats      int            `json:"repeats"`
	MaxWorkers   int            `json:"max_workers"`
	Rows         []BenchmarkRow `json:"rows"`
	Scaling      []ScalingPoint `json:"scaling"`
}
