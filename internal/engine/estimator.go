package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/daryltucker/pi-runner/internal/advisor"
	"github.com/daryltucker/pi-runner/internal/config"
	"github.com/daryltucker/pi-runner/internal/model"
	"github.com/daryltucker/pi-runner/internal/partition"
	"github.com/daryltucker/pi-runner/internal/sampler"
)

// DefaultRobustnessFloor is the sample count below which an estimate is
// flagged as unreliable.
const DefaultRobustnessFloor = 10_000

// EstimatePi applies the quarter-circle scaling 4 * inside / total.
func EstimatePi(inside, total int) (float64, error) {
	if total <= 0 {
		return 0, fmt.Errorf("%w: total must be positive, got %d", model.ErrInvalidArgument, total)
	}
	if inside < 0 || inside > total {
		return 0, fmt.Errorf("%w: inside count %d outside [0, %d]", model.ErrInvalidArgument, inside, total)
	}
	return 4 * float64(inside) / float64(total), nil
}

// SamplerBuilder returns the sampler for one chunk of a run seeded with seed.
type SamplerBuilder func(mode model.Mode, seed uint64, chunk int) (sampler.Sampler, error)

// Estimator wraps partitioning, parallel execution and the π formula.
type Estimator struct {
	// Threshold is the acceptable standard error used for advisories.
	Threshold float64
	// Floor flags runs with fewer samples as below the robustness floor.
	Floor int
	// Seed fixes the random streams. Zero draws a fresh seed per call.
	Seed      uint64
	BatchSize int
	Clock     Clock
	// NewSampler overrides how chunk samplers are built.
	NewSampler SamplerBuilder
}

// NewEstimator builds an Estimator from configuration.
func NewEstimator(cfg *config.Config) *Estimator {
	return &Estimator{
		Threshold: cfg.ErrorThreshold,
		Floor:     cfg.RobustnessFloor,
		Seed:      cfg.Seed,
		BatchSize: cfg.BatchSize,
	}
}

// Estimate runs one full estimation for req. Invalid requests are rejected
// before any sampler is built.
func (e *Estimator) Estimate(req model.SampleRequest) (model.EstimationResult, error) {
	if err := req.Validate(); err != nil {
		return model.EstimationResult{}, err
	}

	threshold := e.Threshold
	if threshold == 0 {
		threshold = advisor.DefaultThreshold
	}
	advisory, err := advisor.Advise(req.TotalSamples, threshold)
	if err != nil {
		return model.EstimationResult{}, err
	}

	plan, err := partition.Plan(req.TotalSamples, req.Workers)
	if err != nil {
		return model.EstimationResult{}, err
	}

	seed := e.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	build := e.NewSampler
	if build == nil {
		build = e.defaultSampler
	}

	clock := e.clock()
	start := clock.Now()
	inside, err := Execute(plan, func(chunk int) (sampler.Sampler, error) {
		return build(req.Mode, seed, chunk)
	})
	if err != nil {
		return model.EstimationResult{}, err
	}
	elapsed := clock.Since(start)

	pi, err := EstimatePi(inside, req.TotalSamples)
	if err != nil {
		return model.EstimationResult{}, fmt.Errorf("%w: %w", model.ErrWorkerFailure, err)
	}

	floor := e.Floor
	if floor == 0 {
		floor = DefaultRobustnessFloor
	}

	return model.EstimationResult{
		PiEstimate:   pi,
		TotalSamples: req.TotalSamples,
		InsideCount:  inside,
		Mode:         req.Mode,
		Workers:      len(plan),
		Elapsed:      elapsed,
		Advisory:     advisory,
		BelowFloor:   req.TotalSamples < floor,
	}, nil
}

func (e *Estimator) defaultSampler(mode model.Mode, seed uint64, chunk int) (sampler.Sampler, error) {
	return sampler.New(mode, sampler.NewSource(seed, uint64(chunk)), e.BatchSize)
}

func (e *Estimator) clock() Clock {
	if e.Clock == nil {
		return RealClock{}
	}
	return e.Clock
}
