/*
PURPOSE:
  Times estimation runs across a {mode, workers} matrix and sweeps worker
  counts to build a scaling curve.

REQUIREMENTS:
  User-specified:
  - Repeat each configuration, keep only elapsed time, report mean and sample std.
  - Sweep workers 1..max once each in batch mode.

  Implementation-discovered:
  - Runs are strictly sequential so timings never overlap.
  - Timing is taken around the whole Estimate call, as a caller would see it.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (RunBenchmark)
  - Uses: Estimator (via the Runner interface), Clock

ERROR HANDLING:
  - The first failed run aborts the benchmark.

IMPLEMENTATION RULES:
  - Never start a run before the previous one returned.
  - The harness only builds in-memory rows; writers live in internal/output.

USAGE:
  h := engine.NewHarness(est)
  report, err := h.Run(engine.BenchmarkPlan{...})

SELF-HEALING INSTRUCTIONS:
  - Noisy timings usually mean something else is running on the host.

RELATED FILES:
  - internal/engine/stats.go
  - internal/output/markdown.go

MAINTENANCE:
  - Update when new columns are added to BenchmarkRow.
*/

package engine

import (
	"fmt"
	"time"

	"github.com/daryltucker/pi-runner/internal/model"
	"github.com/daryltucker/pi-runner/internal/output"
)

// Runner performs one estimation. *Estimator satisfies it.
type Runner interface {
	Estimate(req model.SampleRequest) (model.EstimationResult, error)
}

// BenchmarkPlan describes the configurations a benchmark covers.
type BenchmarkPlan struct {
	TotalSamples int
	Repeats      int
	Modes        []model.Mode
	WorkerModes  []int
	// MaxWorkers bounds the scaling sweep 1..MaxWorkers.
	MaxWorkers int
}

// DefaultModes lists the modes compared by default, batch first.
func DefaultModes() []model.Mode {
	return []model.Mode{model.ModeBatch, model.ModeScalar}
}

// DefaultWorkerModes compares a single worker against all available ones.
func DefaultWorkerModes(maxWorkers int) []int {
	if maxWorkers > 1 {
		return []int{1, maxWorkers}
	}
	return []int{1}
}

// Validate rejects plans that cannot produce a report.
func (p BenchmarkPlan) Validate() error {
	switch {
	case p.TotalSamples <= 0:
		return fmt.Errorf("%w: n_samples must be a positive integer, got %d", model.ErrInvalidArgument, p.TotalSamples)
	case p.Repeats <= 0:
		return fmt.Errorf("%w: repeats must be a positive integer, got %d", model.ErrInvalidArgument, p.Repeats)
	case p.MaxWorkers <= 0:
		return fmt.Errorf("%w: max workers must be a positive integer, got %d", model.ErrInvalidArgument, p.MaxWorkers)
	case len(p.Modes) == 0:
		return fmt.Errorf("%w: no modes to benchmark", model.ErrInvalidArgument)
	case len(p.WorkerModes) == 0:
		return fmt.Errorf("%w: no worker counts to benchmark", model.ErrInvalidArgument)
	}
	for _, w := range p.WorkerModes {
		if w <= 0 {
			return fmt.Errorf("%w: worker count must be positive, got %d", model.ErrInvalidArgument, w)
		}
	}
	for _, m := range p.Modes {
		if err := (model.SampleRequest{TotalSamples: 1, Mode: m, Workers: 1}).Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Harness times a Runner.
type Harness struct {
	Runner Runner
	Clock  Clock
}

// NewHarness returns a Harness timing r with the real clock.
func NewHarness(r Runner) *Harness {
	return &Harness{Runner: r, Clock: RealClock{}}
}

// Run executes the configuration matrix followed by the scaling sweep.
func (h *Harness) Run(p BenchmarkPlan) (*model.BenchmarkReport, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	report := &model.BenchmarkReport{
		Timestamp:    h.Clock.Now(),
		TotalSamples: p.TotalSamples,
		Repeats:      p.Repeats,
		MaxWorkers:   p.MaxWorkers,
	}

	for _, mode := range p.Modes {
		for _, workers := range p.WorkerModes {
			req := model.SampleRequest{TotalSamples: p.TotalSamples, Mode: mode, Workers: workers}
			timings := make([]time.Duration, 0, p.Repeats)
			for range p.Repeats {
				d, err := h.time(req)
				if err != nil {
					return nil, fmt.Errorf("benchmark %s with %d workers: %w", mode, workers, err)
				}
				timings = append(timings, d)
			}

			mean, std := Summarize(timings)
			output.Logger.Info("Benchmarked configuration",
				"mode", mode,
				"workers", workers,
				"repeats", p.Repeats,
				"mean", mean,
				"std", std,
			)
			report.Rows = append(report.Rows, model.BenchmarkRow{
				Mode:     mode,
				Workers:  workers,
				Repeats:  p.Repeats,
				MeanTime: mean,
				StdTime:  std,
			})
		}
	}

	for workers := 1; workers <= p.MaxWorkers; workers++ {
		req := model.SampleRequest{TotalSamples: p.TotalSamples, Mode: model.ModeBatch, Workers: workers}
		d, err := h.time(req)
		if err != nil {
			return nil, fmt.Errorf("scaling sweep with %d workers: %w", workers, err)
		}
		output.Logger.Debug("Scaling point", "workers", workers, "elapsed", d)
		report.Scaling = append(report.Scaling, model.ScalingPoint{Workers: workers, Elapsed: d})
	}

	return report, nil
}

func (h *Harness) time(req model.SampleRequest) (time.Duration, error) {
	start := h.Clock.Now()
	if _, err := h.Runner.Estimate(req); err != nil {
		return 0, err
	}
	return h.Clock.Since(start), nil
}
