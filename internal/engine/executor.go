/*
PURPOSE:
  Runs the sampler over every chunk of a ChunkPlan and sums the inside counts.

REQUIREMENTS:
  User-specified:
  - One independent unit of work per chunk; no shared mutable state.
  - A single chunk runs in-process without any concurrency machinery.
  - Any failed unit fails the whole run. No partial sum is ever returned.

  Implementation-discovered:
  - Panics inside a unit are recovered and reported as worker failures.
  - Counts outside [0, chunkSize] are treated as worker failures.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (estimator)
  - Uses: internal/sampler, golang.org/x/sync/errgroup

ERROR HANDLING:
  - Returns model.ErrWorkerFailure wrapping the first unit error.

IMPLEMENTATION RULES:
  - Each unit writes only its own slot of the results slice.
  - Sum only after every unit has returned.

USAGE:
  inside, err := engine.Execute(plan, factory)

SELF-HEALING INSTRUCTIONS:
  - If sums are off, check that the factory hands every chunk its own source.

RELATED FILES:
  - internal/partition/partition.go
  - internal/sampler/sampler.go

MAINTENANCE:
  - Update if cancellation is ever introduced.
*/

package engine

import (
	"fmt"

	"github.com/daryltucker/pi-runner/internal/model"
	"github.com/daryltucker/pi-runner/internal/output"
	"github.com/daryltucker/pi-runner/internal/sampler"
	"golang.org/x/sync/errgroup"
)

// SamplerFactory builds the sampler for one chunk. It is called once per
// chunk and must not return samplers that share a random source.
type SamplerFactory func(chunk int) (sampler.Sampler, error)

// Execute samples every chunk of plan and returns the total inside count.
func Execute(plan model.ChunkPlan, newSampler SamplerFactory) (int, error) {
	if len(plan) == 0 {
		return 0, fmt.Errorf("%w: empty chunk plan", model.ErrInvalidArgument)
	}

	if len(plan) == 1 {
		res, err := runChunk(0, plan[0], newSampler)
		if err != nil {
			return 0, err
		}
		return res.InsideCount, nil
	}

	results := make([]model.PartialResult, len(plan))
	var g errgroup.Group
	for i, size := range plan {
		output.Logger.Debug("Dispatching chunk", "chunk", i, "size", size)
		g.Go(func() error {
			res, err := runChunk(i, size, newSampler)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return Sum(results), nil
}

// Sum adds the inside counts of all partial results.
func Sum(results []model.PartialResult) int {
	total := 0
	for _, r := range results {
		total += r.InsideCount
	}
	return total
}

func runChunk(chunk, size int, newSampler SamplerFactory) (res model.PartialResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: chunk %d panicked: %v", model.ErrWorkerFailure, chunk, r)
		}
	}()

	if size <= 0 {
		return res, fmt.Errorf("%w: chunk %d has size %d", model.ErrWorkerFailure, chunk, size)
	}

	s, err := newSampler(chunk)
	if err != nil {
		return res, fmt.Errorf("%w: chunk %d: %w", model.ErrWorkerFailure, chunk, err)
	}

	inside, err := s.Sample(size)
	if err != nil {
		return res, fmt.Errorf("%w: chunk %d: %w", model.ErrWorkerFailure, chunk, err)
	}
	if inside < 0 || inside > size {
		return res, fmt.Errorf("%w: chunk %d reported %d inside of %d", model.ErrWorkerFailure, chunk, inside, size)
	}

	return model.PartialResult{ChunkSize: size, InsideCount: inside}, nil
}
