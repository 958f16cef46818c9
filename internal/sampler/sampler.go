/*
PURPOSE:
  Draws uniform points in the unit square and counts those inside the
  quarter unit circle. Two strategies share the same inclusion rule:
  scalar (one point per iteration) and batch (a block of points is drawn
  into a buffer, then classified in one pass).

REQUIREMENTS:
  User-specified:
  - Points with x*x + y*y <= 1 are inside (boundary inclusive) in every strategy.
  - Count must be positive.

  Implementation-discovered:
  - Each sampler owns its Source. Concurrent workers never share generator state.
  - Batch mode bounds memory by reusing a fixed-size buffer across blocks.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (executor)
  - Depends on: internal/model

ERROR HANDLING:
  - Sample returns ErrInvalidArgument for count <= 0.

IMPLEMENTATION RULES:
  - Never touch package-level random state.
  - Keep Inside as the single classification rule.

USAGE:
  s, err := sampler.New(model.ModeBatch, sampler.NewSource(seed, 0), 0)
  inside, err := s.Sample(100000)

SELF-HEALING INSTRUCTIONS:
  - If scalar and batch estimates diverge, check that both call Inside.

RELATED FILES:
  - internal/engine/executor.go

MAINTENANCE:
  - Add new strategies to New().
*/

package sampler

import (
	"fmt"
	"math/rand/v2"

	"github.com/daryltucker/pi-runner/internal/model"
)

// DefaultBatchSize is the number of points classified per block in batch mode.
const DefaultBatchSize = 1 << 16

// Source yields uniform floats in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Sampler counts inside points among count fresh samples.
type Sampler interface {
	Sample(count int) (int, error)
}

// NewSource returns a PCG source. Distinct stream values give independent
// sequences for the same seed, so worker i uses NewSource(seed, i).
func NewSource(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}

// Inside reports whether (x, y) falls inside the quarter unit circle.
func Inside(x, y float64) bool {
	return x*x+y*y <= 1.0
}

// New returns the sampler for mode drawing from src. blockSize only applies
// to batch mode; zero selects DefaultBatchSize.
func New(mode model.Mode, src Source, blockSize int) (Sampler, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", model.ErrInvalidArgument)
	}
	switch mode {
	case model.ModeScalar:
		return &Scalar{src: src}, nil
	case model.ModeBatch:
		return NewBatch(src, blockSize), nil
	default:
		return nil, fmt.Errorf("%w: unknown %s", model.ErrInvalidArgument, mode)
	}
}

// Scalar draws and classifies one point per iteration.
type Scalar struct {
	src Source
}

// Sample implements Sampler.
func (s *Scalar) Sample(count int) (int, error) {
	if count <= 0 {
		return 0, fmt.Errorf("%w: sample count must be positive, got %d", model.ErrInvalidArgument, count)
	}
	inside := 0
	for range count {
		x := s.src.Float64()
		y := s.src.Float64()
		if Inside(x, y) {
			inside++
		}
	}
	return inside, nil
}

// Batch fills a coordinate buffer with a block of points, then classifies
// the whole block in a single pass.
type Batch struct {
	src    Source
	coords []float64
}

// NewBatch returns a batch sampler classifying up to blockSize points per pass.
func NewBatch(src Source, blockSize int) *Batch {
	if blockSize <= 0 {
		blockSize = DefaultBatchSize
	}
	return &Batch{src: src, coords: make([]float64, 0, 2*blockSize)}
}

// Sample implements Sampler.
func (b *Batch) Sample(count int) (int, error) {
	if count <= 0 {
		return 0, fmt.Errorf("%w: sample count must be positive, got %d", model.ErrInvalidArgument, count)
	}
	block := cap(b.coords) / 2
	inside := 0
	for remaining := count; remaining > 0; {
		n := min(remaining, block)
		b.fill(n)
		inside += CountInside(b.coords)
		remaining -= n
	}
	return inside, nil
}

func (b *Batch) fill(n int) {
	b.coords = b.coords[:2*n]
	for i := range b.coords {
		b.coords[i] = b.src.Float64()
	}
}

// CountInside classifies interleaved (x, y) pairs and returns how many are inside.
func CountInside(coords []float64) int {
	inside := 0
	for i := 0; i+1 < len(coords); i += 2 {
		if Inside(coords[i], coords[i+1]) {
			inside++
		}
	}
	return inside
}
