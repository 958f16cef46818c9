package engine

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/daryltucker/pi-runner/internal/model"
	"github.com/daryltucker/pi-runner/internal/sampler"
)

// fixedSampler returns the same inside count for every call.
type fixedSampler struct {
	inside int
	calls  *atomic.Int64
}

func (f fixedSampler) Sample(count int) (int, error) {
	if f.calls != nil {
		f.calls.Add(1)
	}
	return min(f.inside, count), nil
}

type failingSampler struct{}

func (failingSampler) Sample(int) (int, error) { return 0, errors.New("out of memory") }

type panickingSampler struct{}

func (panickingSampler) Sample(int) (int, error) { panic("boom") }

// allInside reports every sample as inside and counts sampler constructions.
func allInside(built *atomic.Int64) SamplerBuilder {
	return func(model.Mode, uint64, int) (sampler.Sampler, error) {
		built.Add(1)
		return insideSampler{}, nil
	}
}

type insideSampler struct{}

func (insideSampler) Sample(count int) (int, error) { return count, nil }

// FakeClock is a test clock that can be manually advanced.
type FakeClock struct {
	current time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{current: start}
}

func (f *FakeClock) Now() time.Time                  { return f.current }
func (f *FakeClock) Since(t time.Time) time.Duration { return f.current.Sub(t) }
func (f *FakeClock) Advance(d time.Duration)         { f.current = f.current.Add(d) }
