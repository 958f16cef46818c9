package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/daryltucker/pi-runner/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRunner advances the clock by the next scripted duration on every
// call and records the requests it saw.
type scriptedRunner struct {
	clock  *FakeClock
	script []time.Duration
	seen   []model.SampleRequest
	failAt int
}

func (r *scriptedRunner) Estimate(req model.SampleRequest) (model.EstimationResult, error) {
	r.seen = append(r.seen, req)
	if r.failAt > 0 && len(r.seen) == r.failAt {
		return model.EstimationResult{}, model.ErrWorkerFailure
	}
	d := r.script[(len(r.seen)-1)%len(r.script)]
	r.clock.Advance(d)
	return model.EstimationResult{Elapsed: d}, nil
}

func newScripted(script ...time.Duration) (*Harness, *scriptedRunner) {
	clock := NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	r := &scriptedRunner{clock: clock, script: script}
	return &Harness{Runner: r, Clock: clock}, r
}

func TestHarness_MatrixAndScaling(t *testing.T) {
	h, r := newScripted(1*time.Second, 2*time.Second, 3*time.Second)

	report, err := h.Run(BenchmarkPlan{
		TotalSamples: 1000,
		Repeats:      3,
		Modes:        DefaultModes(),
		WorkerModes:  []int{1, 4},
		MaxWorkers:   4,
	})
	require.NoError(t, err)

	require.Len(t, report.Rows, 4)
	wantOrder := []struct {
		mode    model.Mode
		workers int
	}{
		{model.ModeBatch, 1}, {model.ModeBatch, 4}, {model.ModeScalar, 1}, {model.ModeScalar, 4},
	}
	for i, row := range report.Rows {
		assert.Equal(t, wantOrder[i].mode, row.Mode)
		assert.Equal(t, wantOrder[i].workers, row.Workers)
		assert.Equal(t, 3, row.Repeats)
		assert.Equal(t, 2*time.Second, row.MeanTime)
		assert.Equal(t, 1*time.Second, row.StdTime)
	}

	require.Len(t, report.Scaling, 4)
	for i, pt := range report.Scaling {
		assert.Equal(t, i+1, pt.Workers)
	}
	// 12 matrix calls, then the sweep continues the script: 1s, 2s, 3s, 1s
	assert.Equal(t, 1*time.Second, report.Scaling[0].Elapsed)
	assert.Equal(t, 2*time.Second, report.Scaling[1].Elapsed)

	require.Len(t, r.seen, 16)
	for _, req := range r.seen[12:] {
		assert.Equal(t, model.ModeBatch, req.Mode)
	}
	for _, req := range r.seen {
		assert.Equal(t, 1000, req.TotalSamples)
	}

	assert.Equal(t, 1000, report.TotalSamples)
	assert.Equal(t, 3, report.Repeats)
	assert.Equal(t, 4, report.MaxWorkers)
}

func TestHarness_SingleRepeatHasZeroStd(t *testing.T) {
	h, _ := newScripted(5 * time.Millisecond)

	report, err := h.Run(BenchmarkPlan{
		TotalSamples: 10,
		Repeats:      1,
		Modes:        []model.Mode{model.ModeScalar},
		WorkerModes:  []int{1},
		MaxWorkers:   1,
	})
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, 5*time.Millisecond, report.Rows[0].MeanTime)
	assert.Zero(t, report.Rows[0].StdTime)
	assert.Len(t, report.Scaling, 1)
}

func TestHarness_RunFailureAborts(t *testing.T) {
	h, r := newScripted(time.Millisecond)
	r.failAt = 3

	report, err := h.Run(BenchmarkPlan{
		TotalSamples: 10,
		Repeats:      5,
		Modes:        DefaultModes(),
		WorkerModes:  []int{1},
		MaxWorkers:   2,
	})
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, model.ErrWorkerFailure))
	assert.Len(t, r.seen, 3)
}

func TestHarness_InvalidPlan(t *testing.T) {
	valid := BenchmarkPlan{
		TotalSamples: 10,
		Repeats:      1,
		Modes:        DefaultModes(),
		WorkerModes:  []int{1},
		MaxWorkers:   1,
	}
	tests := []struct {
		name   string
		mutate func(*BenchmarkPlan)
	}{
		{"zero samples", func(p *BenchmarkPlan) { p.TotalSamples = 0 }},
		{"zero repeats", func(p *BenchmarkPlan) { p.Repeats = 0 }},
		{"zero max workers", func(p *BenchmarkPlan) { p.MaxWorkers = 0 }},
		{"no modes", func(p *BenchmarkPlan) { p.Modes = nil }},
		{"no worker modes", func(p *BenchmarkPlan) { p.WorkerModes = nil }},
		{"zero worker mode", func(p *BenchmarkPlan) { p.WorkerModes = []int{1, 0} }},
		{"unknown mode", func(p *BenchmarkPlan) { p.Modes = []model.Mode{model.Mode(5)} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, r := newScripted(time.Millisecond)
			p := valid
			tt.mutate(&p)

			_, err := h.Run(p)
			assert.ErrorIs(t, err, model.ErrInvalidArgument)
			assert.Empty(t, r.seen)
		})
	}
}

func TestDefaultWorkerModes(t *testing.T) {
	assert.Equal(t, []int{1}, DefaultWorkerModes(1))
	assert.Equal(t, []int{1}, DefaultWorkerModes(0))
	assert.Equal(t, []int{1, 8}, DefaultWorkerModes(8))
}

func TestHarness_WithRealEstimator(t *testing.T) {
	h := NewHarness(&Estimator{Seed: 3})

	report, err := h.Run(BenchmarkPlan{
		TotalSamples: 2000,
		Repeats:      2,
		Modes:        DefaultModes(),
		WorkerModes:  []int{1, 2},
		MaxWorkers:   2,
	})
	require.NoError(t, err)
	assert.Len(t, report.Rows, 4)
	assert.Len(t, report.Scaling, 2)
	for _, row := range report.Rows {
		assert.Greater(t, row.MeanTime, time.Duration(0))
	}
}
