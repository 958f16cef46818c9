package partition

import (
	"testing"

	"github.com/daryltucker/pi-runner/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_Examples(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		workers int
		want    model.ChunkPlan
	}{
		{"single worker", 10, 1, model.ChunkPlan{10}},
		{"even split", 12, 4, model.ChunkPlan{3, 3, 3, 3}},
		{"remainder goes first", 10, 4, model.ChunkPlan{3, 3, 2, 2}},
		{"clamped to total", 3, 8, model.ChunkPlan{1, 1, 1}},
		{"one sample", 1, 1, model.ChunkPlan{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Plan(tt.total, tt.workers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlan_Invariants(t *testing.T) {
	for total := 1; total <= 64; total++ {
		for workers := 1; workers <= total+3; workers++ {
			plan, err := Plan(total, workers)
			require.NoError(t, err)

			assert.Len(t, plan, min(workers, total))
			assert.Equal(t, total, plan.Total())

			lo, hi := plan[0], plan[0]
			for _, n := range plan {
				assert.GreaterOrEqual(t, n, 1)
				lo, hi = min(lo, n), max(hi, n)
			}
			assert.LessOrEqual(t, hi-lo, 1, "total=%d workers=%d plan=%v", total, workers, plan)
		}
	}
}

func TestPlan_Deterministic(t *testing.T) {
	a, err := Plan(1_000_003, 7)
	require.NoError(t, err)
	b, err := Plan(1_000_003, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPlan_RejectsInvalid(t *testing.T) {
	for _, tc := range [][2]int{{0, 1}, {-5, 1}, {10, 0}, {10, -1}} {
		_, err := Plan(tc[0], tc[1])
		assert.ErrorIs(t, err, model.ErrInvalidArgument, "total=%d workers=%d", tc[0], tc[1])
	}
}
