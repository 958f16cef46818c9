// Package partition splits a sample budget across workers.
package partition

import (
	"fmt"

	"github.com/daryltucker/pi-runner/internal/model"
)

// Plan splits total into one chunk per worker. Workers beyond total are
// clamped away so no chunk is empty. The first total%workers chunks carry
// one extra sample.
func Plan(total, workers int) (model.ChunkPlan, error) {
	if total <= 0 {
		return nil, fmt.Errorf("%w: total must be positive, got %d", model.ErrInvalidArgument, total)
	}
	if workers <= 0 {
		return nil, fmt.Errorf("%w: workers must be positive, got %d", model.ErrInvalidArgument, workers)
	}
	workers = min(workers, total)

	base, remainder := total/workers, total%workers
	plan := make(model.ChunkPlan, workers)
	for i := range plan {
		plan[i] = base
		if i < remainder {
			plan[i]++
		}
	}
	return plan, nil
}
