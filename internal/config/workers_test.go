package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubEnv(t *testing.T, value string, set bool, cpus int, cpuErr error) {
	t.Helper()
	origEnv, origCPUs := lookupEnv, hostCPUs
	t.Cleanup(func() { lookupEnv, hostCPUs = origEnv, origCPUs })

	lookupEnv = func(key string) (string, bool) {
		if key == SchedulerCPUsEnv && set {
			return value, true
		}
		return "", false
	}
	hostCPUs = func() (int, error) { return cpus, cpuErr }
}

func TestAvailableWorkers(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		set    bool
		cpus   int
		cpuErr error
		want   WorkerHint
	}{
		{"scheduler hint", "6", true, 16, nil, WorkerHint{6, SourceScheduler}},
		{"scheduler zero clamps to one", "0", true, 16, nil, WorkerHint{1, SourceScheduler}},
		{"non numeric falls back", "four", true, 16, nil, WorkerHint{16, SourceHost}},
		{"signed value falls back", "-2", true, 16, nil, WorkerHint{16, SourceHost}},
		{"empty falls back", "", true, 8, nil, WorkerHint{8, SourceHost}},
		{"unset falls back", "", false, 8, nil, WorkerHint{8, SourceHost}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubEnv(t, tt.value, tt.set, tt.cpus, tt.cpuErr)
			assert.Equal(t, tt.want, AvailableWorkers())
		})
	}
}

func TestAvailableWorkers_HostQueryFails(t *testing.T) {
	stubEnv(t, "", false, 0, errors.New("no /proc"))

	hint := AvailableWorkers()
	assert.Equal(t, SourceRuntime, hint.Source)
	assert.GreaterOrEqual(t, hint.Workers, 1)
}

func TestMaxWorkerHint_ConfigWins(t *testing.T) {
	stubEnv(t, "6", true, 16, nil)

	cfg := DefaultConfig()
	cfg.MaxWorkers = 3
	assert.Equal(t, WorkerHint{3, SourceConfig}, cfg.MaxWorkerHint())

	cfg.MaxWorkers = 0
	assert.Equal(t, WorkerHint{6, SourceScheduler}, cfg.MaxWorkerHint())
}
