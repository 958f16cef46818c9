package config

import (
	"os"
	"runtime"
	"strconv"

	"github.com/shirou/gopsutil/v4/cpu"
)

// SchedulerCPUsEnv is the cluster scheduler variable holding the CPUs
// allocated to this task.
const SchedulerCPUsEnv = "SLURM_CPUS_PER_TASK"

// WorkerSource names where a worker count came from.
type WorkerSource string

const (
	SourceConfig    WorkerSource = "config"
	SourceScheduler WorkerSource = "scheduler"
	SourceHost      WorkerSource = "host"
	SourceRuntime   WorkerSource = "runtime"
)

// WorkerHint is the worker ceiling the environment allows.
type WorkerHint struct {
	Workers int
	Source  WorkerSource
}

// lookupEnv and hostCPUs are swapped in tests.
var (
	lookupEnv = os.LookupEnv
	hostCPUs  = func() (int, error) { return cpu.Counts(true) }
)

// AvailableWorkers reports how many workers this process may use: the
// scheduler allocation when set to a plain decimal number, else the logical
// core count. The result is always at least 1.
func AvailableWorkers() WorkerHint {
	if v, ok := lookupEnv(SchedulerCPUsEnv); ok && isDigits(v) {
		if n, err := strconv.Atoi(v); err == nil {
			return WorkerHint{Workers: max(1, n), Source: SourceScheduler}
		}
	}
	if n, err := hostCPUs(); err == nil && n > 0 {
		return WorkerHint{Workers: n, Source: SourceHost}
	}
	return WorkerHint{Workers: max(1, runtime.NumCPU()), Source: SourceRuntime}
}

// MaxWorkerHint returns the configured ceiling, or the environment's when unset.
func (c *Config) MaxWorkerHint() WorkerHint {
	if c.MaxWorkers > 0 {
		return WorkerHint{Workers: c.MaxWorkers, Source: SourceConfig}
	}
	return AvailableWorkers()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
