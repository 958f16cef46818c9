package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/daryltucker/pi-runner/internal/model"
	"github.com/daryltucker/pi-runner/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	orig := output.Logger
	t.Cleanup(func() { output.SetLogger(orig) })

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEstimate(t *testing.T) {
	out, err := execute(t, "estimate", "-n", "20000", "--workers", "2", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "π estimate: ")
	assert.Contains(t, out, "(n=20000, mode=batch, workers=2)")
}

func TestEstimate_RunAliasAndScalar(t *testing.T) {
	out, err := execute(t, "run", "-n", "1000", "--mode", "scalar")
	require.NoError(t, err)
	assert.Contains(t, out, "mode=scalar)")
}

func TestEstimate_InvalidArguments(t *testing.T) {
	tests := [][]string{
		{"estimate", "-n", "0"},
		{"estimate", "-n", "-5"},
		{"estimate", "--workers", "0"},
		{"estimate", "--mode", "gpu"},
		{"estimate", "-n", "lots"},
		{"benchmark", "--repeats", "0"},
		{"estimate", "--log-level", "loud"},
	}

	for _, args := range tests {
		out, err := execute(t, args...)
		assert.ErrorIs(t, err, model.ErrInvalidArgument, "args=%v", args)
		assert.Empty(t, out)
	}
}

func TestEstimate_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n_samples: 3000\nmode: scalar\nseed: 9\n"), 0644))

	out, err := execute(t, "estimate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "(n=3000, mode=scalar)")

	// flags win over the file
	out, err = execute(t, "estimate", "--config", path, "-n", "4000")
	require.NoError(t, err)
	assert.Contains(t, out, "(n=4000, mode=scalar)")
}

func TestAdvise(t *testing.T) {
	out, err := execute(t, "advise", "-n", "10000", "--error-threshold", "0.01")
	require.NoError(t, err)
	assert.Contains(t, out, "exceeds threshold 0.0100")
	assert.Contains(t, out, "26968")

	out, err = execute(t, "advise", "-n", "1000000")
	require.NoError(t, err)
	assert.Contains(t, out, "meets threshold")
}

func TestBenchmark(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	out, err := execute(t, "benchmark", "-n", "1000", "-r", "1", "--max-workers", "2", "--seed", "1", "-o", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote report to "+filepath.Join(dir, "benchmark_report.md"))
	assert.Contains(t, out, "Wrote plot to "+filepath.Join(dir, "vectorized_workers.png"))
	assert.FileExists(t, filepath.Join(dir, "benchmark_results.csv"))
}

func TestWorkers(t *testing.T) {
	out, err := execute(t, "workers", "--max-workers", "6")
	require.NoError(t, err)
	assert.Equal(t, "workers: 6 (source: config)\n", out)
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "pi.yaml")

	_, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = execute(t, "config", "init", path)
	assert.Error(t, err, "refuses to overwrite without --force")

	_, err = execute(t, "config", "init", path, "--force")
	require.NoError(t, err)

	out, err := execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "n_samples: 100000")
	assert.Contains(t, out, "mode: batch")
	assert.Contains(t, out, "error_threshold: 0.01")
}
