/*
PURPOSE:
  High-level runners behind the CLI commands.
  RunEstimate performs one estimation; RunBenchmark times the configuration
  matrix and writes the report artifacts.

REQUIREMENTS:
  User-specified:
  - Print the estimate line to stdout.
  - Write a Markdown report and a scaling plot into the output directory.

  Implementation-discovered:
  - Also write CSV and JSON Lines dumps of the rows for mechanical comparison.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/engine, internal/output, internal/advisor

ERROR HANDLING:
  - Validation errors are returned before any sampling starts.
  - Advisories are logged as warnings and never abort.
  - Writer failures are wrapped in model.ErrCollaborator.

IMPLEMENTATION RULES:
  - Create the output directory before benchmarking, so a bad path fails fast.

USAGE:
  engine.RunEstimate(cfg, os.Stdout)
  engine.RunBenchmark(cfg)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/benchmark.go
  - internal/engine/estimator.go

MAINTENANCE:
  - Update when new artifacts are added.
*/

package engine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/daryltucker/pi-runner/internal/advisor"
	"github.com/daryltucker/pi-runner/internal/config"
	"github.com/daryltucker/pi-runner/internal/model"
	"github.com/daryltucker/pi-runner/internal/output"
)

// RunEstimate performs a single estimation and writes the result line to w.
func RunEstimate(cfg *config.Config, w io.Writer) (model.EstimationResult, error) {
	if err := cfg.Validate(); err != nil {
		return model.EstimationResult{}, err
	}

	req := model.SampleRequest{TotalSamples: cfg.Samples, Mode: cfg.Mode, Workers: cfg.Workers}
	if eff := req.EffectiveWorkers(); eff != req.Workers {
		output.Logger.Info("Clamping workers to sample count", "requested", req.Workers, "effective", eff)
	}

	res, err := NewEstimator(cfg).Estimate(req)
	if err != nil {
		return res, err
	}

	ReportAdvisory(res, cfg.ErrorThreshold, cfg.RobustnessFloor)

	if err := output.FormatEstimate(w, res); err != nil {
		return res, err
	}
	return res, nil
}

// ReportAdvisory logs a warning when res misses the error threshold or the
// robustness floor.
func ReportAdvisory(res model.EstimationResult, threshold float64, floor int) {
	if !res.Advisory.MeetsThreshold {
		output.Logger.Warn(advisor.Message(res.Advisory, res.TotalSamples, threshold))
	}
	if res.BelowFloor {
		output.Logger.Warn("Sample count is below the robustness floor",
			"n_samples", res.TotalSamples,
			"floor", floor,
		)
	}
}

// Artifacts lists the files a benchmark run wrote.
type Artifacts struct {
	Report string
	Plot   string
	CSV    string
	JSON   string
}

// RunBenchmark runs the benchmark described by cfg and writes its artifacts.
func RunBenchmark(cfg *config.Config) (*model.BenchmarkReport, Artifacts, error) {
	if err := cfg.Validate(); err != nil {
		return nil, Artifacts{}, err
	}

	hint := cfg.MaxWorkerHint()
	output.Logger.Info("Worker ceiling", "workers", hint.Workers, "source", hint.Source)

	// Ensure output directory exists
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, Artifacts{}, collaboratorError("create output directory "+cfg.OutputDir, err)
	}

	est := NewEstimator(cfg)
	harness := NewHarness(est)
	plan := BenchmarkPlan{
		TotalSamples: cfg.Samples,
		Repeats:      cfg.Repeats,
		Modes:        DefaultModes(),
		WorkerModes:  DefaultWorkerModes(hint.Workers),
		MaxWorkers:   hint.Workers,
	}

	report, err := harness.Run(plan)
	if err != nil {
		return nil, Artifacts{}, err
	}

	art, err := WriteArtifacts(cfg, report)
	if err != nil {
		return report, art, err
	}
	output.Logger.Info("Wrote report", "path", art.Report)
	output.Logger.Info("Wrote plot", "path", art.Plot)
	return report, art, nil
}

// WriteArtifacts writes the CSV, JSON Lines, plot and Markdown files for report.
func WriteArtifacts(cfg *config.Config, report *model.BenchmarkReport) (Artifacts, error) {
	art := Artifacts{
		Report: filepath.Join(cfg.OutputDir, cfg.ReportFile),
		Plot:   filepath.Join(cfg.OutputDir, cfg.PlotFile),
		CSV:    filepath.Join(cfg.OutputDir, cfg.CSVFile),
		JSON:   filepath.Join(cfg.OutputDir, cfg.JSONFile),
	}

	if err := writeCSV(art.CSV, report); err != nil {
		return art, collaboratorError("write CSV "+art.CSV, err)
	}
	if err := writeJSON(art.JSON, report); err != nil {
		return art, collaboratorError("write JSON "+art.JSON, err)
	}
	if err := output.WritePlot(art.Plot, report.Scaling); err != nil {
		return art, collaboratorError("write plot "+art.Plot, err)
	}
	if err := output.WriteMarkdown(art.Report, report, cfg.PlotFile); err != nil {
		return art, collaboratorError("write report "+art.Report, err)
	}
	return art, nil
}

func writeCSV(path string, report *model.BenchmarkReport) error {
	w, err := output.NewCSVWriter(path)
	if err != nil {
		return err
	}
	defer w.Close()

	for _, row := range report.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Close()
}

func writeJSON(path string, report *model.BenchmarkReport) error {
	w, err := output.NewJSONWriter(path)
	if err != nil {
		return err
	}
	defer w.Close()

	for _, row := range report.Rows {
		if err := w.WriteRow(row); err != nil {
			return err
		}
	}
	for _, pt := range report.Scaling {
		if err := w.WriteScaling(pt); err != nil {
			return err
		}
	}
	return w.Close()
}

func collaboratorError(action string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w (check the output directory exists and is writable, or pass --output-dir)",
		model.ErrCollaborator, action, err)
}
