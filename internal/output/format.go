package output

import (
	"fmt"
	"io"
	"time"

	"github.com/daryltucker/pi-runner/internal/model"
)

// FormatSeconds renders d in seconds with four decimals.
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.4f", d.Seconds())
}

// FormatEstimate writes the single result line of an estimation run.
// The worker count is only shown for parallel runs.
func FormatEstimate(w io.Writer, r model.EstimationResult) error {
	workers := ""
	if r.Workers > 1 {
		workers = fmt.Sprintf(", workers=%d", r.Workers)
	}
	_, err := fmt.Fprintf(w, "π estimate: %.6f (n=%d, mode=%s%s); elapsed: %.3fs\n",
		r.PiEstimate, r.TotalSamples, r.Mode, workers, r.Elapsed.Seconds())
	return err
}

// FormatAdvisory writes the advisor verdict for the advise command.
func FormatAdvisory(w io.Writer, total int, threshold float64, o model.AdvisoryOutcome) error {
	verdict := "meets"
	if !o.MeetsThreshold {
		verdict = "exceeds"
	}
	_, err := fmt.Fprintf(w,
		"n=%d: expected standard error %.4f %s threshold %.4f; minimum recommended samples: %d\n",
		total, o.ExpectedStdError, verdict, threshold, o.MinimumSamplesRecommended)
	return err
}
