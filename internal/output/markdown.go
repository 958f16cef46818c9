package output

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/daryltucker/pi-runner/internal/model"
)

// RenderMarkdown writes the benchmark report. plotFile is linked relative to
// the report, so both are expected in the same directory.
func RenderMarkdown(w io.Writer, r *model.BenchmarkReport, plotFile string) error {
	var b strings.Builder

	b.WriteString("# Monte Carlo π timing results\n\n")
	fmt.Fprintf(&b,
		"This report summarizes runtime measurements for the Monte Carlo π simulation. "+
			"The first section compares batch vs scalar sampling on a single worker and on "+
			"all available workers (%d), running each setting %d times with %d samples. "+
			"The second section shows how runtime scales with worker count for the batch "+
			"implementation (single run per worker count).\n\n",
		r.MaxWorkers, r.Repeats, r.TotalSamples)

	b.WriteString("## Timing across settings\n\n")
	b.WriteString("| Mode | Workers | Mean Time (s) | Std Time (s) |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "| %s | %d | %s | %s |\n",
			row.Mode, row.Workers, FormatSeconds(row.MeanTime), FormatSeconds(row.StdTime))
	}

	b.WriteString("\n## Batch scaling by workers\n\n")
	fmt.Fprintf(&b, "![Vectorized runtime by worker count](%s)\n", plotFile)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteMarkdown renders the report to path, replacing any existing file.
func WriteMarkdown(path string, r *model.BenchmarkReport, plotFile string) error {
	var buf bytes.Buffer
	if err := RenderMarkdown(&buf, r, plotFile); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
