/*
PURPOSE:
  Writes benchmark rows to a CSV file.
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  User-specified:
  - Tabular timing output per {mode, workers} configuration.

  Implementation-discovered:
  - Each benchmark run overwrites the file.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.BenchmarkRow

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write (critical for crash resilience).

USAGE:
  w, err := output.NewCSVWriter("benchmark_results.csv")
  w.Write(row)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - If CSV format changes, update header and record conversion.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update Write() mapping when BenchmarkRow changes.
*/

package output

import (
	"encoding/csv"
	"os"
	"strconv"
	"sync"

	"github.com/daryltucker/pi-runner/internal/model"
)

// CSVHeader is the first record of every CSV file.
var CSVHeader = []string{"mode", "workers", "repeats", "mean_time_s", "std_time_s"}

// CSVWriter handles writing rows to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single row to the CSV file.
// It is thread-safe.
func (cw *CSVWriter) Write(r model.BenchmarkRow) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	record := []string{
		r.Mode.String(),
		strconv.Itoa(r.Workers),
		strconv.Itoa(r.Repeats),
		FormatSeconds(r.MeanTime),
		FormatSeconds(r.StdTime),
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}
