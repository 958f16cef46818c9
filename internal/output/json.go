/*
PURPOSE:
  Writes benchmark rows and scaling points to a JSON Lines file (NDJSON).

REQUIREMENTS:
  User-specified:
  - Machine readable output for comparing runs.

  Implementation-discovered:
  - Rows and scaling points share one file; a "kind" field tells them apart.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.BenchmarkRow, internal/model.ScalingPoint

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.
  - Thread-safe.

USAGE:
  w, err := output.NewJSONWriter("benchmark_results.jsonl")
  w.WriteRow(row)
  w.WriteScaling(point)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - None specific.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - None.
*/

package output

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/daryltucker/pi-runner/internal/model"
)

// Record kinds in the JSON Lines file.
const (
	KindRow     = "row"
	KindScaling = "scaling"
)

type rowRecord struct {
	Kind string `json:"kind"`
	model.BenchmarkRow
}

type scalingRecord struct {
	Kind string `json:"kind"`
	model.ScalingPoint
}

// JSONWriter handles writing records to a JSON Lines file.
type JSONWriter struct {
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter(path string) (*JSONWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &JSONWriter{
		file:    f,
		encoder: json.NewEncoder(f),
	}, nil
}

// WriteRow writes a benchmark row as a JSON line.
func (jw *JSONWriter) WriteRow(r model.BenchmarkRow) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	return jw.encoder.Encode(rowRecord{Kind: KindRow, BenchmarkRow: r})
}

// WriteScaling writes a scaling point as a JSON line.
func (jw *JSONWriter) WriteScaling(p model.ScalingPoint) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	return jw.encoder.Encode(scalingRecord{Kind: KindScaling, ScalingPoint: p})
}

// Close closes the underlying file.
func (jw *JSONWriter) Close() error {
	return jw.file.Close()
}
