// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/mdmze/advice-engine/pkg/types"
)

// ResultFile is the on-disk representation of an aggregation run. A saved
// run can be reloaded later without re-querying the source APIs.
type ResultFile struct {
	Query   string         `yaml:"query"`
	Records []types.Record `yaml:"records"`
	Summary ResultSummary  `yaml:"summary"`
}

// ResultSummary stores run statistics and a timestamp.
type ResultSummary struct {
	Total         int       `yaml:"total"`
	DupsRemoved   int       `yaml:"duplicates_removed"`
	FilteredOut   int       `yaml:"filtered_out"`
	AdapterErrors []string  `yaml:"adapter_errors,omitempty"`
	Fallback      string    `yaml:"fallback,omitempty"`
	Timestamp     time.Time `yaml:"timestamp"`
}

// WriteResultFile saves a query and its aggregation output to a YAML file.
func WriteResultFile(path, query string, out Output) error {
	rf := ResultFile{
		Query:   query,
		Records: out.Records,
		Summary: ResultSummary{
			Total:         len(out.Records),
			DupsRemoved:   out.DupsRemoved,
			FilteredOut:   out.FilteredOut,
			AdapterErrors: out.AdapterErrors,
			Fallback:      out.Fallback,
			Timestamp:     time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved aggregation run from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}
