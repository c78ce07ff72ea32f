// Package metadata parses the descriptive record that locates an RCS dataset
package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Record is the small descriptive record that labels a dataset and points at
// its raw swept-response table.
type Record struct {
	Solution       string `json:"solution"`
	MonostaticFile string `json:"monostatic_file"`
	ModelUnits     string `json:"model_units"`
	FrequencyUnits string `json:"frequency_units"`

	// InputFile and DataPath are resolved at load time and not part of the
	// on-disk record. DataPath is absolute and verified to exist.
	InputFile string `json:"-"`
	DataPath  string `json:"-"`
}

// Load reads a metadata record from path and resolves the raw-table path,
// relative to the metadata file's directory when not absolute. Missing
// metadata or raw-table files are hard failures: the engine cannot exist in
// a half-loaded state.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata file: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse metadata file %s: %w", path, err)
	}
	if rec.MonostaticFile == "" {
		return nil, fmt.Errorf("metadata file %s declares no monostatic_file", path)
	}

	rec.InputFile = path
	rec.DataPath = rec.MonostaticFile
	if !filepath.IsAbs(rec.DataPath) {
		rec.DataPath = filepath.Join(filepath.Dir(path), rec.DataPath)
	}

	if _, err := os.Stat(rec.DataPath); err != nil {
		return nil, fmt.Errorf("raw table file: %w", err)
	}

	return &rec, nil
}

// Save writes a metadata record next to its raw table. Used by fixtures and
// the dataset generation path; the engine itself only consumes records.
func Save(path string, rec *Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
