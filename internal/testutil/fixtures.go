// Package testutil builds temporary RCS datasets for tests
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rcsview/rcsview/internal/metadata"
	"github.com/rcsview/rcsview/internal/table"
)

// Dataset describes a fixture dataset to write to disk.
type Dataset struct {
	Solution       string
	ModelUnits     string
	FrequencyUnits string
	Columns        []string
	Rows           []table.Row
}

// WriteDataset writes the raw table and its metadata record into dir and
// returns the metadata file path.
func WriteDataset(t *testing.T, dir string, ds Dataset) string {
	t.Helper()

	if ds.Solution == "" {
		ds.Solution = "Setup1 : Sweep"
	}
	if ds.FrequencyUnits == "" {
		ds.FrequencyUnits = "GHz"
	}
	if ds.ModelUnits == "" {
		ds.ModelUnits = "mm"
	}

	tablePath := filepath.Join(dir, "monostatic.rcst")
	f, err := os.Create(tablePath)
	if err != nil {
		t.Fatalf("create fixture table: %v", err)
	}
	if err := table.Write(f, ds.Columns, ds.Rows); err != nil {
		f.Close()
		t.Fatalf("write fixture table: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close fixture table: %v", err)
	}

	metaPath := filepath.Join(dir, "monostatic.json")
	rec := &metadata.Record{
		Solution:       ds.Solution,
		MonostaticFile: "monostatic.rcst",
		ModelUnits:     ds.ModelUnits,
		FrequencyUnits: ds.FrequencyUnits,
	}
	if err := metadata.Save(metaPath, rec); err != nil {
		t.Fatalf("write fixture metadata: %v", err)
	}

	return metaPath
}

// TwoFrequencyDataset is the minimal dataset used throughout the tests: two
// frequency rows with plain (angle-free) level labels.
func TwoFrequencyDataset(t *testing.T) string {
	t.Helper()
	return WriteDataset(t, t.TempDir(), Dataset{
		Columns: []string{"Sphere"},
		Rows: []table.Row{
			{Key: table.Key{Freq: "100Hz", Level: "Level1"}, Values: []complex128{complex(1, 0)}},
			{Key: table.Key{Freq: "200Hz", Level: "Level2"}, Values: []complex128{complex(0, 1)}},
		},
	})
}

// SweptAngleDataset builds a dataset with nFreqs frequencies swept over
// nPhis phi angles at a single theta, the shape the cross-range processor
// consumes. Values are deterministic and distinct per cell.
func SweptAngleDataset(t *testing.T, nFreqs, nPhis int) string {
	t.Helper()

	var rows []table.Row
	for f := 0; f < nFreqs; f++ {
		freq := fmt.Sprintf("%dGHz", 9+f)
		for p := 0; p < nPhis; p++ {
			level := table.FormatAngles("90deg", fmt.Sprintf("%ddeg", p*5))
			v := complex(float64(f+1), float64(p)*0.25)
			rows = append(rows, table.Row{
				Key:    table.Key{Freq: freq, Level: level},
				Values: []complex128{v},
			})
		}
	}

	return WriteDataset(t, t.TempDir(), Dataset{
		Columns: []string{"Target"},
		Rows:    rows,
	})
}
