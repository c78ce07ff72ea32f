package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rcsview/rcsview/internal/isar"
	"github.com/rcsview/rcsview/internal/profile"
)

const exportVersion = "1.0"

// ProfileExportData is the JSON payload for a range profile.
type ProfileExportData struct {
	Timestamp     string    `json:"timestamp"`
	ExportVersion string    `json:"export_version"`
	Dataset       string    `json:"dataset,omitempty"`
	Solution      string    `json:"solution,omitempty"`
	Bins          int       `json:"bins"`
	Range         []float64 `json:"range"`
	Magnitude     []float64 `json:"magnitude"`
	Phase         []float64 `json:"phase,omitempty"`
}

// ImageExportData is the JSON payload for a cross-range image.
type ImageExportData struct {
	Timestamp     string      `json:"timestamp"`
	ExportVersion string      `json:"export_version"`
	Dataset       string      `json:"dataset,omitempty"`
	Solution      string      `json:"solution,omitempty"`
	RangeBins     int         `json:"range_bins"`
	AzimuthBins   int         `json:"azimuth_bins"`
	Pixels        [][]float64 `json:"pixels"`
}

// NewProfileExport builds the JSON payload for a range profile.
func NewProfileExport(p profile.Profile, dataset, solution string) ProfileExportData {
	return ProfileExportData{
		Timestamp:     time.Now().Format(time.RFC3339),
		ExportVersion: exportVersion,
		Dataset:       dataset,
		Solution:      solution,
		Bins:          len(p.Magnitude),
		Range:         p.Range,
		Magnitude:     p.Magnitude,
		Phase:         p.Phase,
	}
}

// NewImageExport builds the JSON payload for a cross-range image.
func NewImageExport(img isar.Image, dataset, solution string) ImageExportData {
	return ImageExportData{
		Timestamp:     time.Now().Format(time.RFC3339),
		ExportVersion: exportVersion,
		Dataset:       dataset,
		Solution:      solution,
		RangeBins:     img.RangeBins(),
		AzimuthBins:   img.AzimuthBins(),
		Pixels:        img.Data,
	}
}

// ExportProfileJSON writes a range profile to a timestamped JSON file in
// directory and returns the filename.
func ExportProfileJSON(p profile.Profile, dataset, solution, directory string) (string, error) {
	filename := GenerateFilename("rcs_range_profile", "json", directory)
	if err := writeJSON(filename, NewProfileExport(p, dataset, solution)); err != nil {
		return "", err
	}
	return filename, nil
}

// ExportProfileJSONToFile writes a range profile to a specific JSON file.
func ExportProfileJSONToFile(p profile.Profile, dataset, solution, filename string) error {
	return writeJSON(filename, NewProfileExport(p, dataset, solution))
}

// ExportImageJSON writes a cross-range image to a timestamped JSON file in
// directory and returns the filename.
func ExportImageJSON(img isar.Image, dataset, solution, directory string) (string, error) {
	filename := GenerateFilename("rcs_cross_range", "json", directory)
	if err := writeJSON(filename, NewImageExport(img, dataset, solution)); err != nil {
		return "", err
	}
	return filename, nil
}

// ExportImageJSONToFile writes a cross-range image to a specific JSON file.
func ExportImageJSONToFile(img isar.Image, dataset, solution, filename string) error {
	return writeJSON(filename, NewImageExport(img, dataset, solution))
}

func writeJSON(filename string, payload any) error {
	file, err := createFile(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
