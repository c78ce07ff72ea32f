// Package export writes derived RCS products to CSV and JSON files
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rcsview/rcsview/internal/isar"
	"github.com/rcsview/rcsview/internal/profile"
)

// GenerateFilename generates a filename with timestamp
func GenerateFilename(prefix, extension, directory string) string {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", prefix, timestamp, extension)
	if directory != "" {
		return filepath.Join(directory, filename)
	}
	return filename
}

// ExportProfileCSV writes a range profile to a timestamped CSV file in
// directory and returns the filename.
func ExportProfileCSV(p profile.Profile, directory string) (string, error) {
	filename := GenerateFilename("rcs_range_profile", "csv", directory)
	if err := ExportProfileCSVToFile(p, filename); err != nil {
		return "", err
	}
	return filename, nil
}

// ExportProfileCSVToFile writes a range profile to a specific CSV file.
func ExportProfileCSVToFile(p profile.Profile, filename string) error {
	file, err := createFile(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"range", "magnitude", "phase"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range p.Magnitude {
		row := []string{
			formatFloat(p.Range[i]),
			formatFloat(p.Magnitude[i]),
			formatFloat(p.Phase[i]),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}

// ExportImageCSV writes a cross-range image to a timestamped CSV file in
// directory and returns the filename. Rows are range bins, columns are
// azimuth bins.
func ExportImageCSV(img isar.Image, directory string) (string, error) {
	filename := GenerateFilename("rcs_cross_range", "csv", directory)
	if err := ExportImageCSVToFile(img, filename); err != nil {
		return "", err
	}
	return filename, nil
}

// ExportImageCSVToFile writes a cross-range image to a specific CSV file.
func ExportImageCSVToFile(img isar.Image, filename string) error {
	file, err := createFile(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	for _, bins := range img.Data {
		row := make([]string, len(bins))
		for i, v := range bins {
			row[i] = formatFloat(v)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}

// createFile creates the target file, making the parent directory on demand.
func createFile(filename string) (*os.File, error) {
	file, err := os.Create(filename)
	if err != nil {
		if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
		file, err = os.Create(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to create file: %w", err)
		}
	}
	return file, nil
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', 6, 64)
}
