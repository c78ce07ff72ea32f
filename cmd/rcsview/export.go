// Package main provides the entry point for the rcsview CLI application
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcsview/rcsview/internal/export"
	"github.com/rcsview/rcsview/internal/isar"
	"github.com/rcsview/rcsview/internal/profile"
)

var (
	exportProduct string
	exportFormat  string
	exportDir     string
	exportOut     string
)

var exportCmd = &cobra.Command{
	Use:   "export <metadata-file>",
	Short: "Compute a derived product and write it to CSV or JSON",
	Long: `Compute a derived product and write it to CSV or JSON

Examples:
  rcsview export sphere.json --product profile --format csv
  rcsview export sphere.json --product image --format json --dir ./out
  rcsview export sphere.json --window Hann -o profile.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportProduct, "product", "profile", "Product to compute (profile, image)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format (csv, json)")
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "Directory for export files (default: current directory)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Exact output filename (overrides --dir)")
}

func runExport(cmd *cobra.Command, args []string) error {
	eng, _, err := loadEngine(args[0])
	if err != nil {
		return err
	}

	var written string
	switch exportProduct {
	case "profile":
		prof := profile.NewProcessor(eng).RangeProfile()
		if prof.Empty() {
			return fmt.Errorf("no rows match the configured selection")
		}
		written, err = writeProfile(prof, eng.Name(), eng.Solution())
	case "image":
		img := isar.NewProcessor(eng).CrossRangeImage()
		if img.Empty() {
			return fmt.Errorf("no rows match the configured selection")
		}
		written, err = writeImage(img, eng.Name(), eng.Solution())
	default:
		return fmt.Errorf("unknown product %q (expected profile or image)", exportProduct)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %s to %s\n", exportProduct, written)
	return nil
}

func writeProfile(prof profile.Profile, dataset, solution string) (string, error) {
	switch exportFormat {
	case "csv":
		if exportOut != "" {
			return exportOut, export.ExportProfileCSVToFile(prof, exportOut)
		}
		return export.ExportProfileCSV(prof, exportDir)
	case "json":
		if exportOut != "" {
			return exportOut, export.ExportProfileJSONToFile(prof, dataset, solution, exportOut)
		}
		return export.ExportProfileJSON(prof, dataset, solution, exportDir)
	}
	return "", fmt.Errorf("unknown format %q (expected csv or json)", exportFormat)
}

func writeImage(img isar.Image, dataset, solution string) (string, error) {
	switch exportFormat {
	case "csv":
		if exportOut != "" {
			return exportOut, export.ExportImageCSVToFile(img, exportOut)
		}
		return export.ExportImageCSV(img, exportDir)
	case "json":
		if exportOut != "" {
			return exportOut, export.ExportImageJSONToFile(img, dataset, solution, exportOut)
		}
		return export.ExportImageJSON(img, dataset, solution, exportDir)
	}
	return "", fmt.Errorf("unknown format %q (expected csv or json)", exportFormat)
}
