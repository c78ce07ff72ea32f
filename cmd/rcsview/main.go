// Package main provides the entry point for the rcsview CLI application
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rcsview/rcsview/internal/engine"
	"github.com/rcsview/rcsview/internal/logging"
	"github.com/rcsview/rcsview/internal/preset"
)

var (
	logLevel   string
	presetFile string

	flagFrequency       string
	flagTheta           string
	flagPhi             string
	flagWindow          string
	flagWindowSize      int
	flagConversion      string
	flagAspect          string
	flagUpsampleRange   int
	flagUpsampleAzimuth int
)

var rootCmd = &cobra.Command{
	Use:   "rcsview <metadata-file>",
	Short: "rcsview - Monostatic RCS Post-Processor",
	Long: `rcsview - Monostatic RCS Post-Processor

Loads a swept-frequency monostatic RCS dataset and derives range profiles
and cross-range images from it. Running with a metadata file opens the
interactive viewer; subcommands inspect, export, and serve the data.

Examples:
  rcsview sphere.json
  rcsview info sphere.json
  rcsview export sphere.json --product image --format json --dir ./out
  rcsview serve sphere.json --addr :8421
  rcsview sphere.json --window Hamming --frequency 9GHz --conversion dB20`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	// Global flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Minimum log severity (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&presetFile, "preset", "", "Preset file with saved analysis settings (YAML)")
	rootCmd.PersistentFlags().StringVar(&flagFrequency, "frequency", "", "Frequency to inspect (must match a dataset label)")
	rootCmd.PersistentFlags().StringVar(&flagTheta, "theta", "", "Incident wave theta to pin (must match a dataset label)")
	rootCmd.PersistentFlags().StringVar(&flagPhi, "phi", "", "Incident wave phi to pin (must match a dataset label)")
	rootCmd.PersistentFlags().StringVar(&flagWindow, "window", "", "Window function (Flat, Hamming, Hann)")
	rootCmd.PersistentFlags().IntVar(&flagWindowSize, "window-size", 0, "Transform size for the range profile")
	rootCmd.PersistentFlags().StringVar(&flagConversion, "conversion", "", "Output conversion (Linear, dB10, dB20)")
	rootCmd.PersistentFlags().StringVar(&flagAspect, "aspect", "", "Cross-range sweep orientation (Horizontal, Vertical)")
	rootCmd.PersistentFlags().IntVar(&flagUpsampleRange, "upsample-range", 0, "Range axis size of the cross-range image")
	rootCmd.PersistentFlags().IntVar(&flagUpsampleAzimuth, "upsample-azimuth", 0, "Angle axis size of the cross-range image")

	// Add subcommands
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadEngine builds an engine for the metadata file argument and pushes the
// preset file and flag overrides through the validated setters. A rejected
// value is logged by the engine and the prior setting stays in effect.
func loadEngine(metaPath string) (*engine.Engine, *logging.Standard, error) {
	lvl, err := logging.ParseLevel(logLevel)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(os.Stderr, lvl)

	eng, err := engine.New(metaPath, engine.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	if presetFile != "" {
		p, err := preset.Load(presetFile)
		if err != nil {
			return nil, nil, err
		}
		p.Apply(eng)
	}

	overrides := preset.Preset{
		Frequency:         flagFrequency,
		IncidentWaveTheta: flagTheta,
		IncidentWavePhi:   flagPhi,
		Window:            flagWindow,
		WindowSize:        flagWindowSize,
		DataConversion:    flagConversion,
		AspectRange:       flagAspect,
		UpsampleRange:     flagUpsampleRange,
		UpsampleAzimuth:   flagUpsampleAzimuth,
	}
	overrides.Apply(eng)

	return eng, logger, nil
}
