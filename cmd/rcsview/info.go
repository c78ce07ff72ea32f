// Package main provides the entry point for the rcsview CLI application
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <metadata-file>",
	Short: "Print the dataset's identity, frequencies, and incident-wave angles",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	eng, _, err := loadEngine(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Name:            %s\n", eng.Name())
	fmt.Printf("Solution:        %s\n", eng.Solution())
	fmt.Printf("Frequency units: %s\n", eng.FrequencyUnits())
	fmt.Printf("Model units:     %s\n", eng.ModelUnits())
	fmt.Printf("Data file:       %s\n", eng.Metadata().DataPath)
	fmt.Println()

	fmt.Printf("Frequencies (%d):\n", len(eng.Frequencies()))
	printColumns(eng.Frequencies())

	thetas := eng.AvailableIncidentWaveTheta()
	phis := eng.AvailableIncidentWavePhi()
	if thetas == nil && phis == nil {
		fmt.Println("\nNo incident-wave angles in this dataset.")
		return nil
	}

	fmt.Printf("\nIncident wave theta (%d):\n", len(thetas))
	printColumns(thetas)
	fmt.Printf("\nIncident wave phi (%d):\n", len(phis))
	printColumns(phis)

	return nil
}

// printColumns prints values eight to a line, indented.
func printColumns(values []string) {
	for i := 0; i < len(values); i += 8 {
		end := i + 8
		if end > len(values) {
			end = len(values)
		}
		fmt.Printf("  %s\n", strings.Join(values[i:end], "  "))
	}
}
