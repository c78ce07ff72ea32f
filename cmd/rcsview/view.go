// Package main provides the entry point for the rcsview CLI application
package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rcsview/rcsview/internal/app"
)

var viewCmd = &cobra.Command{
	Use:   "view <metadata-file>",
	Short: "Open the interactive range-profile viewer",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func runView(cmd *cobra.Command, args []string) error {
	eng, _, err := loadEngine(args[0])
	if err != nil {
		return err
	}

	p := tea.NewProgram(app.NewModel(eng), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
