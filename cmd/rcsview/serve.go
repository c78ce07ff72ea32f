// Package main provides the entry point for the rcsview CLI application
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcsview/rcsview/internal/stream"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve <metadata-file>",
	Short: "Serve derived products to plotting clients over WebSocket",
	Long: `Serve derived products to plotting clients over WebSocket

Clients connect to ws://<addr>/ws/products, reconfigure the analysis, and
request range profiles and cross-range images as JSON frames.

Examples:
  rcsview serve sphere.json
  rcsview serve sphere.json --addr :9000 --window Hamming`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8421", "Listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	eng, logger, err := loadEngine(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Serving %s on %s/ws/products\n", eng.Name(), serveAddr)
	return stream.NewServer(eng, logger).ListenAndServe(serveAddr)
}
