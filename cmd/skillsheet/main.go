// Package main provides the CLI entry point for skillsheet-go.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "skillsheet",
		Short: "Build skill sheet workbooks",
		Long: `skillsheet-go renders skill sheet records (JSON) into styled xlsx
workbooks, reads exported workbooks back, and serves both over HTTP.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: $SKILLSHEET_CONFIG)")

	rootCmd.AddCommand(newServeCmd(), newRenderCmd(), newExtractCmd())
	return rootCmd
}
