package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/skillsheet-go/pkg/skillsheet"
)

var renderOutput string

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [input.json]",
		Short: "Render a skill sheet record to xlsx",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	cmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file path (default: input name with .xlsx)")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", skillsheet.ErrFileNotFound, inputPath)
		}
		return err
	}

	data, err := skillsheet.DecodeRecord(raw)
	if err != nil {
		return err
	}

	xlsx, err := skillsheet.Render(data, exportOptions(cfg))
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	outputPath := renderOutput
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + skillsheet.ExtXLSX
	}
	if err := os.WriteFile(outputPath, xlsx, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), outputPath)
	return nil
}
