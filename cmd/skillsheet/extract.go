package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/skillsheet-go/pkg/skillsheet"
	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/output"
)

var (
	extractOutput string
	extractPretty bool
	extractFull   bool
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [input.xlsx]",
		Short: "Read the basic info of an exported workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}
	cmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&extractPretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&extractFull, "full", false, "Emit a complete record with a default capability matrix")
	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	data, err := skillsheet.ExtractFile(args[0])
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	var record any = data
	if extractFull {
		record = data.ToSkillSheet()
	}

	jsonData, err := output.ToJSON(record, extractPretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if extractOutput != "" {
		if err := os.WriteFile(extractOutput, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
