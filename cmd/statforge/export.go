package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statforge/statforge/internal/services/snapshot"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the full catalog as a snapshot document",
	Long: `Export every character, species, bonus, skill, and the ruleset as a
single JSON snapshot. Writes to the given file, or stdout when omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	output, err := a.snapshots.Export(ctx, &snapshot.ExportInput{})
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(output.Snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	data = append(data, '\n')

	if len(args) == 0 {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(args[0], data, 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d characters, %d species, %d bonuses, %d skills to %s\n",
		len(output.Snapshot.Characters), len(output.Snapshot.Species),
		len(output.Snapshot.Bonuses), len(output.Snapshot.Skills), args[0])
	return nil
}
