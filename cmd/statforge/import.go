package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/statforge/statforge/internal/entities"
	"github.com/statforge/statforge/internal/services/snapshot"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a snapshot document into the catalog",
	Long: `Import a JSON snapshot, upserting every record it carries. The
snapshot is validated in full before anything is written; a structurally
invalid document leaves the catalog untouched. Use "-" to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap entities.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	output, err := a.snapshots.Import(ctx, &snapshot.ImportInput{Snapshot: &snap})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d characters, %d species, %d bonuses, %d skills",
		output.CharactersImported, output.SpeciesImported,
		output.BonusesImported, output.SkillsImported)
	if output.RulesetImported {
		fmt.Fprint(cmd.OutOrStdout(), ", ruleset updated")
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
