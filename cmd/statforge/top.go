package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/statforge/statforge/internal/services/character"
)

var (
	topLimit  int32
	topByBase bool
)

var topCmd = &cobra.Command{
	Use:   "top <attribute>",
	Short: "Rank the roster by one attribute",
	Long: `Rank every character by an attribute's effective value, highest
first. Ties break by name, then by id.`,
	Args: cobra.ExactArgs(1),
	RunE: runTop,
}

func init() {
	topCmd.Flags().Int32Var(&topLimit, "limit", 10, "maximum entries to show, 0 for all")
	topCmd.Flags().BoolVar(&topByBase, "base", false, "rank by stored base values instead of effective values")
}

func runTop(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	output, err := a.characters.Leaderboard(ctx, &character.LeaderboardInput{
		Attribute: args[0],
		Limit:     topLimit,
		ByBase:    topByBase,
	})
	if err != nil {
		return err
	}

	if len(output.Entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No characters found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "#\tNAME\t%s\tBAND\tID\n", output.Attribute)
	for i, entry := range output.Entries {
		fmt.Fprintf(w, "%d\t%s\t%g\t%s\t%s\n", i+1, entry.Name, entry.Value, entry.Band, entry.CharacterID)
	}
	return w.Flush()
}
