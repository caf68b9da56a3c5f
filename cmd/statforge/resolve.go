package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/statforge/statforge/internal/services/character"
)

var resolveMetrics bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <character-id>",
	Short: "Resolve a character's effective stat sheet",
	Long: `Resolve every attribute of a character: species and bonus modifiers
are composed over the stored base values and each result is classified
into its rank band.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveMetrics, "metrics", false, "also derive equivalency metrics")
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	output, err := a.characters.ResolveStats(ctx, &character.ResolveStatsInput{CharacterID: args[0]})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ATTRIBUTE\tBASE\tEFFECTIVE\tRANK\tBAND")
	for _, st := range output.Stats {
		fmt.Fprintf(w, "%s\t%g\t%g\t%s\t%s\n", st.Attribute, st.Base, st.Effective, st.Rank, st.SubRank)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !output.MindEnabled {
		fmt.Fprintln(cmd.OutOrStdout(), "Mind: disabled by species")
	}

	if !resolveMetrics {
		return nil
	}

	metricsOutput, err := a.characters.DeriveEquivalencies(ctx, &character.DeriveEquivalenciesInput{CharacterID: args[0]})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	mw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(mw, "CATEGORY\tATTRIBUTE\tMETRIC\tVALUE")
	for _, m := range metricsOutput.Metrics {
		fmt.Fprintf(mw, "%s\t%s\t%s\t%g\n", m.Category, m.Attribute, m.Metric, m.Value)
	}
	return mw.Flush()
}
