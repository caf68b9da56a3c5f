// Package main is the entry point for the statforge CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "statforge",
	Short: "Deterministic stat resolution engine",
	Long: `Statforge resolves character sheets against a Redis-backed catalog:
species and bonus modifiers are composed into effective stats, classified
into rank bands, and ranked across the roster.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(topCmd)
}
