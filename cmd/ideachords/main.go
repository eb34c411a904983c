// Package main implements the ideachords command line tool.
// It prints ii-IV-vi-V progressions without running the HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/Conceptual-Machines/ideachords-api/internal/ideachords"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	seed     uint64
	jsonOut  bool
	seedUsed bool
)

var rootCmd = &cobra.Command{
	Use:   "ideachords",
	Short: "Generate four-chord ii, IV, vi, V progressions",
	Long: `ideachords builds four-chord progressions from the ii, IV, vi and V
degrees of a major key. The I chord is never used.

Progressions are printed the way they are copied in the web app:
  Eb: Ab (IV)  ·  Fm (ii)  ·  Cm (vi)  ·  Bb (V)`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		seedUsed = cmd.Flags().Changed("seed")
	},
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed for reproducible output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Print JSON instead of text")

	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(chordsCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(matchCmd)
}

// generator returns a seeded generator when --seed was given
func generator() *ideachords.Generator {
	if seedUsed {
		return ideachords.NewSeededGenerator(seed)
	}
	return ideachords.NewGenerator()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
