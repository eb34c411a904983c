package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Conceptual-Machines/ideachords-api/internal/ideachords"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the supported major keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		keys := ideachords.SupportedKeys()
		if jsonOut {
			return writeJSON(cmd.OutOrStdout(), keys)
		}
		for _, k := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
		return nil
	},
}

var chordsCmd = &cobra.Command{
	Use:   "chords <key>",
	Short: "Show the ii, IV, vi and V chords of a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := ideachords.ParseKey(args[0])
		if err != nil {
			return err
		}
		chords := ideachords.RealizeProgression(key, ideachords.Degrees())
		if jsonOut {
			return writeJSON(cmd.OutOrStdout(), chords)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, ideachords.FormatProgression(chords))
		return nil
	},
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a progression in a random key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printResult(cmd.OutOrStdout(), generator().Random())
	},
}

var keyCmd = &cobra.Command{
	Use:   "key <key>",
	Short: "Generate a progression in the given key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := ideachords.ParseKey(args[0])
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), generator().InKey(key))
	},
}

var startCmd = &cobra.Command{
	Use:   "start <chord>",
	Short: "Generate a progression that starts on the given chord",
	Long: `Generate a progression whose first chord is <chord>, for example "Fm" or "B♭".
When the chord belongs to several keys one of them is picked at random.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := generator().StartingOnChord(args[0])
		if errors.Is(err, ideachords.ErrChordNotFound) {
			return fmt.Errorf("%q is not a ii, IV, vi or V chord of any supported key", args[0])
		}
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), result)
	},
}

var matchCmd = &cobra.Command{
	Use:   "match <chord>",
	Short: "List every key and degree a chord belongs to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		candidates := ideachords.FindCandidateKeysForChord(args[0])
		if jsonOut {
			if candidates == nil {
				candidates = []ideachords.Candidate{}
			}
			return writeJSON(cmd.OutOrStdout(), candidates)
		}
		if len(candidates) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: no matches\n", ideachords.NormalizeChord(args[0]))
			return nil
		}
		for _, c := range candidates {
			fmt.Fprintf(cmd.OutOrStdout(), "%-3s %s\n", c.Degree, c.Key)
		}
		return nil
	},
}

func printResult(w io.Writer, r ideachords.Result) error {
	if jsonOut {
		return writeJSON(w, r)
	}
	_, err := fmt.Fprintln(w, r.CopyText())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
