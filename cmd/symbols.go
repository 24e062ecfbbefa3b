package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/keyboard"
	"github.com/jsphweid/chordex/symbol"
	"github.com/spf13/cobra"
)

type symbolsOptions struct {
	keys      bool
	octave    int
	octaves   int
	transpose int
}

var symbolsOpts symbolsOptions

func init() {
	symbolsCmd.Flags().BoolVarP(&symbolsOpts.keys, "keys", "k", false, "also print the keyboard keys to highlight")
	symbolsCmd.Flags().IntVar(&symbolsOpts.octave, "octave", 0, "keyboard octave the roots are placed in")
	symbolsCmd.Flags().IntVar(&symbolsOpts.octaves, "octaves", constants.GetKeyboardOctaves(), "octaves on the keyboard (env KEYBOARD_OCTAVES)")
	symbolsCmd.Flags().IntVarP(&symbolsOpts.transpose, "transpose", "t", 0, "shift every symbol's root by this many semitones")
	rootCmd.AddCommand(symbolsCmd)
}

var symbolsCmd = &cobra.Command{
	Use:   "symbols <query>...",
	Short: "Finds chord symbols",
	Long: `Finds the chord and scale symbols in the query, one per line. Arguments
are joined with spaces, so quoting is optional.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return findSymbols(cmd.OutOrStdout(), strings.Join(args, " "), symbolsOpts)
	},
}

func analyze(query string, transpose int) []string {
	symbols := symbol.Find(query)
	if transpose != 0 {
		symbols = chord.TransposeAll(symbols, transpose)
	}
	return symbols
}

func findSymbols(w io.Writer, query string, opts symbolsOptions) error {
	symbols := analyze(query, opts.transpose)
	for _, s := range symbols {
		fmt.Fprintln(w, s)
	}

	if !opts.keys || symbols == nil {
		return nil
	}
	kb, err := keyboard.New(opts.octaves)
	if err != nil {
		return err
	}
	keys, err := kb.Highlight(symbols, opts.octave)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "keys: %v\n", strings.Trim(fmt.Sprint(keys), "[]"))
	return nil
}
