package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/note"
	"github.com/spf13/cobra"
)

var (
	transposeBy     int
	transposeSymbol bool
)

func init() {
	transposeCmd.Flags().IntVarP(&transposeBy, "by", "n", 0, "semitones to shift, negative goes down (use --by=-2)")
	transposeCmd.Flags().BoolVarP(&transposeSymbol, "symbol", "s", false, "treat each argument as a chord symbol and shift its root")
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <note>...",
	Short: "Transposes notes",
	Long: `Transposes each note by --by semitones. Shifting up spells with sharps,
shifting down with flats. Anything that isn't a single note is echoed back.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		transpose(cmd.OutOrStdout(), args, transposeBy, transposeSymbol)
	},
}

func transpose(w io.Writer, names []string, delta int, asSymbol bool) {
	for _, name := range names {
		if asSymbol {
			fmt.Fprintln(w, chord.Transpose(name, delta))
		} else {
			fmt.Fprintln(w, note.Transpose(name, delta))
		}
	}
}
