package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/chordex/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan <file.mid>...",
	Short: "Finds chord symbols in midi files",
	Long:  `Finds chord symbols in the lyric, marker, text and cue point events of midi files.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			if err := scan(cmd.OutOrStdout(), path); err != nil {
				return err
			}
		}
		return nil
	},
}

func scan(w io.Writer, path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return fmt.Errorf("could not scan %v: %w", path, err)
	}

	found := midi.FindSymbols(s)
	fmt.Fprintf(w, "%v: %v events with symbols\n", path, len(found))
	for _, ts := range found {
		fmt.Fprintf(w, "%8.3fs  track %-2v %-8v %v\n", ts.Offset, ts.Track, ts.Kind, strings.Join(ts.Symbols, " | "))
	}
	return nil
}
