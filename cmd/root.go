package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordex",
	Short: "Finds chord symbols in text and transposes notes",
	Long: `chordex pulls root-anchored chord and scale symbols out of free text
("Cm7 Eb7", "D lydian") and transposes note names, from the command line,
a midi file's text events, or over HTTP.`,
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
