package cmd

import (
	"github.com/jsphweid/fretcast/diag"
	"github.com/spf13/cobra"
)

var sink = diag.NewLogSink()

var rootCmd = &cobra.Command{
	Use:   "fretcast",
	Short: "Converts Guitar Pro and MIDI files to note-event JSON",
	Long:  `Converts Guitar Pro 5 files, optionally paired with exported MIDI files, into normalized JSON note events for playback and visualization tools.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
