package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/fretcast/constants"
	"github.com/jsphweid/fretcast/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarizes converted JSON",
	Long:  `Summarizes converted JSON`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

func report() {
	outDir := constants.GetOutputDir()
	entries, err := os.ReadDir(outDir)
	if err != nil {
		panic("Could not read output dir because: " + err.Error())
	}

	var numSongs, numTracks, numNotes int
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(outDir, entry.Name()))
		if err != nil {
			panic("Could not read " + entry.Name() + " because: " + err.Error())
		}
		var song model.Song
		if err := json.Unmarshal(data, &song); err != nil {
			fmt.Printf("Skipping %v because: %v\n", entry.Name(), err)
			continue
		}

		numSongs += 1
		trackNotes := 0
		for _, track := range song.Tracks {
			trackNotes += len(track.Notes)
		}
		numTracks += len(song.Tracks)
		numNotes += trackNotes
		fmt.Printf("%v: %q, %v tracks, %v notes\n", entry.Name(), song.Meta.Title, len(song.Tracks), trackNotes)
	}

	fmt.Printf("total: %v songs, %v tracks, %v notes\n", numSongs, numTracks, numNotes)
}
