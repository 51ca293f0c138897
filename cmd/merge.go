package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/fretcast/constants"
	"github.com/jsphweid/fretcast/convert"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mergeCmd)
}

var mergeCmd = &cobra.Command{
	Use:   "merge [in.gp5 in.mid out.json]",
	Short: "Converts Guitar Pro + MIDI file pairs to JSON",
	Long:  `Converts Guitar Pro + MIDI file pairs to JSON. With no args, converts every input subdirectory holding exactly one .gp5 and one .mid file.`,
	Args:  cobra.RangeArgs(0, 3),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 3 {
			mergeOne(args[0], args[1], args[2])
			return
		}
		if len(args) != 0 {
			panic("Need 0 or 3 args...")
		}
		mergeBatch()
	},
}

func mergeOne(gp5Path, midPath, out string) {
	song, err := convert.Pair(gp5Path, midPath, sink)
	if err != nil {
		panic("Could not convert " + gp5Path + " because: " + err.Error())
	}
	if err := convert.WriteJSON(song, out); err != nil {
		panic("Could not write " + out + " because: " + err.Error())
	}
	fmt.Printf("Exported JSON to %v\n", out)
}

func mergeBatch() {
	inDir := constants.GetInputDir()
	outDir := constants.GetOutputDir()
	entries, err := os.ReadDir(inDir)
	if err != nil {
		panic("Could not list input dir because: " + err.Error())
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(inDir, entry.Name()))
		}
	}
	for i, dir := range dirs {
		fmt.Printf("Converting %v of %v song folders\n", i+1, len(dirs))
		gp5Path, midPath, ok := findPair(dir)
		if !ok {
			continue
		}
		mergeOne(gp5Path, midPath, filepath.Join(outDir, filepath.Base(dir)+".json"))
	}
}

// findPair locates exactly one .gp5 and one .mid file directly inside dir.
// Folders missing either are skipped with a warning.
func findPair(dir string) (string, string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		panic("Could not list " + dir + " because: " + err.Error())
	}

	var gp5s, mids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, ".gp5"):
			gp5s = append(gp5s, filepath.Join(dir, name))
		case strings.HasSuffix(name, ".mid"):
			mids = append(mids, filepath.Join(dir, name))
		}
	}
	if len(gp5s) != 1 || len(mids) != 1 {
		sink.Warnf("skipping %v: found %d .gp5 and %d .mid files, need exactly one of each", dir, len(gp5s), len(mids))
		return "", "", false
	}
	return gp5s[0], mids[0], true
}
