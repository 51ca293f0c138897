package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/jsphweid/fretcast/constants"
	"github.com/jsphweid/fretcast/convert"
	"github.com/jsphweid/fretcast/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert [in.gp5 out.json]",
	Short: "Converts Guitar Pro files to JSON",
	Long:  `Converts Guitar Pro files to JSON. With no args, converts every .gp5 file in the input dir into the output dir.`,
	Args:  cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 2 {
			convertOne(args[0], args[1])
			return
		}
		if len(args) != 0 {
			panic("Need 0 or 2 args...")
		}
		convertBatch()
	},
}

func convertOne(in, out string) {
	song, err := convert.Tab(in, sink)
	if err != nil {
		panic("Could not convert " + in + " because: " + err.Error())
	}
	if err := convert.WriteJSON(song, out); err != nil {
		panic("Could not write " + out + " because: " + err.Error())
	}
	fmt.Printf("Exported JSON to %v\n", out)
}

func convertBatch() {
	outDir := constants.GetOutputDir()
	paths, err := filepath.Glob(filepath.Join(constants.GetInputDir(), "*.gp5"))
	if err != nil {
		panic("Could not list input dir because: " + err.Error())
	}
	for i, path := range paths {
		fmt.Printf("Converting %v of %v tablature files\n", i+1, len(paths))
		convertOne(path, filepath.Join(outDir, util.Stem(path)+".json"))
	}
}
