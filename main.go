package main

import "github.com/jsphweid/fretcast/cmd"

func main() {
	cmd.Execute()
}
