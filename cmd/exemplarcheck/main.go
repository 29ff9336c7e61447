package main

import (
	"os"

	"exemplarcheck/cmd/exemplarcheck/commands"
)

func main() {
	root := commands.NewRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
