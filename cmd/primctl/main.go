package main

import (
	"os"

	"github.com/dd0wney/cluso-primitives/cmd/primctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
