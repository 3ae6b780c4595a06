package main

import (
	"os"

	"github.com/bilanz-dev/bilanz/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
