package main

import (
	"os"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
