// Package main is the entry point for the wordrinse CLI.
package main

import (
	"os"

	"github.com/wordrinse/wordrinse/cmd/wordrinse/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
