// Package main is the entry point for the traveler binary.
// Its sole responsibility is running the root command; wiring lives in
// internal/command.
package main

import (
	"context"
	"os"

	"github.com/chasingSublimity/Traveler/internal/command"
)

func main() {
	if err := command.RootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
