package main

import (
	"os"

	"github.com/tmori/gutcheck/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
