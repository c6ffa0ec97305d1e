package main

import (
	"os"

	"github.com/psams/subtran/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
