package main

import (
	"os"

	"github.com/joseph-ayodele/outfit-advisor/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
