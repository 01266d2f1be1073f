package main

import (
	"os"

	"github.com/vercom-dev/vercom/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
