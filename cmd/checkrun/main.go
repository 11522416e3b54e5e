package main

import (
	"os"

	"github.com/futureCreator/checkrun/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
