package main

import (
	"os"

	"github.com/rwyatt/fxjournal/cmd/fxjournal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
