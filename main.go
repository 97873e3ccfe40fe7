package main

import (
	"os"

	"github.com/neurofleetx/fleetops/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
