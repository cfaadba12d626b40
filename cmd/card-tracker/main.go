// Command card-tracker runs the card inventory API server and its CLI.
package main

import (
	"os"

	"github.com/filamvp/card-tracker/cmd/card-tracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
