// Command tripsearch is the TripSearch autocomplete client CLI.
package main

import (
	"os"

	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
