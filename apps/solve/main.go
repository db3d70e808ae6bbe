// Command solve runs the dashboard calculations from a terminal.
package main

import (
	"os"

	"github.com/pkg/errors"

	"github.com/trezcool/swk211/apps"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		var argErr *apps.ArgumentError
		if errors.As(err, &argErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
