// SPDX-License-Identifier: MIT

// Command tridiag loads, checks and solves boundary-extended tridiagonal
// systems from fixture files, or serves the same runs over HTTP.
package main

import (
	"os"

	"github.com/katalvlaran/tridiag/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
