// Package main provides the Born boundary CLI.
package main

import (
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
