// Package main is the entry point for the sift command-line tool.
package main

import (
	"os"

	"github.com/liamcoop/sift/cmd/sift/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
