package main

import (
	"fmt"
	"os"

	"github.com/irfansharif/huewheel/internal/cli"
)

func main() {
	opts := &cli.Options{}
	root := cli.NewRootCmd(opts, newExploreCmd(opts))
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
