package main

import (
	"fmt"
	"os"

	"checkplug/pkg/plugin"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		// Bad flags still have to produce a line the scheduler can parse.
		fmt.Printf("UNKNOWN: %v\n", err)
		os.Exit(int(plugin.Unknown))
	}
}
