// Package main implements the entry point for the newsboard API server,
// which serves topics, articles, comments and users over HTTP.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
