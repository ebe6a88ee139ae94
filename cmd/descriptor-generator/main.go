// Package main provides the CLI entrypoint for descriptor-generator.
//
// descriptor-generator turns a nested table of sampled performance metrics
// (JSON or YAML, optionally gzip or zstd compressed) into a catalogue of
// metric descriptors:
//   - Flattens the table into dotted key paths, depth-first
//   - Derives a name, display name and format function per path
//   - Renders one catalogue entry per path to stdout or a file
package main

import (
	"os"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
