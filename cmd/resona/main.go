// Package main provides the resona service and CLI.
//
// Usage:
//
//	resona [serve]                      run the HTTP API and workers
//	resona resolve URL                  print the segment window for a link
//	resona embed CLIP                   print the embedding of a local clip
//	resona compare CLIP_A CLIP_B        print the cosine similarity of two clips
//
// Configuration is read from environment variables, the optional
// RESONA_CONFIG_FILE and an optional Vault secret.
package main

import (
	"fmt"
	"os"

	"github.com/cleitonmarx/resona/cmd/resona/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
