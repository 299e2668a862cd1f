// Package main hosts the captioner CLI entrypoint and command graph.
//
// The Cobra command tree turns transcripts into SRT caption files or plain
// text, inspects and validates existing caption files, and scaffolds the
// configuration file. Configuration resolution and logger construction live
// in the shared command context so subcommands only describe their flags and
// output.
package main
