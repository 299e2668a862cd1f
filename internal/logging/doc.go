// Package logging assembles structured slog loggers used across captioner.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so batch workers can tag every log
// line with the run and job they belong to. A no-op logger is provided for
// tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every command
// emits records with the same shape.
package logging
