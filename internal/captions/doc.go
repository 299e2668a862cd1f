// Package captions turns timed transcript segments into SRT caption documents.
//
// A segment produced by a transcription engine is split into sentences and
// each sentence receives an equal slice of the segment's time span, so the
// resulting captions tile the segment exactly. Documents are numbered from 1
// across all segments regardless of how many sentences each one yields.
//
// Everything here is pure: no I/O, no shared state. Callers formatting many
// transcripts at once can invoke the package concurrently without locking.
// The package also reads SRT documents back for inspection and validation.
package captions
