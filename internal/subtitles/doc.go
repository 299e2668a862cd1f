// Package subtitles generates caption and transcript files from engine output.
//
// The Service loads a transcript, settles on a language, runs the caption
// formatter (or flattens the text when no timing is wanted or available) and
// writes the artifact next to the source or into the configured output
// directory. The CLI's single-file and batch commands both go through it.
package subtitles
