// Package transcript loads engine output into caption segments.
//
// Local Whisper-family models write JSON with a "segments" array of
// start/end/text objects; the same shape is accepted as YAML. Cloud
// recognizers that only return text are read from .txt files and become a
// single untimed segment, which is enough for plain-transcript output.
package transcript
