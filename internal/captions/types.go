package captions

import (
	"fmt"
	"math"
)

// Segment is one timed span of transcript text as reported by an engine.
// Times are seconds from the start of the audio.
type Segment struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
	Text  string  `json:"text" yaml:"text"`
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// Validate checks the segment timing invariants.
func (s Segment) Validate() error {
	return s.validateAt(-1)
}

func (s Segment) validateAt(position int) error {
	switch {
	case math.IsNaN(s.Start) || math.IsInf(s.Start, 0) || math.IsNaN(s.End) || math.IsInf(s.End, 0):
		return &InvalidSegmentError{Position: position, Start: s.Start, End: s.End, Reason: "non-finite timestamp"}
	case s.Start < 0:
		return &InvalidSegmentError{Position: position, Start: s.Start, End: s.End, Reason: "negative start"}
	case s.End < s.Start:
		return &InvalidSegmentError{Position: position, Start: s.Start, End: s.End, Reason: "end precedes start"}
	}
	return nil
}

// Caption is a single numbered SRT entry.
type Caption struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// Duration returns the caption length in seconds.
func (c Caption) Duration() float64 {
	return c.End - c.Start
}

// InvalidSegmentError reports a segment whose timing cannot be captioned.
type InvalidSegmentError struct {
	// Position is the zero-based segment position within its transcript,
	// or -1 when the segment was checked on its own.
	Position int
	Start    float64
	End      float64
	Reason   string
}

func (e *InvalidSegmentError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("invalid segment %d [%.3f, %.3f]: %s", e.Position, e.Start, e.End, e.Reason)
	}
	return fmt.Sprintf("invalid segment [%.3f, %.3f]: %s", e.Start, e.End, e.Reason)
}

// ParseError reports a malformed block in an SRT document.
type ParseError struct {
	Block int // 1-based block number
	Line  int // 1-based line number within the document
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("srt block %d (line %d): %v", e.Block, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
