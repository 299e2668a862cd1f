package captions

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Options tunes how segments become captions.
type Options struct {
	// KeepEmpty keeps empty sentences produced by the split (for example the
	// trailing piece of "Done. ") as empty captions instead of dropping them.
	KeepEmpty bool
}

// Formatter expands segments into captions. The zero value drops empty
// sentences and is what the package-level helpers use.
type Formatter struct {
	Options Options
}

// NewFormatter returns a Formatter using opts.
func NewFormatter(opts Options) Formatter {
	return Formatter{Options: opts}
}

// ExpandSegment expands seg into captions numbered from startIndex using the
// default Formatter.
func ExpandSegment(seg Segment, startIndex int) ([]Caption, error) {
	return Formatter{}.Expand(seg, startIndex)
}

// FormatDocument renders segments as an SRT document using the default Formatter.
func FormatDocument(segments []Segment) (string, error) {
	return Formatter{}.Document(segments)
}

// FlattenTranscript joins the raw segment texts in order, for callers that
// want a plain transcript rather than timed captions.
func FlattenTranscript(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Expand splits seg into sentences and gives each an equal share of the
// segment's span. The captions tile [seg.Start, seg.End] exactly: each start
// is the previous end and the last end is seg.End.
func (f Formatter) Expand(seg Segment, startIndex int) ([]Caption, error) {
	if err := seg.Validate(); err != nil {
		return nil, err
	}
	return f.expand(seg, startIndex), nil
}

func (f Formatter) expand(seg Segment, startIndex int) []Caption {
	sentences := f.sentences(seg.Text)
	n := max(len(sentences), 1)
	slice := seg.Duration() / float64(n)

	out := make([]Caption, 0, len(sentences))
	for i, sentence := range sentences {
		start := seg.Start + float64(i)*slice
		if i > 0 {
			start = out[i-1].End
		}
		end := seg.Start + float64(i+1)*slice
		if i == len(sentences)-1 {
			end = seg.End
		}
		out = append(out, Caption{
			Index: startIndex + i,
			Start: start,
			End:   end,
			Text:  sentence,
		})
	}
	return out
}

func (f Formatter) sentences(text string) []string {
	sentences := SplitSentences(text)
	if f.Options.KeepEmpty {
		return sentences
	}
	kept := sentences[:0]
	for _, s := range sentences {
		if s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		// Blank text still occupies its span as a single caption.
		return []string{strings.TrimSpace(text)}
	}
	return kept
}

// Captions expands every segment in order, numbering captions from 1. The
// first invalid segment aborts the whole run.
func (f Formatter) Captions(segments []Segment) ([]Caption, error) {
	out := make([]Caption, 0, len(segments))
	next := 1
	for i, seg := range segments {
		if err := seg.validateAt(i); err != nil {
			return nil, err
		}
		expanded := f.expand(seg, next)
		next += len(expanded)
		out = append(out, expanded...)
	}
	return out, nil
}

// Document renders segments as an SRT document.
func (f Formatter) Document(segments []Segment) (string, error) {
	caps, err := f.Captions(segments)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := WriteDocument(&b, caps); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteDocument serializes captions to w as SRT blocks: index, timing line,
// text, blank line.
func WriteDocument(w io.Writer, caps []Caption) error {
	bw := bufio.NewWriter(w)
	for _, c := range caps {
		bw.WriteString(strconv.Itoa(c.Index))
		bw.WriteByte('\n')
		bw.WriteString(FormatTimestamp(c.Start))
		bw.WriteString(" --> ")
		bw.WriteString(FormatTimestamp(c.End))
		bw.WriteByte('\n')
		bw.WriteString(c.Text)
		bw.WriteString("\n\n")
	}
	return bw.Flush()
}
