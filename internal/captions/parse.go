package captions

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseDocument reads an SRT document back into captions. Blocks must carry a
// numeric index line and a "start --> end" timing line; any following lines
// up to the next blank line form the text. A caption with empty text is
// accepted.
func ParseDocument(content string) ([]Caption, error) {
	content = strings.TrimPrefix(content, "\ufeff")
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	var caps []Caption
	block := 0
	for i := 0; i < len(lines); {
		if strings.TrimSpace(lines[i]) == "" {
			i++
			continue
		}
		block++
		indexLine := i + 1

		index, err := strconv.Atoi(strings.TrimSpace(lines[i]))
		if err != nil {
			return nil, &ParseError{Block: block, Line: indexLine, Err: fmt.Errorf("invalid index %q", strings.TrimSpace(lines[i]))}
		}
		i++
		if i >= len(lines) {
			return nil, &ParseError{Block: block, Line: indexLine, Err: errors.New("missing timing line")}
		}
		start, end, err := parseTiming(lines[i])
		if err != nil {
			return nil, &ParseError{Block: block, Line: i + 1, Err: err}
		}
		i++

		var text []string
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			text = append(text, strings.TrimRight(lines[i], " \t"))
			i++
		}
		caps = append(caps, Caption{
			Index: index,
			Start: start,
			End:   end,
			Text:  strings.Join(text, "\n"),
		})
	}
	return caps, nil
}

func parseTiming(line string) (float64, float64, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid timing line %q", strings.TrimSpace(line))
	}
	start, err := ParseTimestamp(parts[0])
	if err != nil {
		return 0, 0, err
	}
	// Some writers append position hints after the end timestamp.
	endField := strings.Fields(parts[1])
	if len(endField) == 0 {
		return 0, 0, fmt.Errorf("missing end timestamp")
	}
	end, err := ParseTimestamp(endField[0])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}
