package document

import (
	"fmt"
	"strings"
)

const delimiter = "---"

// split separates data into its frontmatter and content. Text before the opening delimiter
// line is ignored. The blank line written between the closing delimiter and the content is
// dropped.
func split(data string) (frontmatter, content string, err error) {
	const (
		preamble = iota
		header
	)

	var fm strings.Builder
	state := preamble
	lines := strings.SplitAfter(data, "\n")
	for i, line := range lines {
		isDelimiter := strings.TrimRight(line, "\r\n") == delimiter
		switch state {
		case preamble:
			if isDelimiter {
				state = header
			}
		case header:
			if isDelimiter {
				rest := strings.Join(lines[i+1:], "")
				rest = strings.TrimPrefix(rest, "\n")
				return fm.String(), rest, nil
			}
			fm.WriteString(line)
		}
	}

	if state == preamble {
		return "", "", fmt.Errorf("%w: no frontmatter delimiter", ErrMalformed)
	}
	return "", "", fmt.Errorf("%w: unterminated frontmatter", ErrMalformed)
}
