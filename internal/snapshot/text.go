package snapshot

import (
	"regexp"
	"strings"
)

var (
	excessiveBlankLines = regexp.MustCompile(`\n\n\n+`)
	innerWhitespace     = regexp.MustCompile(`\s+`)
)

// CleanText normalizes Markdown text while preserving its structure. Lines inside fenced
// code blocks keep their whitespace.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	inFence := false
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			cleanedLines = append(cleanedLines, strings.TrimRight(line, " \t"))
			continue
		}
		if inFence {
			cleanedLines = append(cleanedLines, line)
			continue
		}
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = excessiveBlankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a single line and collapses runs of inner whitespace. Headings lose
// their indentation; list items and other lines keep it.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := line[:len(line)-len(trimmed)]
	if isBulletLine(trimmed) {
		return indent + trimmed
	}
	return indent + innerWhitespace.ReplaceAllString(trimmed, " ")
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") ||
		strings.HasPrefix(line, "• ") || strings.HasPrefix(line, "· ")
}
