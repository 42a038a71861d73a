package extract

import (
	"regexp"
	"strings"
)

// titlePattern is one way a job board lays out title, team and company in a single line.
// Patterns are tried in order and the first match wins.
type titlePattern struct {
	name string
	re   *regexp.Regexp
}

type titleMatch struct {
	Title   string
	Team    string
	Company string
	Pattern string
}

// matchTitle tries each pattern against title and returns the named groups of the first
// one that matches.
func matchTitle(title string, patterns []titlePattern) (*titleMatch, error) {
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(title)
		if m == nil {
			continue
		}
		group := func(name string) string {
			if i := p.re.SubexpIndex(name); i >= 0 {
				return strings.TrimSpace(m[i])
			}
			return ""
		}
		return &titleMatch{
			Title:   group("title"),
			Team:    group("team"),
			Company: group("company"),
			Pattern: p.name,
		}, nil
	}
	return nil, &NoPatternError{Title: title}
}
