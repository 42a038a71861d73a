package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var relativeDeadline = regexp.MustCompile(`^in\s+(\d+)\s+(hour|day|week)s?$`)

var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDeadline parses a stage deadline. Accepted forms are RFC 3339 timestamps,
// "YYYY-MM-DD", "YYYY-MM-DD HH:MM", "tomorrow" and "in N hours|days|weeks". Dates without a
// zone are read in now's location.
func ParseDeadline(text string, now time.Time) (time.Time, error) {
	s := strings.ToLower(strings.Join(strings.Fields(text), " "))
	if s == "" {
		return time.Time{}, fmt.Errorf("empty deadline")
	}

	if s == "tomorrow" {
		return now.AddDate(0, 0, 1), nil
	}

	if m := relativeDeadline.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid deadline %q: %w", text, err)
		}
		switch m[2] {
		case "hour":
			return now.Add(time.Duration(n) * time.Hour), nil
		case "day":
			return now.AddDate(0, 0, n), nil
		default:
			return now.AddDate(0, 0, 7*n), nil
		}
	}

	raw := strings.TrimSpace(text)
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, raw, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized deadline %q", text)
}
