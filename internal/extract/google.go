package extract

import (
	"html"
	"regexp"
)

// Google reads careers listings on www.google.com from the document title.
type Google struct{}

var (
	googlePatterns = []titlePattern{
		{"team", regexp.MustCompile(`^(?P<title>.*), (?P<team>.*) — Google Careers`)},
		{"no-team", regexp.MustCompile(`^(?P<title>.*) — Google Careers`)},
	}
	googleSalary = regexp.MustCompile(`\$.*-.*\$.*\+ bonus \+ equity \+ benefits`)
)

func init() {
	register(Google{}, "www.google.com")
}

func (Google) Name() string { return "google" }

func (g Google) Extract(raw string) (*Role, error) {
	doc, err := parseDocument(g.Name(), raw)
	if err != nil {
		return nil, err
	}
	documentTitle, err := selectText(doc, g.Name(), "head > title")
	if err != nil {
		return nil, err
	}
	m, err := matchTitle(documentTitle, googlePatterns)
	if err != nil {
		return nil, err
	}

	pay, err := scanSalary(g.Name(), googleSalary, html.UnescapeString(raw))
	if err != nil {
		return nil, err
	}

	return &Role{
		Company:     "Google",
		Title:       m.Title,
		Team:        m.Team,
		SalaryRange: pay,
	}, nil
}
