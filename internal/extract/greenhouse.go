package extract

import (
	"regexp"

	"github.com/jonathan/ply/internal/salary"
)

// Greenhouse reads role details from the document title of Greenhouse-hosted application
// pages, which companies phrase in several ways.
type Greenhouse struct{}

var greenhousePatterns = []titlePattern{
	{"dash", regexp.MustCompile(`^Job Application for (?P<title>[^-()]+) - (?P<team>[^();\r\n]+)(?:\s*\([^)]*\))? +at +(?P<company>.+)$`)},
	{"delim", regexp.MustCompile(`^Job Application for (?P<title>[^-()]+)[,:] (?P<team>[^();\r\n]+)(?:\s*\([^)]*\))? +at +(?P<company>.+)$`)},
	{"paren", regexp.MustCompile(`^Job Application for (?P<title>[^()]+) \((?P<team>[^;()]+)(?:;[^)]*)?\) +at +(?P<company>.+)$`)},
	{"pipe", regexp.MustCompile(`^(?P<title>.*?) (?:- (?P<team>.*?))(?: \([^)]*\))?\s*\| (?P<company>.*)$`)},
	{"no-team", regexp.MustCompile(`^Job Application for (?P<title>.+) +at +(?P<company>.+)$`)},
}

func init() {
	register(Greenhouse{}, "job-boards.greenhouse.io", "boards.greenhouse.io")
}

func (Greenhouse) Name() string { return "greenhouse" }

func (g Greenhouse) Extract(raw string) (*Role, error) {
	doc, err := parseDocument(g.Name(), raw)
	if err != nil {
		return nil, err
	}
	documentTitle, err := selectText(doc, g.Name(), "head > title")
	if err != nil {
		return nil, err
	}
	m, err := matchTitle(documentTitle, greenhousePatterns)
	if err != nil {
		return nil, err
	}

	payText := decode(doc.Find(".pay-range").First().Text())
	if payText == "" {
		payText = decode(doc.Find("body").Text())
	}
	pay, err := salary.Parse(payText)
	if err != nil {
		return nil, &Error{Strategy: g.Name(), Message: "invalid salary range", Cause: err}
	}

	return &Role{
		Company:     m.Company,
		Title:       m.Title,
		Team:        m.Team,
		SalaryRange: pay,
	}, nil
}
