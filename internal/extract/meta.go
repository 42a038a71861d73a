package extract

import (
	"html"
	"regexp"
)

// Meta reads metacareers.com listings. The page heading carries "Title, Team | ...".
type Meta struct{}

var (
	metaPatterns = []titlePattern{
		{"team", regexp.MustCompile(`^(?P<title>[^,]+),\s*(?P<team>[^|]+)\s*\|`)},
		{"no-team", regexp.MustCompile(`^(?P<title>[^,|]+?)\s*\|`)},
	}
	metaSalary = regexp.MustCompile(`>\$.*to.*\$.*bonus \+ equity \+ benefits`)
)

func init() {
	register(Meta{}, "www.metacareers.com")
}

func (Meta) Name() string { return "meta" }

func (m Meta) Extract(raw string) (*Role, error) {
	doc, err := parseDocument(m.Name(), raw)
	if err != nil {
		return nil, err
	}
	heading, err := selectText(doc, m.Name(), "#pageTitle")
	if err != nil {
		return nil, err
	}
	match, err := matchTitle(heading, metaPatterns)
	if err != nil {
		return nil, err
	}

	pay, err := scanSalary(m.Name(), metaSalary, html.UnescapeString(raw))
	if err != nil {
		return nil, err
	}

	return &Role{
		Company:     "Meta",
		Title:       match.Title,
		Team:        match.Team,
		SalaryRange: pay,
	}, nil
}
