package extract

import (
	"html"
	"regexp"

	"github.com/jonathan/ply/internal/salary"
)

// DefaultMiniTitleSelector is used when a Mini board does not name a title selector.
const DefaultMiniTitleSelector = "head > title"

var miniPatterns = []titlePattern{
	{"team", regexp.MustCompile(`^(?P<title>[^,]+),\s*(?P<team>[^|]+)\s*\|`)},
	{"no-team", regexp.MustCompile(`^(?P<title>[^|]+?)\s*\|`)},
}

// Mini is a configurable strategy for boards that differ from one another only in markup.
// The title text is taken from TitleSelector and matched against TitlePattern, which must
// have a "title" group and may have "team" and "company" groups. The salary comes from the
// first SalarySelector node, or else from the first SalaryPattern match in the page.
type Mini struct {
	BoardName      string
	Company        string
	TitleSelector  string
	TitlePattern   *regexp.Regexp
	SalarySelector string
	SalaryPattern  *regexp.Regexp
}

func (m Mini) Name() string { return m.BoardName }

func (m Mini) Extract(raw string) (*Role, error) {
	doc, err := parseDocument(m.Name(), raw)
	if err != nil {
		return nil, err
	}

	selector := m.TitleSelector
	if selector == "" {
		selector = DefaultMiniTitleSelector
	}
	text, err := selectText(doc, m.Name(), selector)
	if err != nil {
		return nil, err
	}

	patterns := miniPatterns
	if m.TitlePattern != nil {
		patterns = []titlePattern{{"custom", m.TitlePattern}}
	}
	match, err := matchTitle(text, patterns)
	if err != nil {
		return nil, err
	}

	company := m.Company
	if match.Company != "" {
		company = match.Company
	}
	if company == "" {
		return nil, &Error{Strategy: m.Name(), Message: "no company configured or matched"}
	}

	var pay *salary.Range
	switch {
	case m.SalarySelector != "":
		if node := doc.Find(m.SalarySelector).First(); node.Length() > 0 {
			pay, err = salary.Parse(decode(node.Text()))
			if err != nil {
				return nil, &Error{Strategy: m.Name(), Message: "invalid salary range", Cause: err}
			}
		}
	case m.SalaryPattern != nil:
		pay, err = scanSalary(m.Name(), m.SalaryPattern, html.UnescapeString(raw))
		if err != nil {
			return nil, err
		}
	}

	return &Role{
		Company:     company,
		Title:       match.Title,
		Team:        match.Team,
		SalaryRange: pay,
	}, nil
}

// scanSalary parses the first match of re in text. No match yields no salary.
func scanSalary(strategy string, re *regexp.Regexp, text string) (*salary.Range, error) {
	line := re.FindString(text)
	if line == "" {
		return nil, nil
	}
	pay, err := salary.Parse(line)
	if err != nil {
		return nil, &Error{Strategy: strategy, Message: "invalid salary range", Cause: err}
	}
	return pay, nil
}
