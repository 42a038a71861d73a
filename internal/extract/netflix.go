package extract

import (
	"html"

	"github.com/jonathan/ply/internal/salary"
)

// Netflix reads the JSON-LD JobPosting on Netflix's careers site. Netflix rarely fills
// baseSalary, so the posting description is scanned for a pay range as well.
type Netflix struct{}

func init() {
	register(Netflix{}, "explore.jobs.netflix.net")
}

func (Netflix) Name() string { return "netflix" }

func (n Netflix) Extract(raw string) (*Role, error) {
	doc, err := parseDocument(n.Name(), raw)
	if err != nil {
		return nil, err
	}
	data, err := findJobPosting(doc, n.Name())
	if err != nil {
		return nil, err
	}

	company, err := searchString(data, n.Name(), "hiringOrganization.name")
	if err != nil {
		return nil, err
	}
	titleAndTeam, err := searchString(data, n.Name(), "title")
	if err != nil {
		return nil, err
	}
	title, team := splitTitleAndTeam(html.UnescapeString(titleAndTeam), ", ")

	pay, err := baseSalary(data, n.Name())
	if err != nil {
		return nil, err
	}
	if pay == nil {
		pay = n.descriptionSalary(data)
	}

	return &Role{
		Company:     decode(company),
		Title:       title,
		Team:        team,
		SalaryRange: pay,
	}, nil
}

// descriptionSalary scans the decoded description. A description without a readable range
// yields no salary.
func (n Netflix) descriptionSalary(data any) *salary.Range {
	description, err := searchString(data, n.Name(), "description")
	if err != nil {
		return nil
	}
	pay, err := salary.Parse(decode(description))
	if err != nil {
		return nil
	}
	return pay
}
