package extract

import "html"

// Ashby reads the JSON-LD JobPosting embedded in Ashby-hosted listings.
type Ashby struct{}

func init() {
	register(Ashby{}, "jobs.ashbyhq.com")
}

func (Ashby) Name() string { return "ashby" }

func (a Ashby) Extract(raw string) (*Role, error) {
	doc, err := parseDocument(a.Name(), raw)
	if err != nil {
		return nil, err
	}
	data, err := findJobPosting(doc, a.Name())
	if err != nil {
		return nil, err
	}

	company, err := searchString(data, a.Name(), "hiringOrganization.name")
	if err != nil {
		return nil, err
	}
	titleAndTeam, err := searchString(data, a.Name(), "title")
	if err != nil {
		return nil, err
	}
	title, team := splitTitleAndTeam(html.UnescapeString(titleAndTeam), ", ")

	pay, err := baseSalary(data, a.Name())
	if err != nil {
		return nil, err
	}

	return &Role{
		Company:     decode(company),
		Title:       title,
		Team:        team,
		SalaryRange: pay,
	}, nil
}
