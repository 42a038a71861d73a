package extract

import (
	"strings"

	"github.com/jonathan/ply/internal/salary"
)

// HiringCafe reads hiring.cafe listings by their fixed utility-class markup.
type HiringCafe struct{}

func init() {
	register(HiringCafe{}, "hiring.cafe")
}

func (HiringCafe) Name() string { return "hiringcafe" }

func (h HiringCafe) Extract(raw string) (*Role, error) {
	doc, err := parseDocument(h.Name(), raw)
	if err != nil {
		return nil, err
	}

	titleAndTeam, err := selectRawText(doc, h.Name(), "h2.font-extrabold")
	if err != nil {
		return nil, err
	}
	title, team := splitTitleAndTeam(titleAndTeam, ", ")

	company, err := selectText(doc, h.Name(), ".text-xl")
	if err != nil {
		return nil, err
	}
	company = strings.TrimSpace(strings.ReplaceAll(company, "@ ", ""))

	var pay *salary.Range
	if badge := doc.Find("span.rounded:nth-child(1)").First(); badge.Length() > 0 {
		pay, err = salary.Parse(decode(badge.Text()))
		if err != nil {
			return nil, &Error{Strategy: h.Name(), Message: "invalid salary range", Cause: err}
		}
	}

	return &Role{
		Company:     company,
		Title:       title,
		Team:        team,
		SalaryRange: pay,
	}, nil
}
