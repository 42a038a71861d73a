package extract

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ply/internal/salary"
)

func assertRange(t *testing.T, r *salary.Range, lower, upper int) {
	t.Helper()
	require.NotNil(t, r)
	assert.Equal(t, lower, r.Lower)
	got, ok := r.Upper()
	require.True(t, ok, "expected a bounded range")
	assert.Equal(t, upper, got)
}

const ashbyHTML = `<html><head>
<script type="application/ld+json">{"@context":"https://schema.org","@type":"JobPosting",
"title":"Software Engineer, Infrastructure",
"hiringOrganization":{"@type":"Organization","name":" Acme Corp "},
"baseSalary":{"@type":"MonetaryAmount","currency":"USD","value":{"@type":"QuantitativeValue","minValue":150000,"maxValue":"200,000","unitText":"YEAR"}}}</script>
</head><body></body></html>`

func TestAshby(t *testing.T) {
	role, err := Ashby{}.Extract(ashbyHTML)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", role.Company)
	assert.Equal(t, "Software Engineer", role.Title)
	assert.Equal(t, "Infrastructure", role.Team)
	assertRange(t, role.SalaryRange, 150000, 200000)
}

func TestAshby_NoTeamNoSalary(t *testing.T) {
	raw := `<html><head><script type="application/ld+json">
{"@type":"JobPosting","title":"Founding Engineer","hiringOrganization":{"name":"Tiny"}}
</script></head></html>`

	role, err := Ashby{}.Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "Founding Engineer", role.Title)
	assert.Empty(t, role.Team)
	assert.Nil(t, role.SalaryRange)
}

func TestAshby_PrefersJobPostingNode(t *testing.T) {
	raw := `<html><head>
<script type="application/ld+json">{"@type":"BreadcrumbList","itemListElement":[]}</script>
<script type="application/ld+json">{"@graph":[{"@type":"WebPage"},{"@type":"JobPosting","title":"Designer","hiringOrganization":{"name":"Acme"}}]}</script>
</head></html>`

	role, err := Ashby{}.Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "Designer", role.Title)
	assert.Equal(t, "Acme", role.Company)
}

func TestAshby_HourlyUnitIsAnError(t *testing.T) {
	raw := `<html><head><script type="application/ld+json">
{"@type":"JobPosting","title":"Barista","hiringOrganization":{"name":"Cafe"},
"baseSalary":{"value":{"minValue":20,"maxValue":25,"unitText":"HOUR"}}}
</script></head></html>`

	_, err := Ashby{}.Extract(raw)
	var unitErr *UnitError
	require.ErrorAs(t, err, &unitErr)
	assert.Equal(t, "HOUR", unitErr.Unit)
}

func TestAshby_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no json-ld", `<html><head></head><body>nothing</body></html>`},
		{"invalid json", `<html><head><script type="application/ld+json">{not json</script></head></html>`},
		{"no company", `<html><head><script type="application/ld+json">{"@type":"JobPosting","title":"X"}</script></head></html>`},
		{"no title", `<html><head><script type="application/ld+json">{"@type":"JobPosting","hiringOrganization":{"name":"Acme"}}</script></head></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Ashby{}.Extract(tt.raw)
			var extractErr *Error
			require.ErrorAs(t, err, &extractErr)
			assert.Equal(t, "ashby", extractErr.Strategy)
		})
	}
}

func TestNetflix_SalaryFromDescription(t *testing.T) {
	raw := `<html><head><script type="application/ld+json">
{"@type":"JobPosting","title":"Senior Software Engineer, Content &amp; Studio",
"hiringOrganization":{"name":"Netflix"},
"description":"&lt;p&gt;The range for this role is $100,000 &ndash; $150,000.&lt;/p&gt;"}
</script></head></html>`

	role, err := Netflix{}.Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "Netflix", role.Company)
	assert.Equal(t, "Senior Software Engineer", role.Title)
	assert.Equal(t, "Content & Studio", role.Team)
	assertRange(t, role.SalaryRange, 100000, 150000)
}

func TestJSONLD_TrailingTeamSeparator(t *testing.T) {
	raw := `<html><head><script type="application/ld+json">
{"@type":"JobPosting","title":"Software Engineer, ","hiringOrganization":{"name":"Acme"}}
</script></head></html>`

	for _, s := range []Strategy{Ashby{}, Netflix{}} {
		t.Run(s.Name(), func(t *testing.T) {
			role, err := s.Extract(raw)
			require.NoError(t, err)
			assert.Equal(t, "Software Engineer", role.Title)
			assert.Empty(t, role.Team)
		})
	}
}

func TestNetflix_UnreadableSalaryIsDropped(t *testing.T) {
	raw := `<html><head><script type="application/ld+json">
{"@type":"JobPosting","title":"Engineer","hiringOrganization":{"name":"Netflix"},
"description":"Pays $100,000 to $50,000."}
</script></head></html>`

	role, err := Netflix{}.Extract(raw)
	require.NoError(t, err)
	assert.Nil(t, role.SalaryRange)
}

func TestNetflix_BaseSalaryWins(t *testing.T) {
	raw := `<html><head><script type="application/ld+json">
{"@type":"JobPosting","title":"Engineer","hiringOrganization":{"name":"Netflix"},
"baseSalary":{"value":{"minValue":400000,"maxValue":600000,"unitText":"YEAR"}},
"description":"Pays $1 to $2."}
</script></head></html>`

	role, err := Netflix{}.Extract(raw)
	require.NoError(t, err)
	assertRange(t, role.SalaryRange, 400000, 600000)
}

func TestApple(t *testing.T) {
	raw := `<html><body><div id="root"><script>window.__staticRouterHydrationData = JSON.parse("{\"loaderData\":{\"jobDetails\":{\"jobsData\":{\"postingTitle\":\"Software Engineer - Siri \\u0026 Search\"}}}}");</script></div></body></html>`

	role, err := Apple{}.Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "Apple", role.Company)
	assert.Equal(t, "Software Engineer", role.Title)
	assert.Equal(t, "Siri & Search", role.Team)
	assert.Nil(t, role.SalaryRange)
}

func TestApple_UnexpectedScript(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no script", `<html><body><div id="root"></div></body></html>`},
		{"wrong prefix", `<html><body><div id="root"><script>window.other = 1;</script></div></body></html>`},
		{"no posting title", `<html><body><div id="root"><script>window.__staticRouterHydrationData = JSON.parse("{}");</script></div></body></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apple{}.Extract(tt.raw)
			var extractErr *Error
			assert.ErrorAs(t, err, &extractErr)
		})
	}
}

func greenhousePage(title, body string) string {
	return "<html><head><title>" + title + "</title></head><body>" + body + "</body></html>"
}

func TestGreenhouse_TitlePatterns(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		company string
		role    string
		team    string
	}{
		{"dash", "Job Application for Staff Engineer - Platform at Acme", "Acme", "Staff Engineer", "Platform"},
		{"dash with location", "Job Application for Staff Engineer - Platform (Remote) at Acme", "Acme", "Staff Engineer", "Platform"},
		{"delim comma", "Job Application for Software Engineer, Payments at Stripe", "Stripe", "Software Engineer", "Payments"},
		{"delim colon", "Job Application for Product Manager: Growth at Acme", "Acme", "Product Manager", "Growth"},
		{"paren", "Job Application for Data Scientist (Growth; Remote) at Acme", "Acme", "Data Scientist", "Growth"},
		{"pipe", "Senior Engineer - Ads (Remote) | Acme", "Acme", "Senior Engineer", "Ads"},
		{"no team", "Job Application for Staff Engineer at Acme", "Acme", "Staff Engineer", ""},
		{"entities", "Job Application for R&amp;D Engineer - Tools at Acme", "Acme", "R&D Engineer", "Tools"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := Greenhouse{}.Extract(greenhousePage(tt.title, ""))
			require.NoError(t, err)
			assert.Equal(t, tt.company, role.Company)
			assert.Equal(t, tt.role, role.Title)
			assert.Equal(t, tt.team, role.Team)
		})
	}
}

func TestGreenhouse_NoPatternIncludesTitle(t *testing.T) {
	_, err := Greenhouse{}.Extract(greenhousePage("Careers at Acme", ""))

	var noPattern *NoPatternError
	require.ErrorAs(t, err, &noPattern)
	assert.Equal(t, "Careers at Acme", noPattern.Title)
	assert.Contains(t, err.Error(), "Careers at Acme")
}

func TestGreenhouse_Salary(t *testing.T) {
	payRange := `<div class="pay-range"><span>$180,000</span><span class="divider">&mdash;</span><span>$220,000 USD</span></div>`
	role, err := Greenhouse{}.Extract(greenhousePage("Job Application for Staff Engineer at Acme", payRange))
	require.NoError(t, err)
	assertRange(t, role.SalaryRange, 180000, 220000)

	role, err = Greenhouse{}.Extract(greenhousePage("Job Application for Staff Engineer at Acme", "<p>Base pay: $150k to $175k</p>"))
	require.NoError(t, err)
	assertRange(t, role.SalaryRange, 150000, 175000)

	role, err = Greenhouse{}.Extract(greenhousePage("Job Application for Staff Engineer at Acme", "<p>Competitive pay</p>"))
	require.NoError(t, err)
	assert.Nil(t, role.SalaryRange)
}

func TestMeta(t *testing.T) {
	raw := `<html><body>
<div id="pageTitle">Software Engineer, Infrastructure | Meta Careers</div>
<div>$56.25/hour to $173,000/year + bonus + equity + benefits</div>
</body></html>`

	role, err := Meta{}.Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "Meta", role.Company)
	assert.Equal(t, "Software Engineer", role.Title)
	assert.Equal(t, "Infrastructure", role.Team)
	assertRange(t, role.SalaryRange, 117000, 173000)
}

func TestMeta_NoTeamNoSalary(t *testing.T) {
	raw := `<html><body><div id="pageTitle">Product Designer | Meta Careers</div></body></html>`

	role, err := Meta{}.Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "Product Designer", role.Title)
	assert.Empty(t, role.Team)
	assert.Nil(t, role.SalaryRange)
}

func TestMeta_MissingHeading(t *testing.T) {
	_, err := Meta{}.Extract(`<html><body><h1>Careers</h1></body></html>`)
	var extractErr *Error
	assert.ErrorAs(t, err, &extractErr)
}

func TestGoogle(t *testing.T) {
	raw := `<html><head><title>Software Engineer III, Google Cloud — Google Careers</title></head><body>
<p>The US base salary range for this full-time position is $141,000-$211,000 + bonus + equity + benefits.</p>
</body></html>`

	role, err := Google{}.Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "Google", role.Company)
	assert.Equal(t, "Software Engineer III", role.Title)
	assert.Equal(t, "Google Cloud", role.Team)
	assertRange(t, role.SalaryRange, 141000, 211000)
}

func TestGoogle_NoPattern(t *testing.T) {
	_, err := Google{}.Extract(`<html><head><title>Search Jobs</title></head></html>`)
	var noPattern *NoPatternError
	require.ErrorAs(t, err, &noPattern)
	assert.Equal(t, "Search Jobs", noPattern.Title)
}

func TestHiringCafe(t *testing.T) {
	raw := `<html><body>
<h2 class="font-extrabold">Backend Engineer, Payments</h2>
<span class="text-xl">@ Acme</span>
<div><span class="rounded">$120k-$150k/yr</span><span class="rounded">Remote</span></div>
</body></html>`

	role, err := HiringCafe{}.Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "Acme", role.Company)
	assert.Equal(t, "Backend Engineer", role.Title)
	assert.Equal(t, "Payments", role.Team)
	assertRange(t, role.SalaryRange, 120000, 150000)
}

func TestHiringCafe_NoSalaryBadge(t *testing.T) {
	raw := `<html><body>
<h2 class="font-extrabold">Backend Engineer</h2>
<span class="text-xl">@ Acme</span>
<div><p>Remote</p></div>
</body></html>`

	role, err := HiringCafe{}.Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", role.Title)
	assert.Empty(t, role.Team)
	assert.Nil(t, role.SalaryRange)
}

func TestMini(t *testing.T) {
	board := Mini{
		BoardName:      "acme-jobs",
		Company:        "Acme",
		TitleSelector:  "h1.posting",
		SalarySelector: ".comp",
	}
	raw := `<html><body><h1 class="posting">Engineer, Search | Acme Jobs</h1><p class="comp">$90,000 - $110,000</p></body></html>`

	role, err := board.Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "acme-jobs", board.Name())
	assert.Equal(t, "Acme", role.Company)
	assert.Equal(t, "Engineer", role.Title)
	assert.Equal(t, "Search", role.Team)
	assertRange(t, role.SalaryRange, 90000, 110000)
}

func TestMini_CustomPatterns(t *testing.T) {
	board := Mini{
		BoardName:     "initech",
		TitleSelector: "h1",
		TitlePattern:  regexp.MustCompile(`^(?P<title>.+) @ (?P<company>.+)$`),
		SalaryPattern: regexp.MustCompile(`Compensation: \$[^<]+`),
	}
	raw := `<html><body><h1>Engineer @ Initech</h1><p>Compensation: $45/hr</p></body></html>`

	role, err := board.Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "Initech", role.Company)
	assert.Equal(t, "Engineer", role.Title)
	require.NotNil(t, role.SalaryRange)
	assert.Equal(t, 45*salary.WorkingHoursPerYear, role.SalaryRange.Lower)
	assert.Nil(t, role.SalaryRange.Range)
}

func TestMini_NoMatch(t *testing.T) {
	board := Mini{BoardName: "acme", Company: "Acme"}
	_, err := board.Extract(`<html><head><title>Jobs</title></head></html>`)

	var noPattern *NoPatternError
	require.ErrorAs(t, err, &noPattern)
	assert.Equal(t, "Jobs", noPattern.Title)
}

func TestSplitTitleAndTeam(t *testing.T) {
	title, team := splitTitleAndTeam("Engineer, Platform, Infra", ", ")
	assert.Equal(t, "Engineer", title)
	assert.Equal(t, "Platform, Infra", team)

	title, team = splitTitleAndTeam(" Engineer ", ", ")
	assert.Equal(t, "Engineer", title)
	assert.Empty(t, team)

	title, team = splitTitleAndTeam("Software Engineer, ", ", ")
	assert.Equal(t, "Software Engineer", title)
	assert.Empty(t, team)

	title, team = splitTitleAndTeam("Platform Lead - ", " - ")
	assert.Equal(t, "Platform Lead", title)
	assert.Empty(t, team)
}
