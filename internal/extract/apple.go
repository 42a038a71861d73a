package extract

import (
	"encoding/json"
	"html"
	"strings"
)

const (
	appleHydrationPrefix = `window.__staticRouterHydrationData = JSON.parse("`
	appleHydrationSuffix = `");`
)

// Apple reads the router hydration data that jobs.apple.com embeds as a JSON string
// literal. Posting titles separate the team with " - ".
type Apple struct{}

func init() {
	register(Apple{}, "jobs.apple.com")
}

func (Apple) Name() string { return "apple" }

func (a Apple) Extract(raw string) (*Role, error) {
	doc, err := parseDocument(a.Name(), raw)
	if err != nil {
		return nil, err
	}
	script := doc.Find("#root > script").First()
	if script.Length() == 0 {
		return nil, &Error{Strategy: a.Name(), Message: "no hydration script in document"}
	}

	data, err := a.hydrationData(strings.TrimSpace(script.Text()))
	if err != nil {
		return nil, err
	}

	postingTitle, err := searchString(data, a.Name(), "loaderData.jobDetails.jobsData.postingTitle")
	if err != nil {
		return nil, err
	}
	title, team := splitTitleAndTeam(html.UnescapeString(postingTitle), " - ")

	return &Role{
		Company: "Apple",
		Title:   title,
		Team:    team,
	}, nil
}

func (a Apple) hydrationData(script string) (any, error) {
	body, ok := strings.CutPrefix(script, appleHydrationPrefix)
	if !ok {
		return nil, &Error{Strategy: a.Name(), Message: "hydration script has unexpected prefix"}
	}
	body, ok = strings.CutSuffix(body, appleHydrationSuffix)
	if !ok {
		return nil, &Error{Strategy: a.Name(), Message: "hydration script has unexpected suffix"}
	}

	var encoded string
	if err := json.Unmarshal([]byte(`"`+body+`"`), &encoded); err != nil {
		return nil, &Error{Strategy: a.Name(), Message: "failed to decode hydration string", Cause: err}
	}
	var data any
	if err := json.Unmarshal([]byte(encoded), &data); err != nil {
		return nil, &Error{Strategy: a.Name(), Message: "failed to parse hydration data as JSON", Cause: err}
	}
	return data, nil
}
