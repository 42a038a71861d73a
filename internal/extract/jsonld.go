package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/jonathan/ply/internal/salary"
)

const jsonLDSelector = `script[type="application/ld+json"]`

// findJobPosting decodes the page's JSON-LD blocks and returns the JobPosting node. When no
// node declares that type the first decodable block is used.
func findJobPosting(doc *goquery.Document, strategy string) (any, error) {
	var first any
	var lastErr error
	doc.Find(jsonLDSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			lastErr = err
			return true
		}
		if posting := jobPostingNode(data); posting != nil {
			first = posting
			return false
		}
		if first == nil {
			first = data
		}
		return true
	})

	if first == nil {
		if lastErr != nil {
			return nil, &Error{Strategy: strategy, Message: "failed to parse job posting data as JSON", Cause: lastErr}
		}
		return nil, &Error{Strategy: strategy, Message: "no job posting data in document"}
	}
	return first, nil
}

// jobPostingNode finds a node with @type JobPosting at the top level, in an array, or in
// an @graph list.
func jobPostingNode(data any) any {
	switch v := data.(type) {
	case map[string]any:
		if t, _ := v["@type"].(string); t == "JobPosting" {
			return v
		}
		if graph, ok := v["@graph"]; ok {
			return jobPostingNode(graph)
		}
	case []any:
		for _, item := range v {
			if node := jobPostingNode(item); node != nil {
				return node
			}
		}
	}
	return nil
}

// searchString evaluates a JMESPath expression that must yield a non-empty string.
func searchString(data any, strategy, expr string) (string, error) {
	result, err := jmespath.Search(expr, data)
	if err != nil {
		return "", &Error{Strategy: strategy, Message: fmt.Sprintf("failed to evaluate %q", expr), Cause: err}
	}
	s, ok := result.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", &Error{Strategy: strategy, Message: fmt.Sprintf("failed to read key %q as string", expr)}
	}
	return s, nil
}

// searchNumber evaluates a JMESPath expression yielding a number or numeric string. A
// missing value yields nil.
func searchNumber(data any, strategy, expr string) (*float64, error) {
	result, err := jmespath.Search(expr, data)
	if err != nil {
		return nil, &Error{Strategy: strategy, Message: fmt.Sprintf("failed to evaluate %q", expr), Cause: err}
	}
	switch v := result.(type) {
	case nil:
		return nil, nil
	case float64:
		return &v, nil
	case string:
		clean := strings.NewReplacer(",", "", "$", "").Replace(strings.TrimSpace(v))
		n, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return nil, &Error{Strategy: strategy, Message: fmt.Sprintf("failed to read key %q as number", expr), Cause: err}
		}
		return &n, nil
	default:
		return nil, &Error{Strategy: strategy, Message: fmt.Sprintf("key %q has type %T, want number", expr, result)}
	}
}

// baseSalary reads a JSON-LD baseSalary block. The block is optional, but when present its
// unit must be YEAR.
func baseSalary(data any, strategy string) (*salary.Range, error) {
	block, err := jmespath.Search("baseSalary", data)
	if err != nil || block == nil {
		return nil, nil
	}

	unit, err := searchString(data, strategy, "baseSalary.value.unitText")
	if err != nil {
		return nil, err
	}
	if unit != "YEAR" {
		return nil, &UnitError{Unit: unit}
	}

	lower, err := searchNumber(data, strategy, "baseSalary.value.minValue")
	if err != nil {
		return nil, err
	}
	upper, err := searchNumber(data, strategy, "baseSalary.value.maxValue")
	if err != nil {
		return nil, err
	}
	r, err := salary.FromStructured(lower, upper, salary.UnitYear)
	if err != nil {
		return nil, &Error{Strategy: strategy, Message: "invalid salary range", Cause: err}
	}
	return r, nil
}
