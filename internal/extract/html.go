package extract

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func parseDocument(strategy, raw string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, &Error{Strategy: strategy, Message: "failed to parse HTML", Cause: err}
	}
	return doc, nil
}

// selectText returns the entity-decoded, trimmed text of the first node matching selector.
func selectText(doc *goquery.Document, strategy, selector string) (string, error) {
	text, err := selectRawText(doc, strategy, selector)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// selectRawText is selectText without trimming, for text that is split before it is trimmed.
func selectRawText(doc *goquery.Document, strategy, selector string) (string, error) {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", &Error{Strategy: strategy, Message: "no element matches " + selector}
	}
	return html.UnescapeString(sel.Text()), nil
}

// decode resolves HTML entities, including ones escaped twice in page titles.
func decode(s string) string {
	return strings.TrimSpace(html.UnescapeString(s))
}
