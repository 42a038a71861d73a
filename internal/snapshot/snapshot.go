// Package snapshot stores a Markdown copy of a fetched listing page, once per listing.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// ErrNotDirectory is returned when the snapshot directory exists as a plain file.
var ErrNotDirectory = errors.New("snapshot directory is a file")

// Snapshot converts rawHTML to Markdown and writes it to dir/filename, creating dir as
// needed. An existing snapshot is never rewritten: its path is returned as is.
func Snapshot(rawHTML, dir, filename string) (string, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return "", fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	case errors.Is(err, os.ErrNotExist):
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	case err != nil:
		return "", fmt.Errorf("failed to stat snapshot directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	markdown, err := ToMarkdown(rawHTML)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, os.ErrExist) {
		return path, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to create snapshot: %w", err)
	}
	if _, err := f.WriteString(markdown + "\n"); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return path, nil
}

// ToMarkdown strips style, script and noscript content from rawHTML and converts the rest
// to cleaned Markdown.
func ToMarkdown(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("style, script, noscript, template").Remove()

	stripped, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(stripped)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}
	return CleanText(markdown), nil
}
