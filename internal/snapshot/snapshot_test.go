package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingHTML = `<html><head>
<title>Staff Engineer</title>
<style>body { color: red; }</style>
<script>window.tracking = "secret";</script>
</head><body>
<h1>Staff Engineer</h1>
<p>Join the   <strong>Platform</strong> team.</p>
<ul><li>Go</li><li>Kubernetes</li></ul>
<noscript>Enable JavaScript</noscript>
</body></html>`

func TestSnapshot_WritesMarkdown(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "listings")

	path, err := Snapshot(listingHTML, dir, "acme.staff_engineer.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "acme.staff_engineer.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	md := string(data)
	assert.Contains(t, md, "# Staff Engineer")
	assert.Contains(t, md, "**Platform**")
	assert.Contains(t, md, "- Go")
	assert.NotContains(t, md, "color: red")
	assert.NotContains(t, md, "window.tracking")
	assert.NotContains(t, md, "Enable JavaScript")
}

func TestSnapshot_ExistingFileIsKept(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "listing.md")
	require.NoError(t, os.WriteFile(path, []byte("original capture"), 0644))

	got, err := Snapshot(listingHTML, dir, "listing.md")
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original capture", string(data))
}

func TestSnapshot_DirectoryIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "listings")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := Snapshot(listingHTML, file, "listing.md")
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestCleanText_PreserveMarkdownHeadings(t *testing.T) {
	result := CleanText("  # Title\n## Subtitle\nContent here")

	assert.Equal(t, "# Title\n## Subtitle\nContent here", result)
}

func TestCleanText_PreserveBulletLists(t *testing.T) {
	result := CleanText("- Item 1\n  - Nested   item\n* Item 3")

	assert.Equal(t, "- Item 1\n  - Nested   item\n* Item 3", result)
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	result := CleanText("Line    with    multiple    spaces   ")

	assert.Equal(t, "Line with multiple spaces", result)
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	result := CleanText("Line 1\n\n\n\n\nLine 2")

	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	result := CleanText("Line 1\r\nLine 2\rLine 3\nLine 4")

	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_KeepsFencedCode(t *testing.T) {
	input := "Intro\n```\nfunc main()  {\n\n\n\treturn\n}\n```\nOutro"

	assert.Equal(t, "Intro\n```\nfunc main()  {\n\n\treturn\n}\n```\nOutro", CleanText(input))
}

func TestCleanText_Empty(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n  \n  "))
}
