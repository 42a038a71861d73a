// Package types provides the records ply persists: jobs, applications and their stages.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/ply/internal/salary"
)

// Job is the normalized role data extracted from a listing.
type Job struct {
	Company     string        `yaml:"company" validate:"required"`
	Title       string        `yaml:"title" validate:"required"`
	Team        string        `yaml:"team,omitempty"`
	ListingURL  string        `yaml:"listing_url,omitempty" validate:"omitempty,uri"`
	SalaryRange *salary.Range `yaml:"salary_range,omitempty"`
}

// Validate validates the Job using the validator.
func (j Job) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// Canonical returns the job unchanged; jobs have no derived ordering.
func (j Job) Canonical() Job {
	return j
}

// Filename names the listing snapshot for this job: company.title[.team][.urlhash].md
func (j Job) Filename() string {
	parts := j.filenameTokens()
	if j.ListingURL != "" {
		sum := sha256.Sum256([]byte(j.ListingURL))
		parts = append(parts, hex.EncodeToString(sum[:])[:8])
	}
	return strings.Join(append(parts, fileExtension), ".")
}

// Summary formats the job as "Company: Title (Team)".
func (j Job) Summary() string {
	if j.Team == "" {
		return fmt.Sprintf("%s: %s", j.Company, j.Title)
	}
	return fmt.Sprintf("%s: %s (%s)", j.Company, j.Title, j.Team)
}

func (j Job) filenameTokens() []string {
	var parts []string
	for _, attr := range []string{j.Company, j.Title, j.Team} {
		if token := NormalizeFilenameAttribute(attr); token != "" {
			parts = append(parts, token)
		}
	}
	return parts
}

const fileExtension = "md"

// NormalizeFilenameAttribute lowercases s, turns whitespace runs into a single underscore and
// drops punctuation, so the result is safe as a dot-separated filename component.
func NormalizeFilenameAttribute(s string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsSpace(r):
			pendingSep = b.Len() > 0
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_':
			if pendingSep {
				b.WriteByte('_')
				pendingSep = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
