package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/ply/internal/salary"
	"github.com/jonathan/ply/internal/types"
)

// Role is what a strategy extracts from a listing page.
type Role struct {
	Company     string
	Title       string
	Team        string
	SalaryRange *salary.Range
}

// Job builds the Job record for a role found at listingURL.
func (r Role) Job(listingURL string) types.Job {
	return types.Job{
		Company:     r.Company,
		Title:       r.Title,
		Team:        r.Team,
		ListingURL:  listingURL,
		SalaryRange: r.SalaryRange,
	}
}

// Strategy converts the raw content of one job board's listing page into a Role.
type Strategy interface {
	Name() string
	Extract(raw string) (*Role, error)
}

// registry holds the built-in strategies, keyed by domain and by name.
var registry = struct {
	byDomain map[string]Strategy
	byName   map[string]Strategy
}{
	byDomain: map[string]Strategy{},
	byName:   map[string]Strategy{},
}

// register adds a built-in strategy. It panics on a duplicate name or domain.
func register(s Strategy, domains ...string) {
	if _, ok := registry.byName[s.Name()]; ok {
		panic(fmt.Sprintf("extract: strategy %q registered twice", s.Name()))
	}
	registry.byName[s.Name()] = s
	for _, d := range domains {
		d = strings.ToLower(d)
		if _, ok := registry.byDomain[d]; ok {
			panic(fmt.Sprintf("extract: domain %q registered twice", d))
		}
		registry.byDomain[d] = s
	}
}

// Domains returns the domains with a built-in strategy, sorted.
func Domains() []string {
	domains := make([]string, 0, len(registry.byDomain))
	for d := range registry.byDomain {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	return domains
}

// Names returns the names of the built-in strategies, sorted.
func Names() []string {
	names := make([]string, 0, len(registry.byName))
	for n := range registry.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// splitTitleAndTeam splits s on the first sep. Without sep the whole string is the title.
// Both parts are trimmed after the split so a trailing sep still separates.
func splitTitleAndTeam(s, sep string) (title, team string) {
	before, after, found := strings.Cut(s, sep)
	if !found {
		return strings.TrimSpace(s), ""
	}
	return strings.TrimSpace(before), strings.TrimSpace(after)
}
