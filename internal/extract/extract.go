package extract

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jonathan/ply/internal/fetch"
	"github.com/jonathan/ply/internal/types"
)

// Listing is the outcome of a successful extraction.
type Listing struct {
	Job types.Job
	// Raw is the fetched page, kept for snapshotting.
	Raw      string
	Strategy string
}

// Extractor resolves a strategy for a URL, fetches the page and extracts its Job.
type Extractor struct {
	fetcher  fetch.Fetcher
	logger   *slog.Logger
	byDomain map[string]Strategy
	byName   map[string]Strategy
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for resolution and extraction events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// WithStrategy registers s for domain on this extractor only, replacing any built-in
// strategy for that domain. s is also selectable by name.
func WithStrategy(domain string, s Strategy) Option {
	return func(e *Extractor) {
		e.byDomain[strings.ToLower(domain)] = s
		e.byName[s.Name()] = s
	}
}

// New creates an Extractor over the built-in strategies.
func New(fetcher fetch.Fetcher, opts ...Option) *Extractor {
	e := &Extractor{
		fetcher:  fetcher,
		logger:   slog.Default(),
		byDomain: make(map[string]Strategy, len(registry.byDomain)),
		byName:   make(map[string]Strategy, len(registry.byName)),
	}
	for d, s := range registry.byDomain {
		e.byDomain[d] = s
	}
	for n, s := range registry.byName {
		e.byName[n] = s
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolve picks the strategy for u. A non-empty forced name always wins. Otherwise only
// https URLs are dispatched, by exact host.
func (e *Extractor) Resolve(u *url.URL, forced string) (Strategy, error) {
	if forced != "" {
		s, ok := e.byName[forced]
		if !ok {
			s, ok = e.byName[strings.ToLower(forced)]
		}
		if !ok {
			return nil, &UnknownStrategyError{Name: forced}
		}
		return s, nil
	}

	if u.Scheme != "https" {
		return nil, ErrAmbiguousSource
	}
	host := strings.ToLower(u.Hostname())
	s, ok := e.byDomain[host]
	if !ok {
		return nil, &UnknownDomainError{Domain: host}
	}
	return s, nil
}

// Extract resolves a strategy, fetches u and extracts the Job. Job.ListingURL is always
// set to u.
func (e *Extractor) Extract(ctx context.Context, u *url.URL, forced string) (*Listing, error) {
	strategy, err := e.Resolve(u, forced)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("resolved extraction strategy", "url", u.String(), "strategy", strategy.Name())

	raw, err := e.fetcher.Fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	role, err := strategy.Extract(raw)
	if err != nil {
		return nil, err
	}
	job := role.Job(u.String())
	e.logger.Info("extracted job", "strategy", strategy.Name(), "company", job.Company, "title", job.Title, "team", job.Team)

	return &Listing{Job: job, Raw: raw, Strategy: strategy.Name()}, nil
}
