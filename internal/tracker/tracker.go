// Package tracker loads the application documents in a data directory and answers
// questions across them.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ply/internal/document"
	"github.com/jonathan/ply/internal/types"
)

const defaultWorkers = 8

// Entry is an application document and where it was read from.
type Entry struct {
	Path        string
	Application types.Application
	Content     string
}

// Options configures Load.
type Options struct {
	Logger  *slog.Logger
	Workers int
}

// Load reads every application document directly inside dir, in filename order. Hidden
// files, subdirectories and non-Markdown files are skipped, and so are documents that fail
// to parse, with a warning. A missing dir holds no applications.
func Load(ctx context.Context, dir string, opts Options) ([]Entry, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	dirEntries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range dirEntries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != ".md" {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}

	results := make([]*Entry, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := document.Read[types.Application](path)
			if err != nil {
				logger.Warn("skipping unreadable application", "path", path, "error", err)
				return nil
			}
			results[i] = &Entry{Path: path, Application: doc.Record, Content: doc.Content}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(results))
	for _, r := range results {
		if r != nil {
			entries = append(entries, *r)
		}
	}
	logger.Debug("loaded applications", "dir", dir, "count", len(entries), "skipped", len(paths)-len(entries))
	return entries, nil
}

// Filter selects applications.
type Filter func(types.Application) bool

// Active selects applications whose current stage is not terminal.
func Active() Filter {
	return types.Application.IsActive
}

// Interviewing selects active applications past the Applied stage.
func Interviewing() Filter {
	return types.Application.IsInterviewing
}

// Ghosted selects active applications whose current stage started more than after
// before now.
func Ghosted(now time.Time, after time.Duration) Filter {
	return func(a types.Application) bool {
		return a.IsGhosted(now, after)
	}
}

// Select returns the entries accepted by every filter.
func Select(entries []Entry, filters ...Filter) []Entry {
	var out []Entry
	for _, e := range entries {
		keep := true
		for _, f := range filters {
			if !f(e.Application) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, e)
		}
	}
	return out
}

// Companies returns the distinct companies applied to, sorted.
func Companies(entries []Entry) []string {
	return distinct(entries, func(a types.Application) string { return a.Job.Company })
}

// Cycles returns the distinct non-empty cycles, sorted.
func Cycles(entries []Entry) []string {
	return distinct(entries, func(a types.Application) string { return a.Cycle })
}

func distinct(entries []Entry, key func(types.Application) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entries {
		k := key(e.Application)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
