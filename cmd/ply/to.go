package main

import (
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/ply/internal/document"
	"github.com/jonathan/ply/internal/extract"
	"github.com/jonathan/ply/internal/fetch"
	"github.com/jonathan/ply/internal/snapshot"
	"github.com/jonathan/ply/internal/types"
)

// listingsDir is the data directory subdirectory holding listing snapshots.
const listingsDir = "listings"

type toOptions struct {
	strategy   string
	cycle      string
	noSnapshot bool
}

func newToCmd(a *app) *cobra.Command {
	var opts toOptions

	cmd := &cobra.Command{
		Use:   "to <url>",
		Short: "Create an application from a job listing",
		Long: "Fetch a job listing, extract the company, title, team and salary, snapshot the listing as Markdown " +
			"and record a new application. https URLs are matched to a job board by domain; " +
			"file URLs and local paths need --strategy.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTo(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "Extraction strategy to use instead of inferring it from the domain")
	cmd.Flags().StringVar(&opts.cycle, "cycle", "", "Label grouping this application, e.g. a hiring season")
	cmd.Flags().BoolVar(&opts.noSnapshot, "no-snapshot", false, "Do not store a Markdown copy of the listing")

	_ = cmd.RegisterFlagCompletionFunc("strategy", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := extract.Names()
		if a.cfg != nil {
			for _, b := range a.cfg.Boards {
				names = append(names, b.Name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func (a *app) runTo(cmd *cobra.Command, rawURL string, opts toOptions) error {
	u, err := listingURL(rawURL)
	if err != nil {
		return err
	}

	extractOpts, err := a.extractOptions()
	if err != nil {
		return err
	}
	fetcher := fetch.NewSource(&fetch.Options{
		Timeout:    a.cfg.Fetch.Timeout,
		UserAgent:  a.cfg.Fetch.UserAgent,
		UseBrowser: a.cfg.Fetch.UseBrowser,
		Logger:     a.logger,
	})
	extractor := extract.New(fetcher, extractOpts...)

	listing, err := extractor.Extract(cmd.Context(), u, opts.strategy)
	if err != nil {
		return fmt.Errorf("failed to extract job from %s: %w", u, err)
	}

	application := types.NewApplicationAt(listing.Job, opts.cycle, a.now())

	if !opts.noSnapshot {
		path, err := snapshot.Snapshot(listing.Raw, filepath.Join(a.cfg.DataDir, listingsDir), listing.Job.Filename())
		if err != nil {
			return fmt.Errorf("failed to snapshot listing: %w", err)
		}
		a.logger.Debug("listing snapshot", "path", path)
	}

	path, err := document.Document[types.Application]{Record: application}.WriteNew(a.cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to record application: %w", err)
	}

	a.printf(cmd, "application for %s created at %s\n", application.Summary(), path)
	return nil
}

// listingURL parses raw as a URL. Text without a scheme is taken as a local file path.
func listingURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL %q: %w", raw, err)
	}
	if u.Scheme != "" {
		return u, nil
	}

	abs, err := filepath.Abs(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %q: %w", raw, err)
	}
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}, nil
}
