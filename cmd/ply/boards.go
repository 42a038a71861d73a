package main

import (
	"fmt"

	"github.com/jonathan/ply/internal/config"
	"github.com/jonathan/ply/internal/extract"
)

// extractOptions registers the configured boards as Mini strategies.
func (a *app) extractOptions() ([]extract.Option, error) {
	opts := []extract.Option{extract.WithLogger(a.logger)}
	for _, b := range a.cfg.Boards {
		mini, err := miniStrategy(b)
		if err != nil {
			return nil, fmt.Errorf("board %q: %w", b.Name, err)
		}
		opts = append(opts, extract.WithStrategy(b.Domain, mini))
	}
	return opts, nil
}

func miniStrategy(b config.Board) (extract.Mini, error) {
	titlePattern, err := b.CompileTitlePattern()
	if err != nil {
		return extract.Mini{}, err
	}
	salaryPattern, err := b.CompileSalaryPattern()
	if err != nil {
		return extract.Mini{}, err
	}
	return extract.Mini{
		BoardName:      b.Name,
		Company:        b.Company,
		TitleSelector:  b.TitleSelector,
		TitlePattern:   titlePattern,
		SalarySelector: b.SalarySelector,
		SalaryPattern:  salaryPattern,
	}, nil
}
