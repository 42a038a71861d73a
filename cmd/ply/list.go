package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/ply/internal/tracker"
)

type listOptions struct {
	active       bool
	interviewing bool
	ghosted      bool
}

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked applications or companies",
	}
	cmd.AddCommand(newListApplicationsCmd(a), newListCompaniesCmd(a))
	return cmd
}

func newListApplicationsCmd(a *app) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:     "applications",
		Aliases: []string{"apps"},
		Short:   "Print the path of every application, oldest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := a.entries(cmd)
			if err != nil {
				return err
			}

			var filters []tracker.Filter
			if opts.active {
				filters = append(filters, tracker.Active())
			}
			if opts.interviewing {
				filters = append(filters, tracker.Interviewing())
			}
			if opts.ghosted {
				filters = append(filters, tracker.Ghosted(a.now(), a.ghostAfter()))
			}

			for _, e := range tracker.Select(entries, filters...) {
				a.printf(cmd, "%s\n", e.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.active, "active", false, "Only applications without a final outcome")
	cmd.Flags().BoolVar(&opts.interviewing, "interviewing", false, "Only active applications past the Applied stage")
	cmd.Flags().BoolVar(&opts.ghosted, "ghosted", false, "Only active applications with no progress for days_to_ghost days")
	return cmd
}

func newListCompaniesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "companies",
		Short: "Print every company applied to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := a.entries(cmd)
			if err != nil {
				return err
			}
			for _, company := range tracker.Companies(entries) {
				a.printf(cmd, "%s\n", company)
			}
			return nil
		},
	}
}

func newCyclesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cycles",
		Short: "Print every application cycle in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := a.entries(cmd)
			if err != nil {
				return err
			}
			for _, cycle := range tracker.Cycles(entries) {
				a.printf(cmd, "%s\n", cycle)
			}
			return nil
		},
	}
}

func (a *app) entries(cmd *cobra.Command) ([]tracker.Entry, error) {
	return tracker.Load(cmd.Context(), a.cfg.DataDir, tracker.Options{Logger: a.logger})
}
