package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/ply/internal/config"
	"github.com/jonathan/ply/internal/observability"
)

// app carries what every subcommand needs once flags and configuration are resolved.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time
}

func newRootCmd() *cobra.Command {
	a := &app{now: time.Now}

	rootCmd := &cobra.Command{
		Use:   "ply",
		Short: "Track job applications as local Markdown records",
		Long: "ply records job applications as Markdown files with YAML frontmatter. " +
			"It can create a record straight from a job listing URL by extracting the company, title, team and salary.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(
		newToCmd(a),
		newYesCmd(a),
		newNoCmd(a),
		newShowCmd(a),
		newListCmd(a),
		newCyclesCmd(a),
		newConfigCmd(a),
		newDataDirectoryCmd(a),
	)
	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Verbose = true
	}
	a.cfg = cfg
	a.logger = observability.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	a.logger.Debug("loaded configuration", "path", cfg.Path, "data_dir", cfg.DataDir)
	return nil
}

func (a *app) ghostAfter() time.Duration {
	return time.Duration(a.cfg.DaysToGhost) * 24 * time.Hour
}

func (a *app) printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
