package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/ply/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the path of the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.cfg.Path
			if path == "" {
				path = config.DefaultPath()
			}
			a.printf(cmd, "%s\n", path)
			return nil
		},
	}
}

func newDataDirectoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "data-directory",
		Short: "Print the directory applications are stored in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.printf(cmd, "%s\n", a.cfg.DataDir)
			return nil
		},
	}
}
