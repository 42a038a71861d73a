package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/ply/internal/document"
	"github.com/jonathan/ply/internal/observability"
	"github.com/jonathan/ply/internal/types"
)

func newShowCmd(a *app) *cobra.Command {
	var showContent bool

	cmd := &cobra.Command{
		Use:   "show <application>",
		Short: "Print an application and its stage history",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return []string{"md"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.Read[types.Application](args[0])
			if err != nil {
				return err
			}

			observability.NewPrinter(cmd.OutOrStdout()).PrintApplication(&doc.Record, a.ghostAfter())
			if showContent && doc.Content != "" {
				a.printf(cmd, "\n%s\n", doc.Content)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showContent, "content", false, "Also print the notes stored below the frontmatter")
	return cmd
}
