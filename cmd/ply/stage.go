package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ply/internal/document"
	"github.com/jonathan/ply/internal/types"
)

func newYesCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "yes <application> <stage> [deadline...]",
		Short: "Advance an application to a new stage",
		Long: "Record that an application moved forward. Stage is one of " + stageTypeList() + ". " +
			"An optional deadline accepts a date (2025-03-04), a date and time (2025-03-04 15:00), " +
			"an RFC 3339 timestamp, \"tomorrow\" or \"in N days\".",
		Args: cobra.MinimumNArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return stageTypeNames(), cobra.ShellCompDirectiveNoFileComp
			}
			if len(args) == 0 {
				return []string{"md"}, cobra.ShellCompDirectiveFilterFileExt
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			stageType, err := types.ParseStageType(args[1])
			if err != nil {
				return err
			}
			stage := types.NewStage(stageType, a.now())
			stage.Name = strings.TrimSpace(name)
			if len(args) > 2 {
				deadline, err := types.ParseDeadline(strings.Join(args[2:], " "), a.now())
				if err != nil {
					return err
				}
				stage = stage.WithDeadline(deadline)
			}
			return a.advance(cmd, args[0], stage)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Label for the stage, e.g. the interviewer or round")
	return cmd
}

func newNoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "no <application>",
		Short: "Mark an application as rejected",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return []string{"md"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.advance(cmd, args[0], types.NewStage(types.StageRejected, a.now()))
		},
	}
}

// advance appends stage to the application stored at path and rewrites that file.
// Applications that already reached a terminal stage are left untouched.
func (a *app) advance(cmd *cobra.Command, path string, stage types.Stage) error {
	doc, err := document.Read[types.Application](path)
	if err != nil {
		return err
	}

	application := doc.Record
	if !application.IsActive() {
		current, _ := application.CurrentStage()
		a.printf(cmd, "%s is no longer active (%s), nothing to do\n", application.Summary(), current.StageType)
		return nil
	}

	application.AddStage(stage)
	doc.Record = application
	if err := doc.Overwrite(path); err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}
	a.logger.Debug("application updated", "path", path, "stage", stage.StageType)

	a.printf(cmd, "%s: %s\n", application.Summary(), stage.StageType)
	return nil
}

func stageTypeNames() []string {
	stageTypes := types.StageTypes()
	names := make([]string, len(stageTypes))
	for i, t := range stageTypes {
		names[i] = t.String()
	}
	return names
}

func stageTypeList() string {
	return strings.Join(stageTypeNames(), ", ")
}
