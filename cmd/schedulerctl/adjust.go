package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"task-scheduler/internal/adjustment"
	"task-scheduler/internal/model"
)

func adjustCmd(opts *rootOptions) *cobra.Command {
	var classifyOnly bool

	cmd := &cobra.Command{
		Use:   "adjust [utterance]",
		Short: "Adjust today's tasks to a described state, e.g. \"我很累，今天任务太多了\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			return withApp(cmd.Context(), opts, func(a *app) error {
				if classifyOnly {
					return runClassify(cmd.Context(), cmd.OutOrStdout(), a.adjustment, text, opts.json)
				}
				sc, err := opts.scope()
				if err != nil {
					return err
				}
				return runAdjust(cmd.Context(), cmd.OutOrStdout(), a.adjustment, sc, text, opts.json)
			})
		},
	}

	cmd.Flags().BoolVar(&classifyOnly, "classify-only", false, "Only detect the state, change nothing")
	return cmd
}

func runClassify(ctx context.Context, w io.Writer, uc adjustment.UseCase, text string, asJSON bool) error {
	st, err := uc.Classify(ctx, adjustment.ClassifyInput{Text: text})
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(w, st)
	}
	fmt.Fprintf(w, "State: %s (confidence %.1f)\n", st.PrimaryState, st.Confidence)
	for _, c := range st.Candidates {
		fmt.Fprintf(w, "  %-9s %-6s %.1f\n", c.State, c.Keyword, c.Confidence)
	}
	return nil
}

func runAdjust(ctx context.Context, w io.Writer, uc adjustment.UseCase, sc model.Scope, text string, asJSON bool) error {
	out, err := uc.Adjust(ctx, sc, adjustment.AdjustInput{Text: text})
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(w, out)
	}

	fmt.Fprintf(w, "State: %s\n", out.State.PrimaryState)
	fmt.Fprintln(w, out.Message)
	if out.Result.Count() == 0 {
		return nil
	}

	printChanges(w, "Postponed", out.Result.Postponed)
	printChanges(w, "Modified", out.Result.Modified)
	printChanges(w, "New", out.Result.New)
	printChanges(w, "Cancelled", out.Result.Cancelled)
	return nil
}

func printChanges(w io.Writer, heading string, changes []adjustment.TaskChange) {
	if len(changes) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", heading)
	for _, c := range changes {
		fmt.Fprintf(w, "  %-22s %s %s -> %s %s\n", c.Action, c.PreviousDate, c.PreviousTime, c.Date, c.Time)
		fmt.Fprintf(w, "  %22s %s\n", "", c.Title)
	}
}
