package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"task-scheduler/internal/model"
	"task-scheduler/internal/schedule"
)

func reportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show how many incomplete tasks are scheduled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := opts.scope()
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), opts, func(a *app) error {
				return runReport(cmd.Context(), cmd.OutOrStdout(), a.schedule, sc, opts.json)
			})
		},
	}
}

func runReport(ctx context.Context, w io.Writer, uc schedule.UseCase, sc model.Scope, asJSON bool) error {
	r, err := uc.ScheduleReport(ctx, sc)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(w, r)
	}

	fmt.Fprintf(w, "Incomplete:  %d\n", r.TotalTasks)
	fmt.Fprintf(w, "Scheduled:   %d\n", r.ScheduledTasks)
	fmt.Fprintf(w, "Unscheduled: %d\n", r.UnscheduledTasks)
	fmt.Fprintf(w, "Rate:        %.1f%%\n", r.SchedulingRate)
	fmt.Fprintf(w, "Today:       %d\n", r.TodayTasks)
	return nil
}
