package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"task-scheduler/internal/model"
	"task-scheduler/internal/schedule"
)

func sweepCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Give every unscheduled task a conflict-free slot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := opts.scope()
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), opts, func(a *app) error {
				return runSweep(cmd.Context(), cmd.OutOrStdout(), a.schedule, sc, opts.json)
			})
		},
	}
}

func runSweep(ctx context.Context, w io.Writer, uc schedule.UseCase, sc model.Scope, asJSON bool) error {
	out, err := uc.SweepUnscheduled(ctx, sc)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(w, out)
	}

	if out.ScheduledCount == 0 {
		fmt.Fprintln(w, "Nothing to schedule.")
		return nil
	}
	fmt.Fprintf(w, "Scheduled %d task(s):\n", out.ScheduledCount)
	for _, t := range out.UpdatedTasks {
		flag := ""
		if t.Fallback {
			flag = "  (fallback, may overlap)"
		}
		fmt.Fprintf(w, "  %s %s  %-10s %3dm  %s%s\n", t.Date, t.Time, t.TimeBlockType, t.DurationMinutes, t.Title, flag)
	}
	return nil
}
