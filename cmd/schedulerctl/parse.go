package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"task-scheduler/internal/schedule"
	"task-scheduler/pkg/datemath"
)

func parseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [text]",
		Short: "Show how a time phrase and duration would be understood",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(a *app) error {
				return runParse(cmd.Context(), cmd.OutOrStdout(), a.schedule, strings.Join(args, " "), opts.json)
			})
		},
	}
}

func runParse(ctx context.Context, w io.Writer, uc schedule.UseCase, text string, asJSON bool) error {
	out, err := uc.ParseTime(ctx, schedule.ParseInput{Text: text})
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(w, out)
	}

	h := out.Hint
	fmt.Fprintf(w, "Kind:       %s\n", h.Kind)
	fmt.Fprintf(w, "Date:       %s\n", h.DateString())
	switch h.Kind {
	case datemath.HintSpecific:
		fmt.Fprintf(w, "Time:       %s (%s)\n", h.Time, h.Block)
	case datemath.HintPeriod:
		fmt.Fprintf(w, "Period:     %s %s-%s (%s)\n", h.Period, h.Window.Start, h.Window.End, h.Block)
	}
	fmt.Fprintf(w, "Confidence: %.1f\n", h.Confidence)
	if out.DurationFound {
		fmt.Fprintf(w, "Duration:   %dm\n", out.DurationMinutes)
	} else {
		fmt.Fprintf(w, "Duration:   %dm (default)\n", out.DurationMinutes)
	}
	return nil
}
