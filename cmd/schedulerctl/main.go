package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "schedulerctl",
		Short:         "Schedule backlog tasks and adjust a user's day from the command line",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.user, "user", "u", "", "User ID to act for")
	rootCmd.PersistentFlags().BoolVarP(&opts.json, "json", "j", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log at the configured level instead of warn")

	rootCmd.AddCommand(sweepCmd(opts))
	rootCmd.AddCommand(adjustCmd(opts))
	rootCmd.AddCommand(parseCmd(opts))
	rootCmd.AddCommand(reportCmd(opts))
	rootCmd.AddCommand(calendarAuthCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
