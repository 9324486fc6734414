package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"task-scheduler/config"
	"task-scheduler/pkg/gcalendar"
)

func calendarAuthCmd() *cobra.Command {
	var credsPath, tokenPath string

	cmd := &cobra.Command{
		Use:   "calendar-auth",
		Short: "Authorize Google Calendar access once and write the OAuth token file",
		Long: "Prints a consent URL for an OAuth desktop client, reads the authorization code " +
			"from stdin and stores the token where the server looks for it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if credsPath == "" || tokenPath == "" {
				cfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if credsPath == "" {
					credsPath = cfg.GoogleCalendar.CredentialsPath
				}
				if tokenPath == "" {
					tokenPath = cfg.GoogleCalendar.TokenPath
				}
			}
			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials file %q: %w", credsPath, err)
			}
			a, err := gcalendar.NewAuthorizer(data)
			if err != nil {
				return err
			}
			return runCalendarAuth(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), a, tokenPath)
		},
	}
	cmd.Flags().StringVar(&credsPath, "credentials", "", "OAuth desktop client JSON (default: google_calendar.credentials_path)")
	cmd.Flags().StringVar(&tokenPath, "token", "", "Where to write the token (default: google_calendar.token_path)")
	return cmd
}

func runCalendarAuth(ctx context.Context, in io.Reader, w io.Writer, a *gcalendar.Authorizer, tokenPath string) error {
	fmt.Fprintln(w, "Open this URL in a browser and sign in:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, a.URL("schedulerctl"))
	fmt.Fprintln(w)
	fmt.Fprint(w, "Paste the authorization code: ")

	code, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("read authorization code: %w", err)
	}
	if _, err := a.Exchange(ctx, strings.TrimSpace(code), tokenPath); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nToken saved to %s. Restart the API server to enable calendar mirroring.\n", tokenPath)
	return nil
}
