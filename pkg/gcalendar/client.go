package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	DefaultCalendarID = "primary"
	DefaultTokenPath  = "token.json"
)

var ErrMissingToken = errors.New("google credentials are an OAuth desktop client but no token file was found")

// Options configures where credentials come from and which calendar is used.
type Options struct {
	CredentialsPath string
	// TokenPath is read when the credentials are an OAuth desktop client.
	TokenPath  string
	CalendarID string
}

// Client wraps the Google Calendar API service for one calendar.
type Client struct {
	service    *calendar.Service
	calendarID string
}

// New builds a Client from a credentials file on disk.
func New(ctx context.Context, opt Options) (*Client, error) {
	data, err := os.ReadFile(opt.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}
	return NewFromJSON(ctx, data, opt)
}

// NewFromJSON accepts either a service account key or an OAuth desktop client
// plus a previously issued token at opt.TokenPath.
func NewFromJSON(ctx context.Context, credentialsJSON []byte, opt Options) (*Client, error) {
	ts, err := tokenSource(ctx, credentialsJSON, opt.TokenPath)
	if err != nil {
		return nil, err
	}
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &Client{service: svc, calendarID: calendarOrDefault(opt.CalendarID)}, nil
}

// NewFromHTTP builds a Client on a pre-authorised HTTP client.
func NewFromHTTP(ctx context.Context, httpClient *http.Client, calendarID string) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &Client{service: svc, calendarID: calendarOrDefault(calendarID)}, nil
}

func tokenSource(ctx context.Context, credentialsJSON []byte, tokenPath string) (oauth2.TokenSource, error) {
	if jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope); err == nil {
		return jwtCfg.TokenSource(ctx), nil
	}

	cfg, err := DesktopConfig(credentialsJSON)
	if err != nil {
		return nil, err
	}

	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	raw, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingToken, tokenPath)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("parse %s: %w", tokenPath, err)
	}
	return cfg.TokenSource(ctx, &tok), nil
}

func calendarOrDefault(id string) string {
	if id == "" {
		return DefaultCalendarID
	}
	return id
}
