package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

var ErrUnsupportedCredentials = errors.New("unsupported credentials format: expected a service account or an installed OAuth client")

// DesktopConfig builds the OAuth config of an installed (desktop) client.
func DesktopConfig(credentialsJSON []byte) (*oauth2.Config, error) {
	var desktop struct {
		Installed *struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"installed"`
	}
	if err := json.Unmarshal(credentialsJSON, &desktop); err != nil || desktop.Installed == nil {
		return nil, ErrUnsupportedCredentials
	}
	return &oauth2.Config{
		ClientID:     desktop.Installed.ClientID,
		ClientSecret: desktop.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
		RedirectURL:  "urn:ietf:wg:oauth:2.0:oob",
	}, nil
}

// Authorizer runs the one-off offline consent flow that produces the token file.
type Authorizer struct {
	cfg *oauth2.Config
}

func NewAuthorizer(credentialsJSON []byte) (*Authorizer, error) {
	cfg, err := DesktopConfig(credentialsJSON)
	if err != nil {
		return nil, err
	}
	return &Authorizer{cfg: cfg}, nil
}

// URL is the consent page the user opens in a browser.
func (a *Authorizer) URL(state string) string {
	return a.cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades the pasted authorization code for a token and writes it to path.
func (a *Authorizer) Exchange(ctx context.Context, code, path string) (*oauth2.Token, error) {
	if code == "" {
		return nil, errors.New("authorization code is empty")
	}
	tok, err := a.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	if err := SaveToken(path, tok); err != nil {
		return nil, err
	}
	return tok, nil
}

// SaveToken writes tok as JSON with owner-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	if path == "" {
		path = DefaultTokenPath
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
