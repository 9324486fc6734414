package gcalendar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/oauth2"
)

const installedCreds = `{"installed": {"client_id": "cid.apps.googleusercontent.com", "client_secret": "secret"}}`

func TestDesktopConfig(t *testing.T) {
	tcs := map[string]struct {
		creds   string
		wantErr bool
	}{
		"installed client": {creds: installedCreds},
		"web client":       {creds: `{"web": {"client_id": "x"}}`, wantErr: true},
		"not json":         {creds: `nope`, wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			cfg, err := DesktopConfig([]byte(tc.creds))
			if tc.wantErr {
				if !errors.Is(err, ErrUnsupportedCredentials) {
					t.Fatalf("error = %v, want ErrUnsupportedCredentials", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.ClientID != "cid.apps.googleusercontent.com" {
				t.Errorf("ClientID = %q", cfg.ClientID)
			}
		})
	}
}

func TestAuthorizerURL(t *testing.T) {
	a, err := NewAuthorizer([]byte(installedCreds))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u := a.URL("state-1")
	if !strings.Contains(u, "access_type=offline") || !strings.Contains(u, "state=state-1") {
		t.Errorf("URL = %s", u)
	}
}

func TestAuthorizerExchange(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		if r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": "invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "at", "refresh_token": "rt", "token_type": "Bearer", "expires_in": 3600}`))
	}))
	defer ts.Close()

	a, err := NewAuthorizer([]byte(installedCreds))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.cfg.Endpoint = oauth2.Endpoint{TokenURL: ts.URL, AuthStyle: oauth2.AuthStyleInParams}

	path := filepath.Join(t.TempDir(), "token.json")

	if _, err := a.Exchange(context.Background(), "", path); err == nil {
		t.Error("expected error on empty code")
	}
	if _, err := a.Exchange(context.Background(), "bad-code", path); err == nil {
		t.Error("expected error on rejected code")
	}

	tok, err := a.Exchange(context.Background(), "good-code", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.RefreshToken != "rt" {
		t.Errorf("RefreshToken = %q", tok.RefreshToken)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("token file not written: %v", err)
	}
	if !strings.Contains(string(raw), `"access_token":"at"`) {
		t.Errorf("token file = %s", raw)
	}

	// The saved token must be accepted by the client constructor.
	if _, err := NewFromJSON(context.Background(), []byte(installedCreds), Options{TokenPath: path}); err != nil {
		t.Errorf("NewFromJSON with saved token: %v", err)
	}
}
