// ABOUTME: Google OAuth installed-app flow with a token cache file.
// ABOUTME: Produces an authorized HTTP client for the Docs and Drive services.

package googleauth

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scopes required to create documents and upload attachments.
var Scopes = []string{
	"https://www.googleapis.com/auth/documents",
	"https://www.googleapis.com/auth/drive.file",
}

// Client returns an authorized HTTP client. A valid cached token is reused;
// otherwise the installed-app flow runs on the terminal and the new token is
// written to tokenPath.
func Client(ctx context.Context, credentialsPath, tokenPath string) (*http.Client, error) {
	cfg, err := loadConfig(credentialsPath)
	if err != nil {
		return nil, err
	}

	tok, err := tokenFromFile(tokenPath)
	if err != nil {
		tok, err = Login(ctx, cfg, tokenPath)
		if err != nil {
			return nil, err
		}
	}

	return cfg.Client(ctx, tok), nil
}

// Refresh forces a fresh interactive login regardless of any cached token.
func Refresh(ctx context.Context, credentialsPath, tokenPath string) error {
	cfg, err := loadConfig(credentialsPath)
	if err != nil {
		return err
	}
	_, err = Login(ctx, cfg, tokenPath)
	return err
}

func loadConfig(credentialsPath string) (*oauth2.Config, error) {
	data, err := os.ReadFile(credentialsPath) //nolint:gosec // Path comes from user config
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	cfg, err := google.ConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	return cfg, nil
}

// Login runs the out-of-band flow: print the consent URL, read the code, and
// persist the exchanged token.
func Login(ctx context.Context, cfg *oauth2.Config, tokenPath string) (*oauth2.Token, error) {
	url := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open the following link in your browser, then paste the authorization code:\n%s\n\n> ", url)

	reader := bufio.NewReader(os.Stdin)
	code, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)

	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	if err := saveToken(tokenPath, tok); err != nil {
		return nil, err
	}
	return tok, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from user config
	if err != nil {
		return nil, err
	}
	tok := &oauth2.Token{}
	if err := json.Unmarshal(data, tok); err != nil {
		return nil, fmt.Errorf("parse token file: %w", err)
	}
	return tok, nil
}

func saveToken(path string, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}
