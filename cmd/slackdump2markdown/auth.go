// ABOUTME: Auth command running the Google OAuth flow explicitly.
// ABOUTME: Stores the exchanged token at the configured path.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kyle-sutherland/slackdump2markdown/internal/googleauth"
	"github.com/kyle-sutherland/slackdump2markdown/internal/ui"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authorize access to Google Docs and Drive",
	Long:  `Run the OAuth consent flow and cache the token for later converts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := googleauth.Refresh(cmd.Context(), cfg.CredentialsFile, cfg.TokenFile); err != nil {
			return fmt.Errorf("failed to authorize: %w", err)
		}
		fmt.Println(ui.Success(fmt.Sprintf("Token saved to %s", cfg.TokenFile)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
}
