// ABOUTME: Preview command rendering the markdown log in the terminal.
// ABOUTME: Uses glamour for styled output.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kyle-sutherland/slackdump2markdown/internal/markdown"
	"github.com/kyle-sutherland/slackdump2markdown/internal/transcript"
	"github.com/kyle-sutherland/slackdump2markdown/internal/ui"
)

var previewCmd = &cobra.Command{
	Use:   "preview <export-dir>",
	Short: "Preview the conversation log in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		title, _ := cmd.Flags().GetString("title")
		if title == "" {
			title = cfg.DocTitle
		}

		msgs, err := transcript.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("failed to read export: %w", err)
		}

		rendered, _ := ui.FormatMarkdown(markdown.Render(title, msgs))
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	previewCmd.Flags().StringP("title", "t", "", "document title (default from config)")
	rootCmd.AddCommand(previewCmd)
}
