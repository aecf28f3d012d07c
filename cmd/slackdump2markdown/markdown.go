// ABOUTME: Markdown command writing the backend-independent rendering.
// ABOUTME: Supports markdown and plain-text output formats.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kyle-sutherland/slackdump2markdown/internal/markdown"
	"github.com/kyle-sutherland/slackdump2markdown/internal/models"
	"github.com/kyle-sutherland/slackdump2markdown/internal/transcript"
	"github.com/kyle-sutherland/slackdump2markdown/internal/ui"
)

var markdownCmd = &cobra.Command{
	Use:   "markdown <export-dir>",
	Short: "Render a Slack export as a markdown log",
	Long:  `Render the export as markdown without touching any document backend.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		title, _ := cmd.Flags().GetString("title")
		if title == "" {
			title = cfg.DocTitle
		}
		outputPath, _ := cmd.Flags().GetString("output")
		plain, _ := cmd.Flags().GetBool("plain")

		msgs, err := transcript.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("failed to read export: %w", err)
		}

		var content string
		if plain {
			content = markdown.RenderPlain(msgs, localResolver(dir))
		} else {
			content = markdown.Render(title, msgs)
		}

		if outputPath == "-" {
			fmt.Print(content)
			return nil
		}
		if outputPath == "" {
			outputPath = filepath.Join(dir, "output.md")
		}

		if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Rendered %d messages to %s", len(msgs), outputPath)))
		return nil
	},
}

// localResolver renders file attachments against the local export tree: a
// missing file is skipped, everything present gets a file:// viewer line.
func localResolver(dir string) markdown.FileResolver {
	return func(a models.FileAttachment) (string, bool, bool) {
		full := filepath.Join(dir, a.LocalPath)
		if _, err := os.Stat(full); err != nil {
			return "", false, false
		}
		return "file://" + filepath.ToSlash(full), false, true
	}
}

func init() {
	markdownCmd.Flags().StringP("title", "t", "", "document title (default from config)")
	markdownCmd.Flags().StringP("output", "o", "", "output path ('-' for stdout, default: <dir>/output.md)")
	markdownCmd.Flags().Bool("plain", false, "emit the plain-text document rendering instead of markdown")
	rootCmd.AddCommand(markdownCmd)
}
