// ABOUTME: Terminal UI formatting for converter output.
// ABOUTME: Uses glamour for markdown and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"

	"github.com/kyle-sutherland/slackdump2markdown/internal/docops"
	"github.com/kyle-sutherland/slackdump2markdown/internal/models"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

func FormatMessageListItem(m *models.Message) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("  %s  %s\n", faint("["+m.Timestamp()+"]"), bold(m.Author)))

	body := docops.DisplayBody(m)
	if body != "" {
		if idx := strings.IndexByte(body, '\n'); idx >= 0 {
			body = body[:idx] + "…"
		}
		sb.WriteString(fmt.Sprintf("         %s\n", body))
	}

	if n := len(m.Attachments); n > 0 {
		sb.WriteString(fmt.Sprintf("         %s %s\n",
			faint("Attachments:"),
			cyan(fmt.Sprintf("%d", n))))
	}

	return sb.String()
}

// FormatBatchSummary describes an assembled batch before or after submission.
func FormatBatchSummary(b *docops.Batch, messages int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", bold(b.Title)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Build:"), faint(b.ID.String()[:8])))
	sb.WriteString(fmt.Sprintf("%s %d\n", faint("Messages:"), messages))
	sb.WriteString(fmt.Sprintf("%s %d\n", faint("Operations:"), len(b.Operations)))
	sb.WriteString(fmt.Sprintf("%s %d\n", faint("Text length:"), b.TextLength))
	if b.SkippedAttachments > 0 {
		sb.WriteString(fmt.Sprintf("%s %d\n", faint("Skipped attachments:"), b.SkippedAttachments))
	}

	return sb.String()
}

// FormatMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer is unavailable.
func FormatMarkdown(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
