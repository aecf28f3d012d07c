// ABOUTME: Backend-independent markdown and plain-text renderings.
// ABOUTME: Derivable from the message list without touching the document backend.

package markdown

import (
	"fmt"
	"strings"

	"github.com/kyle-sutherland/slackdump2markdown/internal/docops"
	"github.com/kyle-sutherland/slackdump2markdown/internal/models"
)

// Render produces the markdown conversation log: one paragraph per message,
// attachments as inline references, ---- separators.
func Render(title string, msgs []*models.Message) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)

	for _, m := range msgs {
		fmt.Fprintf(&sb, "**[%s] - %s:**\n\n%s\n\n", m.Timestamp(), m.Author, m.Body)
		for _, att := range m.Attachments {
			switch a := att.(type) {
			case models.FileAttachment:
				fmt.Fprintf(&sb, "[Attachment: %s](%s)\n\n", a.DisplayName, a.LocalPath)
			case models.LinkAttachment:
				label := a.Title
				if label == "" {
					label = a.URL
				}
				fmt.Fprintf(&sb, "[%s](%s)\n\n", label, a.URL)
			}
		}
		sb.WriteString("----\n\n")
	}

	return sb.String()
}

// FileResolver maps a file attachment to its rendered form: ok=false skips it
// (missing resource), inline=true means the file appears as an inline image
// (caption only, no link line), otherwise viewerURL fills the link line.
type FileResolver func(a models.FileAttachment) (viewerURL string, inline bool, ok bool)

// RenderPlain produces exactly the text the operation builder inserts for the
// same messages, minus the title block. The document round-trips: stripping
// style and image operations from an assembled batch and concatenating the
// rest yields this string.
func RenderPlain(msgs []*models.Message, resolve FileResolver) string {
	var sb strings.Builder

	for _, m := range msgs {
		sb.WriteString(docops.HeaderText(m))
		for _, att := range m.Attachments {
			switch a := att.(type) {
			case models.FileAttachment:
				if resolve == nil {
					continue
				}
				viewerURL, inline, ok := resolve(a)
				if !ok {
					continue
				}
				sb.WriteString(docops.CaptionText(a.DisplayName))
				if !inline {
					sb.WriteString(docops.FileLinkText(viewerURL))
				}
			case models.LinkAttachment:
				sb.WriteString(docops.LinkText(a.URL))
			}
		}
	}

	return sb.String()
}
