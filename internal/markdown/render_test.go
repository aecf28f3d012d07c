// ABOUTME: Tests for markdown and plain-text renderings.
// ABOUTME: Validates formatting, separators, and resolver behavior.

package markdown

import (
	"strings"
	"testing"

	"github.com/kyle-sutherland/slackdump2markdown/internal/models"
)

func testMessages() []*models.Message {
	return []*models.Message{
		{Date: "2024-01-01", Time: "09:00:00", Author: "Alice", Body: "hi"},
		{Date: "2024-01-01", Time: "09:05:00", Author: "Bob", Body: "look",
			Attachments: []models.Attachment{
				models.FileAttachment{DisplayName: "pic.png", LocalPath: "attachments/pic.png"},
				models.LinkAttachment{Title: "Site", URL: "https://e.com"},
			}},
	}
}

func TestRender(t *testing.T) {
	out := Render("Team Log", testMessages())

	if !strings.HasPrefix(out, "# Team Log\n\n") {
		t.Errorf("missing title heading:\n%s", out)
	}
	if !strings.Contains(out, "**[2024-01-01 09:00:00] - Alice:**\n\nhi\n\n") {
		t.Errorf("missing Alice paragraph:\n%s", out)
	}
	if !strings.Contains(out, "[Attachment: pic.png](attachments/pic.png)\n\n") {
		t.Errorf("missing file reference:\n%s", out)
	}
	if !strings.Contains(out, "[Site](https://e.com)\n\n") {
		t.Errorf("missing link reference:\n%s", out)
	}
	if got := strings.Count(out, "----\n\n"); got != 2 {
		t.Errorf("expected one separator per message, got %d", got)
	}
}

func TestRenderLinkWithoutTitle(t *testing.T) {
	msgs := []*models.Message{
		{Date: "2024-01-01", Time: "09:00:00", Author: "A", Body: "",
			Attachments: []models.Attachment{models.LinkAttachment{URL: "https://e.com"}}},
	}
	out := Render("T", msgs)
	if !strings.Contains(out, "[https://e.com](https://e.com)") {
		t.Errorf("expected URL used as title:\n%s", out)
	}
}

func TestRenderPlain(t *testing.T) {
	resolver := func(a models.FileAttachment) (string, bool, bool) {
		return "https://example.com/" + a.DisplayName, false, true
	}

	out := RenderPlain(testMessages(), resolver)

	want := "Alice [2024-01-01 09:00:00]: hi\n\n" +
		"Bob [2024-01-01 09:05:00]: look\n\n" +
		"\n\nAttachment: pic.png\n\n" +
		"Link to file: https://example.com/pic.png\n\n" +
		"\n\nhttps://e.com\n\n"
	if out != want {
		t.Errorf("RenderPlain mismatch:\n got %q\nwant %q", out, want)
	}
}

func TestRenderPlainInlineImageHasNoLinkLine(t *testing.T) {
	resolver := func(a models.FileAttachment) (string, bool, bool) {
		return "", true, true
	}

	msgs := testMessages()[1:]
	out := RenderPlain(msgs, resolver)

	if !strings.Contains(out, "Attachment: pic.png") {
		t.Errorf("missing caption:\n%q", out)
	}
	if strings.Contains(out, "Link to file:") {
		t.Errorf("inline image should not render a link line:\n%q", out)
	}
}

func TestRenderPlainNilResolverSkipsFiles(t *testing.T) {
	out := RenderPlain(testMessages(), nil)
	if strings.Contains(out, "Attachment:") {
		t.Errorf("expected file attachments skipped without a resolver:\n%q", out)
	}
	if !strings.Contains(out, "\n\nhttps://e.com\n\n") {
		t.Errorf("link attachments must still render:\n%q", out)
	}
}

func TestRenderPlainSuppressesBareURLBody(t *testing.T) {
	msgs := []*models.Message{
		{Date: "2024-01-01", Time: "09:00:00", Author: "A", Body: "<https://x/y>"},
	}
	out := RenderPlain(msgs, nil)
	if out != "A [2024-01-01 09:00:00]: \n\n" {
		t.Errorf("expected suppressed body, got %q", out)
	}
}
