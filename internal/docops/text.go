// ABOUTME: Shared text fragments for document assembly.
// ABOUTME: Header, caption, and link lines used by builder and plain rendering.

package docops

import (
	"fmt"
	"regexp"

	"github.com/kyle-sutherland/slackdump2markdown/internal/models"
)

// bareURL matches a body that is exactly one angle-bracket-wrapped URL, the
// form Slack uses for shared links. Exact match only: a URL embedded in other
// text is kept.
var bareURL = regexp.MustCompile(`^<https?://[^<>\s]+>$`)

// IsBareURL reports whether body is a single bracket-wrapped URL.
func IsBareURL(body string) bool {
	return bareURL.MatchString(body)
}

// DisplayBody returns the body as rendered: a bare-URL body collapses to the
// empty string, since the URL is already presented via its link attachment.
func DisplayBody(m *models.Message) string {
	if IsBareURL(m.Body) {
		return ""
	}
	return m.Body
}

// HeaderText is the full header paragraph for one message.
func HeaderText(m *models.Message) string {
	return fmt.Sprintf("%s [%s]: %s\n\n", m.Author, m.Timestamp(), DisplayBody(m))
}

// CaptionText is the caption line preceding an attachment.
func CaptionText(displayName string) string {
	return fmt.Sprintf("\n\nAttachment: %s\n\n", displayName)
}

// FileLinkText is the plain line used for non-image files and for images
// whose public URI could not be obtained.
func FileLinkText(viewerURL string) string {
	return fmt.Sprintf("Link to file: %s\n\n", viewerURL)
}

// LinkText is the paragraph holding a link attachment's URL.
func LinkText(url string) string {
	return fmt.Sprintf("\n\n%s\n\n", url)
}
