// ABOUTME: Tests for the message model.
// ABOUTME: Validates sort keys and attachment variants.

package models

import "testing"

func TestSortKeyOrdersChronologically(t *testing.T) {
	earlier := &Message{Date: "2024-01-01", Time: "23:59:59"}
	later := &Message{Date: "2024-01-02", Time: "00:00:00"}

	if earlier.SortKey() >= later.SortKey() {
		t.Errorf("expected %q < %q", earlier.SortKey(), later.SortKey())
	}
}

func TestAttachmentVariants(t *testing.T) {
	atts := []Attachment{
		FileAttachment{DisplayName: "a.png", LocalPath: "attachments/a.png"},
		LinkAttachment{Title: "Site", URL: "https://e.com"},
	}

	for _, att := range atts {
		switch att.(type) {
		case FileAttachment, LinkAttachment:
		default:
			t.Fatalf("unexpected variant %T", att)
		}
	}
}
