// ABOUTME: Tests for the Slack export reader.
// ABOUTME: Validates normalization, sorting, and parse error reporting.

package transcript

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kyle-sutherland/slackdump2markdown/internal/models"
)

func writeJSON(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// tsFor formats a wall-clock time the way the reader will, so expectations
// hold in any timezone.
func tsFor(seconds int64) (date, clock string) {
	ts := time.Unix(seconds, 0)
	return ts.Format("2006-01-02"), ts.Format("15:04:05")
}

func TestReadDirSortsAcrossFiles(t *testing.T) {
	dir := t.TempDir()

	// Later messages live in the lexicographically earlier file.
	writeJSON(t, dir, "a.json", `[
		{"ts": "1704186000.000100", "user": "U2", "text": "second",
		 "user_profile": {"real_name": "Bob"}}
	]`)
	writeJSON(t, dir, "b.json", `[
		{"ts": "1704099600.000100", "user": "U1", "text": "first",
		 "user_profile": {"real_name": "Alice"}}
	]`)

	msgs, err := ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Author != "Alice" || msgs[1].Author != "Bob" {
		t.Errorf("messages not in chronological order: %s, %s", msgs[0].Author, msgs[1].Author)
	}

	date, clock := tsFor(1704099600)
	if msgs[0].Date != date || msgs[0].Time != clock {
		t.Errorf("timestamp normalized to %s %s, want %s %s", msgs[0].Date, msgs[0].Time, date, clock)
	}
}

func TestReadDirStableForEqualTimestamps(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, "chan.json", `[
		{"ts": "1704099600.000100", "user": "U1", "text": "one"},
		{"ts": "1704099600.000200", "user": "U2", "text": "two"}
	]`)

	msgs, err := ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if msgs[0].Body != "one" || msgs[1].Body != "two" {
		t.Errorf("equal timestamps reordered: %q, %q", msgs[0].Body, msgs[1].Body)
	}
}

func TestReadDirAuthorFallback(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, "chan.json", `[
		{"ts": "1704099600.000100", "user": "U1", "text": "no profile"},
		{"ts": "1704099601.000100", "text": "no user at all"}
	]`)

	msgs, err := ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if msgs[0].Author != "U1" {
		t.Errorf("expected user ID fallback, got %q", msgs[0].Author)
	}
	if msgs[1].Author != "unknown" {
		t.Errorf("expected unknown fallback, got %q", msgs[1].Author)
	}
}

func TestReadDirFileAttachments(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, "chan.json", `[
		{"ts": "1704099600.000100", "user": "U1", "text": "pic",
		 "files": [{"name": "photo.png", "url_private": "https://files.slack.com/T1/F1/photo.png"}]}
	]`)

	msgs, err := ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(msgs[0].Attachments) != 1 {
		t.Fatalf("expected 1 attachment, got %d", len(msgs[0].Attachments))
	}

	file, ok := msgs[0].Attachments[0].(models.FileAttachment)
	if !ok {
		t.Fatalf("expected FileAttachment, got %T", msgs[0].Attachments[0])
	}
	if file.DisplayName != "photo.png" {
		t.Errorf("unexpected display name %q", file.DisplayName)
	}
	if file.LocalPath != filepath.Join("attachments", "photo.png") {
		t.Errorf("unexpected local path %q", file.LocalPath)
	}
}

func TestReadDirLinkAttachments(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, "chan.json", `[
		{"ts": "1704099600.000100", "user": "U1", "text": "<https://e.com>",
		 "attachments": [
			{"title": "Site", "title_link": "https://e.com"},
			{"from_url": "https://other.example"},
			{"title": "no url at all"}
		 ]}
	]`)

	msgs, err := ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(msgs[0].Attachments) != 2 {
		t.Fatalf("expected 2 link attachments, got %d", len(msgs[0].Attachments))
	}

	link := msgs[0].Attachments[0].(models.LinkAttachment)
	if link.Title != "Site" || link.URL != "https://e.com" {
		t.Errorf("unexpected link %+v", link)
	}
	second := msgs[0].Attachments[1].(models.LinkAttachment)
	if second.URL != "https://other.example" {
		t.Errorf("expected from_url fallback, got %+v", second)
	}
}

func TestReadDirParseError(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, "bad.json", `{not json`)

	_, err := ReadDir(dir)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if filepath.Base(parseErr.File) != "bad.json" {
		t.Errorf("expected error to name bad.json, got %s", parseErr.File)
	}
}

func TestReadDirBadTimestamp(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, "chan.json", `[{"ts": "not-a-number", "user": "U1", "text": "x"}]`)

	_, err := ReadDir(dir)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError for bad timestamp, got %v", err)
	}
}

func TestReadDirIgnoresNonJSON(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, dir, "chan.json", `[{"ts": "1704099600.000100", "user": "U1", "text": "x"}]`)
	writeJSON(t, dir, "readme.txt", "not a transcript")
	if err := os.Mkdir(filepath.Join(dir, "attachments"), 0755); err != nil {
		t.Fatal(err)
	}

	msgs, err := ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(msgs) != 1 {
		t.Errorf("expected 1 message, got %d", len(msgs))
	}
}

func TestReadDirManyFilesOrdered(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		writeJSON(t, dir, fmt.Sprintf("2024-01-0%d.json", i+1), fmt.Sprintf(`[
			{"ts": "%d.000100", "user": "U1", "text": "day %d"}
		]`, 1704099600+i*86400, i+1))
	}

	msgs, err := ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for i := 1; i < len(msgs); i++ {
		if msgs[i-1].SortKey() > msgs[i].SortKey() {
			t.Fatalf("messages out of order at %d: %s > %s", i, msgs[i-1].SortKey(), msgs[i].SortKey())
		}
	}
}
