// ABOUTME: Slack export reader producing the sorted message list.
// ABOUTME: Walks the export directory's JSON files and normalizes records.

package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/kyle-sutherland/slackdump2markdown/internal/models"
)

// AttachmentsDir is where a Slack export keeps downloaded files, relative to
// the export directory.
const AttachmentsDir = "attachments"

// ParseError reports a malformed transcript file. It aborts the whole run.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Slack export record shapes. Only the fields we consume.
type slackFile struct {
	Name       string `json:"name"`
	URLPrivate string `json:"url_private"`
}

type slackUnfurl struct {
	Title     string `json:"title"`
	TitleLink string `json:"title_link"`
	FromURL   string `json:"from_url"`
}

type slackMessage struct {
	TS          string        `json:"ts"`
	User        string        `json:"user"`
	Text        string        `json:"text"`
	UserProfile struct {
		RealName string `json:"real_name"`
	} `json:"user_profile"`
	Files       []slackFile   `json:"files"`
	Attachments []slackUnfurl `json:"attachments"`
}

// ReadDir reads every *.json file in dir (lexicographic file order, which
// fixes the encounter order for equal timestamps) and returns the messages
// stable-sorted ascending by (date, time).
func ReadDir(dir string) ([]*models.Message, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read export directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var msgs []*models.Message
	for _, name := range names {
		full := filepath.Join(dir, name)
		data, err := os.ReadFile(full) //nolint:gosec // Export files are user-supplied input
		if err != nil {
			return nil, &ParseError{File: full, Err: err}
		}

		var records []slackMessage
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, &ParseError{File: full, Err: err}
		}

		for _, rec := range records {
			msg, err := normalize(rec)
			if err != nil {
				return nil, &ParseError{File: full, Err: err}
			}
			msgs = append(msgs, msg)
		}
	}

	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].SortKey() < msgs[j].SortKey()
	})
	return msgs, nil
}

func normalize(rec slackMessage) (*models.Message, error) {
	seconds, err := strconv.ParseFloat(rec.TS, 64)
	if err != nil {
		return nil, fmt.Errorf("timestamp %q: %w", rec.TS, err)
	}
	ts := time.Unix(int64(seconds), 0)

	author := rec.UserProfile.RealName
	if author == "" {
		author = rec.User
	}
	if author == "" {
		author = "unknown"
	}

	var atts []models.Attachment
	for _, f := range rec.Files {
		if f.URLPrivate == "" {
			continue
		}
		name := f.Name
		if name == "" {
			name = path.Base(f.URLPrivate)
		}
		atts = append(atts, models.FileAttachment{
			DisplayName: name,
			LocalPath:   filepath.Join(AttachmentsDir, path.Base(f.URLPrivate)),
		})
	}
	for _, u := range rec.Attachments {
		url := u.TitleLink
		if url == "" {
			url = u.FromURL
		}
		if url == "" {
			continue
		}
		atts = append(atts, models.LinkAttachment{Title: u.Title, URL: url})
	}

	return &models.Message{
		Date:        ts.Format("2006-01-02"),
		Time:        ts.Format("15:04:05"),
		Author:      author,
		Body:        rec.Text,
		Attachments: atts,
	}, nil
}
