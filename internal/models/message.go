// ABOUTME: Message model representing one transcript entry.
// ABOUTME: Immutable record of author, timestamp, body, and attachments.

package models

// Message is one normalized transcript entry. Records are built once by the
// transcript reader and never mutated afterwards.
type Message struct {
	Date        string // YYYY-MM-DD
	Time        string // HH:MM:SS
	Author      string
	Body        string
	Attachments []Attachment
}

// SortKey orders messages chronologically; the date and time formats are
// fixed-width, so lexicographic comparison matches time order.
func (m *Message) SortKey() string {
	return m.Date + " " + m.Time
}

// Timestamp returns the space-separated timestamp as rendered in output.
func (m *Message) Timestamp() string {
	return m.Date + " " + m.Time
}
