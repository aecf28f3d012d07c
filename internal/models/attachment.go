// ABOUTME: Attachment variants associated with a message.
// ABOUTME: Closed tagged union of file and link attachments.

package models

// Attachment is a closed variant: FileAttachment or LinkAttachment. The
// unexported marker keeps dispatch exhaustive; consumers type-switch and treat
// any other implementation as a programming error.
type Attachment interface {
	isAttachment()
}

// FileAttachment is a binary resource expected at LocalPath relative to the
// export directory. Whether it is an image is decided by the uploaded
// resource's media type, not the file extension.
type FileAttachment struct {
	DisplayName string
	LocalPath   string
}

// LinkAttachment references an external URL with an optional display title.
type LinkAttachment struct {
	Title string
	URL   string
}

func (FileAttachment) isAttachment() {}
func (LinkAttachment) isAttachment() {}
