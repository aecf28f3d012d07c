// ABOUTME: Operation builder emitting per-message insert and style operations.
// ABOUTME: All ranges are derived from the actual inserted text, never hand-counted.

package docops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kyle-sutherland/slackdump2markdown/internal/models"
)

const (
	// BaseFontPt is the uniform font size applied over each header span.
	BaseFontPt = 11.0

	// ImageBoxPt is the fixed square box inline images are fit to.
	ImageBoxPt = 200.0
)

// timestampGray is the muted color applied to the bracketed timestamp.
var timestampGray = Foreground(0.5, 0.5, 0.5)

// UploadResult describes an uploaded resource. PublicURI may be empty when the
// store could not make the resource publicly resolvable; ViewerURI is always
// set and is derived from the resource identifier.
type UploadResult struct {
	ResourceID string
	MediaType  string
	PublicURI  string
	ViewerURI  string
}

// IsImage reports whether the uploaded resource is an image, judged by the
// media type the store observed, not the file extension.
func (r *UploadResult) IsImage() bool {
	return strings.HasPrefix(r.MediaType, "image/")
}

// Uploader is the resource store collaborator. Upload failures abort the
// batch; they are never absorbed here.
type Uploader interface {
	Upload(ctx context.Context, localPath string) (*UploadResult, error)
}

// Builder produces the ordered operation group for one message at a time. It
// is owned by a single assembler for the duration of one build and must not
// be shared across concurrent builds.
type Builder struct {
	store   Uploader
	baseDir string
	logger  zerolog.Logger
	skipped int
}

func NewBuilder(store Uploader, baseDir string, logger zerolog.Logger) *Builder {
	return &Builder{store: store, baseDir: baseDir, logger: logger}
}

// Skipped returns how many file attachments were skipped because their local
// resource was missing.
func (b *Builder) Skipped() int {
	return b.skipped
}

// BuildMessage emits the operations for one message starting at the tracker's
// current offset and advances the tracker by exactly the text inserted. The
// builder degrades (image falls back to a link line) rather than erroring;
// only store failures propagate.
func (b *Builder) BuildMessage(ctx context.Context, msg *models.Message, tracker *OffsetTracker) ([]Operation, error) {
	start := tracker.Current()
	header := HeaderText(msg)

	ops := []Operation{InsertText{At: start, Text: header}}

	authorEnd := start + TextLength(msg.Author)
	ops = append(ops, StyleRange{Start: start, End: authorEnd, Style: Bold()})

	// The bracketed timestamp sits one space past the author.
	stamp := "[" + msg.Timestamp() + "]"
	stampStart := authorEnd + 1
	ops = append(ops, StyleRange{Start: stampStart, End: stampStart + TextLength(stamp), Style: timestampGray})

	ops = append(ops, StyleRange{Start: start, End: start + TextLength(header), Style: FontSize(BaseFontPt)})
	tracker.Advance(header)

	for _, att := range msg.Attachments {
		attOps, err := b.buildAttachment(ctx, att, tracker)
		if err != nil {
			return nil, err
		}
		ops = append(ops, attOps...)
	}

	return ops, nil
}

func (b *Builder) buildAttachment(ctx context.Context, att models.Attachment, tracker *OffsetTracker) ([]Operation, error) {
	switch a := att.(type) {
	case models.FileAttachment:
		return b.buildFile(ctx, a, tracker)
	case models.LinkAttachment:
		return b.buildLink(a, tracker), nil
	default:
		return nil, fmt.Errorf("unknown attachment variant %T", att)
	}
}

func (b *Builder) buildFile(ctx context.Context, a models.FileAttachment, tracker *OffsetTracker) ([]Operation, error) {
	path := filepath.Join(b.baseDir, a.LocalPath)
	if _, err := os.Stat(path); err != nil {
		b.skipped++
		b.logger.Warn().Str("path", path).Str("attachment", a.DisplayName).
			Msg("attachment missing, skipping")
		return nil, nil
	}

	res, err := b.store.Upload(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", a.LocalPath, err)
	}

	caption := CaptionText(a.DisplayName)
	ops := []Operation{InsertText{At: tracker.Current(), Text: caption}}
	afterCaption := tracker.Advance(caption)

	// The inline image and its link fallback share afterCaption; deriving
	// both from the caption we actually inserted keeps them consistent.
	if res.IsImage() && res.PublicURI != "" {
		ops = append(ops, InsertInlineImage{
			At:        afterCaption,
			SourceURI: res.PublicURI,
			WidthPt:   ImageBoxPt,
			HeightPt:  ImageBoxPt,
		})
		return ops, nil
	}

	line := FileLinkText(res.ViewerURI)
	ops = append(ops, InsertText{At: afterCaption, Text: line})
	tracker.Advance(line)
	return ops, nil
}

func (b *Builder) buildLink(a models.LinkAttachment, tracker *OffsetTracker) []Operation {
	text := LinkText(a.URL)
	at := tracker.Current()

	// Hyperlink covers exactly the URL substring inside the paragraph.
	urlStart := at + TextLength("\n\n")
	ops := []Operation{
		InsertText{At: at, Text: text},
		StyleRange{Start: urlStart, End: urlStart + TextLength(a.URL), Style: Hyperlink(a.URL)},
	}
	tracker.Advance(text)
	return ops
}
