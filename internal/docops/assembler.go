// ABOUTME: Batch assembler threading one offset tracker across all messages.
// ABOUTME: Produces the full operation stream or nothing at all.

package docops

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kyle-sutherland/slackdump2markdown/internal/models"
)

// Batch is the full ordered operation stream for one document build, submitted
// to the backend in one atomic call.
type Batch struct {
	ID                 uuid.UUID
	Title              string
	Operations         []Operation
	TextLength         int
	SkippedAttachments int
}

// Text returns the document's visible text: every inserted string in emission
// order.
func (b *Batch) Text() string {
	return Text(b.Operations)
}

// Dump returns the index-tagged operation listing for diagnosis.
func (b *Batch) Dump() string {
	return Dump(b.Operations)
}

// Assembler builds one batch per call. Messages are processed strictly
// sequentially: the offset state is a single accumulator with a hard ordering
// dependency.
type Assembler struct {
	store   Uploader
	baseDir string
	logger  zerolog.Logger
}

func NewAssembler(store Uploader, baseDir string, logger zerolog.Logger) *Assembler {
	return &Assembler{store: store, baseDir: baseDir, logger: logger}
}

// Assemble walks messages in order and produces the operation stream: a title
// block first, then each message's group with a freshly threaded tracker. On
// any per-message failure it returns nil; no partial batch is ever handed on.
// Messages must already be in ascending (date, time) order.
func (a *Assembler) Assemble(ctx context.Context, title string, msgs []*models.Message) (*Batch, error) {
	tracker := NewOffsetTracker()
	builder := NewBuilder(a.store, a.baseDir, a.logger)

	titleText := title + "\n"
	ops := []Operation{
		InsertText{At: tracker.Current(), Text: titleText},
		StyleRange{Start: tracker.Current(), End: tracker.Current() + TextLength(titleText), Style: Heading(1)},
	}
	tracker.Advance(titleText)

	for i, msg := range msgs {
		msgOps, err := builder.BuildMessage(ctx, msg, tracker)
		if err != nil {
			return nil, fmt.Errorf("message %d (%s %s): %w", i, msg.SortKey(), msg.Author, err)
		}
		ops = append(ops, msgOps...)
	}

	batch := &Batch{
		ID:                 uuid.New(),
		Title:              title,
		Operations:         ops,
		TextLength:         tracker.Current(),
		SkippedAttachments: builder.Skipped(),
	}

	a.logger.Debug().
		Str("build", batch.ID.String()).
		Int("messages", len(msgs)).
		Int("operations", len(batch.Operations)).
		Int("text_length", batch.TextLength).
		Int("skipped", batch.SkippedAttachments).
		Msg("assembled batch")

	return batch, nil
}
