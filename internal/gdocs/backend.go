// ABOUTME: Document backend translating operation batches to Google Docs requests.
// ABOUTME: Submits the whole stream as one atomic batchUpdate.

package gdocs

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/api/docs/v1"

	"github.com/kyle-sutherland/slackdump2markdown/internal/docops"
)

// BackendError reports a rejected submission. It carries the full operation
// stream so a single bad offset can be found by inspection.
type BackendError struct {
	Stage      string
	Err        error
	Operations []docops.Operation
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("document backend: %s: %v", e.Stage, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Dump returns the index-tagged listing of the offending operations.
func (e *BackendError) Dump() string {
	return docops.Dump(e.Operations)
}

// Backend creates Google Docs and applies operation batches to them.
type Backend struct {
	svc    *docs.Service
	logger zerolog.Logger
}

func New(svc *docs.Service, logger zerolog.Logger) *Backend {
	return &Backend{svc: svc, logger: logger}
}

// Submit creates the document and applies the batch in one batchUpdate call.
// It returns the edit URL of the created document.
func (b *Backend) Submit(ctx context.Context, batch *docops.Batch) (string, error) {
	doc, err := b.svc.Documents.Create(&docs.Document{Title: batch.Title}).Context(ctx).Do()
	if err != nil {
		return "", &BackendError{Stage: "create document", Err: err, Operations: batch.Operations}
	}

	reqs, err := Translate(batch.Operations)
	if err != nil {
		return "", &BackendError{Stage: "translate operations", Err: err, Operations: batch.Operations}
	}

	_, err = b.svc.Documents.BatchUpdate(doc.DocumentId, &docs.BatchUpdateDocumentRequest{
		Requests: reqs,
	}).Context(ctx).Do()
	if err != nil {
		return "", &BackendError{Stage: "batch update", Err: err, Operations: batch.Operations}
	}

	b.logger.Debug().Str("document", doc.DocumentId).Int("requests", len(reqs)).
		Msg("batch applied")

	return "https://docs.google.com/document/d/" + doc.DocumentId + "/edit", nil
}

// Translate maps the operation stream onto Docs API requests, preserving
// order exactly.
func Translate(ops []docops.Operation) ([]*docs.Request, error) {
	reqs := make([]*docs.Request, 0, len(ops))
	for i, op := range ops {
		switch o := op.(type) {
		case docops.InsertText:
			reqs = append(reqs, &docs.Request{
				InsertText: &docs.InsertTextRequest{
					Location: &docs.Location{Index: int64(o.At)},
					Text:     o.Text,
				},
			})
		case docops.StyleRange:
			req, err := translateStyle(o)
			if err != nil {
				return nil, fmt.Errorf("operation %d: %w", i, err)
			}
			reqs = append(reqs, req)
		case docops.InsertInlineImage:
			reqs = append(reqs, &docs.Request{
				InsertInlineImage: &docs.InsertInlineImageRequest{
					Location: &docs.Location{Index: int64(o.At)},
					Uri:      o.SourceURI,
					ObjectSize: &docs.Size{
						Width:  &docs.Dimension{Magnitude: o.WidthPt, Unit: "PT"},
						Height: &docs.Dimension{Magnitude: o.HeightPt, Unit: "PT"},
					},
				},
			})
		default:
			return nil, fmt.Errorf("operation %d: unknown variant %T", i, op)
		}
	}
	return reqs, nil
}

func translateStyle(o docops.StyleRange) (*docs.Request, error) {
	rng := &docs.Range{StartIndex: int64(o.Start), EndIndex: int64(o.End)}

	switch o.Style.Kind {
	case docops.StyleBold:
		return &docs.Request{
			UpdateTextStyle: &docs.UpdateTextStyleRequest{
				Range:     rng,
				TextStyle: &docs.TextStyle{Bold: true},
				Fields:    "bold",
			},
		}, nil
	case docops.StyleFontSize:
		return &docs.Request{
			UpdateTextStyle: &docs.UpdateTextStyleRequest{
				Range: rng,
				TextStyle: &docs.TextStyle{
					FontSize: &docs.Dimension{Magnitude: o.Style.SizePt, Unit: "PT"},
				},
				Fields: "fontSize",
			},
		}, nil
	case docops.StyleForegroundColor:
		return &docs.Request{
			UpdateTextStyle: &docs.UpdateTextStyleRequest{
				Range: rng,
				TextStyle: &docs.TextStyle{
					ForegroundColor: &docs.OptionalColor{
						Color: &docs.Color{
							RgbColor: &docs.RgbColor{
								Red:   o.Style.Color.R,
								Green: o.Style.Color.G,
								Blue:  o.Style.Color.B,
							},
						},
					},
				},
				Fields: "foregroundColor",
			},
		}, nil
	case docops.StyleHyperlink:
		return &docs.Request{
			UpdateTextStyle: &docs.UpdateTextStyleRequest{
				Range:     rng,
				TextStyle: &docs.TextStyle{Link: &docs.Link{Url: o.Style.LinkURL}},
				Fields:    "link",
			},
		}, nil
	case docops.StyleNamedHeading:
		return &docs.Request{
			UpdateParagraphStyle: &docs.UpdateParagraphStyleRequest{
				Range: rng,
				ParagraphStyle: &docs.ParagraphStyle{
					NamedStyleType: fmt.Sprintf("HEADING_%d", o.Style.HeadingLevel),
				},
				Fields: "namedStyleType",
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown style kind %d", o.Style.Kind)
	}
}
