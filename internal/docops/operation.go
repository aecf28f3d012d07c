// ABOUTME: Operation types consumed by the document backend.
// ABOUTME: Tagged variants for text inserts, style ranges, and inline images.

package docops

import (
	"fmt"
	"strings"
)

// Operation is one atomic edit instruction: InsertText, StyleRange, or
// InsertInlineImage. Operations are produced in order, appended to the batch,
// and never mutated afterwards.
type Operation interface {
	isOperation()
}

// InsertText appends Text at offset At. The buffer only ever grows at its
// current end, so At always equals the tracker value when the op is emitted.
type InsertText struct {
	At   int
	Text string
}

// StyleRange applies Style to the half-open range [Start, End).
type StyleRange struct {
	Start int
	End   int
	Style Style
}

// InsertInlineImage places an image at offset At, fit to a WidthPt×HeightPt
// box. It contributes nothing to the text offset model.
type InsertInlineImage struct {
	At        int
	SourceURI string
	WidthPt   float64
	HeightPt  float64
}

func (InsertText) isOperation()        {}
func (StyleRange) isOperation()        {}
func (InsertInlineImage) isOperation() {}

// StyleKind enumerates the supported style variants.
type StyleKind int

const (
	StyleBold StyleKind = iota
	StyleFontSize
	StyleForegroundColor
	StyleHyperlink
	StyleNamedHeading
)

// RGB is a foreground color with components in [0,1].
type RGB struct {
	R, G, B float64
}

// Style is one text or paragraph style. Only the fields relevant to Kind are
// set.
type Style struct {
	Kind         StyleKind
	SizePt       float64
	Color        RGB
	LinkURL      string
	HeadingLevel int
}

func Bold() Style                      { return Style{Kind: StyleBold} }
func FontSize(pt float64) Style        { return Style{Kind: StyleFontSize, SizePt: pt} }
func Foreground(r, g, b float64) Style { return Style{Kind: StyleForegroundColor, Color: RGB{r, g, b}} }
func Hyperlink(url string) Style       { return Style{Kind: StyleHyperlink, LinkURL: url} }
func Heading(level int) Style          { return Style{Kind: StyleNamedHeading, HeadingLevel: level} }

func (s Style) String() string {
	switch s.Kind {
	case StyleBold:
		return "bold"
	case StyleFontSize:
		return fmt.Sprintf("fontSize=%gpt", s.SizePt)
	case StyleForegroundColor:
		return fmt.Sprintf("foreground=(%g,%g,%g)", s.Color.R, s.Color.G, s.Color.B)
	case StyleHyperlink:
		return fmt.Sprintf("hyperlink=%s", s.LinkURL)
	case StyleNamedHeading:
		return fmt.Sprintf("heading=%d", s.HeadingLevel)
	}
	return "unknown"
}

// Text concatenates the text of every InsertText in emission order. Applied
// by an append-only backend this is exactly the document's visible text.
func Text(ops []Operation) string {
	var sb strings.Builder
	for _, op := range ops {
		if ins, ok := op.(InsertText); ok {
			sb.WriteString(ins.Text)
		}
	}
	return sb.String()
}

// Dump renders an index-tagged listing of the stream for diagnosis. A single
// bad offset in a rejected batch is invisible without this.
func Dump(ops []Operation) string {
	var sb strings.Builder
	for i, op := range ops {
		fmt.Fprintf(&sb, "[%03d] ", i)
		switch o := op.(type) {
		case InsertText:
			fmt.Fprintf(&sb, "insertText at=%d len=%d text=%q\n", o.At, TextLength(o.Text), o.Text)
		case StyleRange:
			fmt.Fprintf(&sb, "styleRange [%d,%d) %s\n", o.Start, o.End, o.Style)
		case InsertInlineImage:
			fmt.Fprintf(&sb, "inlineImage at=%d %gx%gpt uri=%s\n", o.At, o.WidthPt, o.HeightPt, o.SourceURI)
		default:
			fmt.Fprintf(&sb, "unknown %T\n", op)
		}
	}
	return sb.String()
}
