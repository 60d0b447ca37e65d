package oxml

import (
	"strings"

	"github.com/benjaminschreck/go-oxml/pkg/oxml/xml"
)

var (
	tagHyperlink = xml.Qn("w:hyperlink")
	tagR         = xml.Qn("w:r")
	tagRPr       = xml.Qn("w:rPr")
	tagT         = xml.Qn("w:t")
	tagTab       = xml.Qn("w:tab")
	tagBr        = xml.Qn("w:br")
	tagCr        = xml.Qn("w:cr")

	attrSpace = xml.Qn("xml:space")
	attrVal   = xml.Qn("w:val")
)

// ContentItem is one unit of logical text: a TextRun, a TabMarker or a
// LineBreakMarker. The set is closed; code that switches over it should
// handle all three.
type ContentItem interface {
	isContentItem()
}

// TextRun is plain text stored in a <w:t> element. PreserveWhitespace maps
// to xml:space="preserve" and is not part of the logical text.
type TextRun struct {
	Value              string
	PreserveWhitespace bool
}

// TabMarker is a <w:tab/> element, "\t" in logical text.
type TabMarker struct{}

// LineBreakMarker is a <w:br/> (hard) or <w:cr/> (soft) element. Both read
// back as "\n".
type LineBreakMarker struct {
	Soft bool
}

func (TextRun) isContentItem()         {}
func (TabMarker) isContentItem()       {}
func (LineBreakMarker) isContentItem() {}

// NeedsPreserve reports whether s has leading or trailing whitespace that a
// consumer would strip unless xml:space="preserve" is set.
func NeedsPreserve(s string) bool {
	return len(strings.TrimSpace(s)) < len(s)
}

// EncodeText splits logical text into content items. Runs of ordinary
// characters become TextRuns, "\t" becomes a TabMarker, and both "\n" and
// "\r" become a hard LineBreakMarker. "\r" therefore reads back as "\n".
func EncodeText(s string) []ContentItem {
	return encodeText(s, false)
}

func encodeText(s string, softBreaks bool) []ContentItem {
	var items []ContentItem
	var pending strings.Builder

	flush := func() {
		if pending.Len() == 0 {
			return
		}
		value := pending.String()
		items = append(items, TextRun{Value: value, PreserveWhitespace: NeedsPreserve(value)})
		pending.Reset()
	}

	// The markers are ASCII, so scanning bytes never splits a UTF-8 sequence.
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\t':
			flush()
			items = append(items, TabMarker{})
		case '\n', '\r':
			flush()
			items = append(items, LineBreakMarker{Soft: softBreaks})
		default:
			pending.WriteByte(c)
		}
	}
	flush()

	return items
}

// DecodeContent joins content items back into logical text.
func DecodeContent(items []ContentItem) string {
	var sb strings.Builder
	for _, item := range items {
		switch it := item.(type) {
		case TextRun:
			sb.WriteString(it.Value)
		case TabMarker:
			sb.WriteByte('\t')
		case LineBreakMarker:
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// contentItemOf maps a child node to its content item; ok is false for
// children that carry no logical text (properties, runs, drawings, ...).
func contentItemOf(n xml.Node) (item ContentItem, ok bool) {
	switch n.Name() {
	case tagT:
		value, _ := n.Text()
		space, _ := n.Attr(attrSpace)
		return TextRun{Value: value, PreserveWhitespace: space == "preserve"}, true
	case tagTab:
		return TabMarker{}, true
	case tagBr:
		return LineBreakMarker{}, true
	case tagCr:
		return LineBreakMarker{Soft: true}, true
	}
	return nil, false
}
