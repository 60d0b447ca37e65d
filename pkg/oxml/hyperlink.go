package oxml

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/benjaminschreck/go-oxml/pkg/oxml/xml"
)

var (
	attrRelID   = xml.Qn("r:id")
	attrAnchor  = xml.Qn("w:anchor")
	attrHistory = xml.Qn("w:history")
)

// hyperlinkSchema: a <w:hyperlink> may carry its own properties and text
// content directly, ahead of any nested runs. <w:rPr> must precede
// everything else.
var hyperlinkSchema = MustSchema("w:hyperlink",
	FirstOf("w:rPr", "w:t", "w:br", "w:cr", "w:tab", "w:r"),
	ManyOf("w:t", "w:r"),
	ManyOf("w:br", "w:r"),
	ManyOf("w:cr", "w:r"),
	ManyOf("w:tab", "w:r"),
	ManyOf("w:r"),
)

// Hyperlink wraps a <w:hyperlink> element
type Hyperlink struct {
	textContainer
}

// NewHyperlink wraps an existing <w:hyperlink> element
func NewHyperlink(n xml.Node) (*Hyperlink, error) {
	if n.Name() != tagHyperlink {
		return nil, errors.Wrapf(ErrWrongElement, "expected <w:hyperlink>, got <%s>", xml.PrefixedName(n.Name()))
	}
	return &Hyperlink{textContainer{children: NewAccessor(hyperlinkSchema, n)}}, nil
}

// FindHyperlinks returns every <w:hyperlink> below root in document order
func FindHyperlinks(root xml.Node) []*Hyperlink {
	var links []*Hyperlink
	for _, n := range xml.FindAll(root, tagHyperlink) {
		link, err := NewHyperlink(n)
		if err != nil {
			continue
		}
		links = append(links, link)
	}
	return links
}

// RelationshipID returns r:id, the relationship holding an external target
func (h *Hyperlink) RelationshipID() (string, bool) {
	return h.Node().Attr(attrRelID)
}

// SetRelationshipID sets r:id; an empty id removes the attribute
func (h *Hyperlink) SetRelationshipID(id string) {
	h.setAttr(attrRelID, id)
}

// Anchor returns w:anchor, the bookmark an internal link points to
func (h *Hyperlink) Anchor() (string, bool) {
	return h.Node().Attr(attrAnchor)
}

// SetAnchor sets w:anchor; an empty anchor removes the attribute
func (h *Hyperlink) SetAnchor(anchor string) {
	h.setAttr(attrAnchor, anchor)
}

// History reports whether the link is added to the viewed-hyperlinks list
func (h *Hyperlink) History() bool {
	v, ok := h.Node().Attr(attrHistory)
	return ok && parseBool(v)
}

// SetHistory sets or clears w:history
func (h *Hyperlink) SetHistory(on bool) {
	if on {
		h.Node().SetAttr(attrHistory, "1")
		return
	}
	h.Node().RemoveAttr(attrHistory)
}

// Runs returns the nested <w:r> children
func (h *Hyperlink) Runs() []*Run {
	nodes, err := h.children.GetAll(tagR)
	if err != nil {
		return nil
	}
	runs := make([]*Run, 0, len(nodes))
	for _, n := range nodes {
		runs = append(runs, wrapRun(n))
	}
	return runs
}

// DisplayText is the text a reader sees: the hyperlink's own content plus
// the text of its nested runs, in document order. Text() only covers the
// former.
func (h *Hyperlink) DisplayText() string {
	var sb strings.Builder
	for _, child := range h.Node().ChildNodes() {
		if child.Name() == tagR {
			sb.WriteString(wrapRun(child).Text())
			continue
		}
		if item, ok := contentItemOf(child); ok {
			sb.WriteString(DecodeContent([]ContentItem{item}))
		}
	}
	return sb.String()
}

// AddRun appends a new empty <w:r>
func (h *Hyperlink) AddRun() (*Run, error) {
	n, err := h.children.Add(tagR)
	if err != nil {
		return nil, err
	}
	return wrapRun(n), nil
}

func (h *Hyperlink) setAttr(name xml.Name, value string) {
	if value == "" {
		h.Node().RemoveAttr(name)
		return
	}
	h.Node().SetAttr(name, value)
}
