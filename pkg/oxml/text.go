package oxml

import (
	"github.com/pkg/errors"

	"github.com/benjaminschreck/go-oxml/pkg/oxml/xml"
)

// TextNode is implemented by elements that expose their children as logical
// text: *Hyperlink and *Run.
type TextNode interface {
	Node() xml.Node
	Text() string
	SetText(text string) error
	Content() []ContentItem
	AppendContent(items ...ContentItem) error
	ClearContent() error
	Style() (string, bool)
	SetStyle(style string) error
	ClearStyle() error
}

var (
	_ TextNode = (*Hyperlink)(nil)
	_ TextNode = (*Run)(nil)
)

// textContainer implements the text codec for any element whose schema
// declares w:rPr, w:t, w:tab, w:br and w:cr.
type textContainer struct {
	children *Accessor
}

// Node returns the wrapped element
func (c *textContainer) Node() xml.Node {
	return c.children.Node()
}

// Text returns the logical text of the element: <w:t> contributes its
// value, <w:tab/> a "\t", and <w:br/> or <w:cr/> a "\n". Every other child
// contributes nothing.
func (c *textContainer) Text() string {
	return DecodeContent(c.Content())
}

// Content returns the text-bearing children as content items, in document
// order.
func (c *textContainer) Content() []ContentItem {
	var items []ContentItem
	for _, child := range c.children.Node().ChildNodes() {
		if item, ok := contentItemOf(child); ok {
			items = append(items, item)
		}
	}
	return items
}

// SetText replaces all content with text. Tabs become <w:tab/>; "\n" and "\r"
// both become a line break, so Text() returns "\r" as "\n". Any other text
// round-trips unchanged. If properties are present they are kept.
func (c *textContainer) SetText(text string) error {
	if err := c.ClearContent(); err != nil {
		return err
	}
	return c.AppendContent(encodeText(text, GetGlobalConfig().SoftBreaks)...)
}

// AppendContent adds items after the existing content, in order.
func (c *textContainer) AppendContent(items ...ContentItem) error {
	for _, item := range items {
		if err := c.appendItem(item); err != nil {
			return err
		}
	}
	return nil
}

func (c *textContainer) appendItem(item ContentItem) error {
	switch it := item.(type) {
	case TextRun:
		t, err := c.children.Add(tagT)
		if err != nil {
			return err
		}
		t.SetText(it.Value)
		if it.PreserveWhitespace || NeedsPreserve(it.Value) {
			t.SetAttr(attrSpace, "preserve")
		}
	case TabMarker:
		if _, err := c.children.Add(tagTab); err != nil {
			return err
		}
	case LineBreakMarker:
		kind := tagBr
		if it.Soft {
			kind = tagCr
		}
		if _, err := c.children.Add(kind); err != nil {
			return err
		}
	default:
		return errors.Errorf("unsupported content item %T", item)
	}
	return nil
}

// ClearContent removes every child except a <w:rPr>, which is left as the
// only child.
func (c *textContainer) ClearContent() error {
	node := c.children.Node()
	keptProperties := false
	for _, child := range node.ChildNodes() {
		if child.Name() == tagRPr && !keptProperties {
			keptProperties = true
			continue
		}
		node.RemoveChild(child)
	}
	return nil
}

// Properties returns the <w:rPr> child, if any
func (c *textContainer) Properties() (*RunProperties, bool) {
	rPr, err := c.children.Get(tagRPr)
	if err != nil || rPr == nil {
		return nil, false
	}
	return &RunProperties{children: NewAccessor(runPropertiesSchema, rPr)}, true
}

// GetOrAddProperties returns the <w:rPr> child, creating it first if needed
func (c *textContainer) GetOrAddProperties() (*RunProperties, error) {
	rPr, err := c.children.GetOrCreate(tagRPr)
	if err != nil {
		return nil, err
	}
	return &RunProperties{children: NewAccessor(runPropertiesSchema, rPr)}, nil
}

// Style returns the character style id from <w:rPr><w:rStyle w:val=.../>.
func (c *textContainer) Style() (string, bool) {
	props, ok := c.Properties()
	if !ok {
		return "", false
	}
	return props.Style()
}

// SetStyle sets the character style id, creating <w:rPr> when needed.
func (c *textContainer) SetStyle(style string) error {
	props, err := c.GetOrAddProperties()
	if err != nil {
		return err
	}
	return props.SetStyle(style)
}

// ClearStyle removes the style reference. <w:rPr> itself stays; when it is
// absent nothing happens.
func (c *textContainer) ClearStyle() error {
	props, ok := c.Properties()
	if !ok {
		return nil
	}
	return props.ClearStyle()
}
