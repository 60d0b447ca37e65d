package xml

import (
	"encoding/xml"
)

// Name is a namespace-qualified element or attribute name.
type Name = xml.Name

// Attr is a single attribute.
type Attr = xml.Attr

// Node is the ordered-tree primitive the oxml package is written against.
// Element is the concrete implementation; nothing above this package needs to
// know how children are stored.
type Node interface {
	// Name returns the qualified name of the element.
	Name() Name
	// ChildNodes returns the child elements in document order.
	ChildNodes() []Node
	// InsertChildAt creates an empty child and places it at index. Indexes
	// outside [0, len(children)] are clamped.
	InsertChildAt(index int, name Name, attrs ...Attr) Node
	// RemoveChild detaches child and reports whether it was found.
	RemoveChild(child Node) bool

	// Text returns the character data; ok is false when there is none.
	Text() (text string, ok bool)
	SetText(text string)

	Attr(name Name) (value string, ok bool)
	SetAttr(name Name, value string)
	RemoveAttr(name Name)
}
