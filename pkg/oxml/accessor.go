package oxml

import (
	"github.com/sirupsen/logrus"

	"github.com/benjaminschreck/go-oxml/pkg/oxml/xml"
)

// Accessor gives typed access to the children of one parent node according
// to a Schema. New children are always placed so the declared successor
// order holds; children the schema does not declare are left where they are.
//
// An Accessor holds no state besides the parent, so it is as safe for
// concurrent use as the underlying tree is, i.e. not at all: callers must
// serialize mutations of a document.
type Accessor struct {
	schema *Schema
	parent xml.Node
}

// NewAccessor binds schema to parent.
func NewAccessor(schema *Schema, parent xml.Node) *Accessor {
	return &Accessor{schema: schema, parent: parent}
}

// Schema returns the declaration table used by the accessor
func (a *Accessor) Schema() *Schema {
	return a.schema
}

// Node returns the parent node
func (a *Accessor) Node() xml.Node {
	return a.parent
}

// Get returns the first child of a singular kind, or nil when absent.
func (a *Accessor) Get(kind xml.Name) (xml.Node, error) {
	if _, err := a.singular("Get", kind); err != nil {
		return nil, err
	}
	return a.first(kind), nil
}

// GetAll returns every child of kind in document order.
func (a *Accessor) GetAll(kind xml.Name) ([]xml.Node, error) {
	if _, err := a.schema.lookup("GetAll", kind); err != nil {
		return nil, err
	}

	var matches []xml.Node
	for _, child := range a.parent.ChildNodes() {
		if child.Name() == kind {
			matches = append(matches, child)
		}
	}
	return matches, nil
}

// GetOrCreate returns the existing child of a singular kind or inserts an
// empty one at its schema position.
func (a *Accessor) GetOrCreate(kind xml.Name, attrs ...xml.Attr) (xml.Node, error) {
	d, err := a.singular("GetOrCreate", kind)
	if err != nil {
		return nil, err
	}
	if existing := a.first(kind); existing != nil {
		return existing, nil
	}
	return a.insert(d, attrs), nil
}

// Add always inserts a new child of kind and returns it. Adding a second
// child of a singular kind is an error.
func (a *Accessor) Add(kind xml.Name, attrs ...xml.Attr) (xml.Node, error) {
	d, err := a.schema.lookup("Add", kind)
	if err != nil {
		return nil, err
	}
	if d.cardinality == ZeroOrOne && a.first(kind) != nil {
		return nil, newProgrammingError("Add", a.schema.parent, kind, ErrCardinality)
	}
	return a.insert(d, attrs), nil
}

// Remove deletes every child of kind and returns how many were removed.
func (a *Accessor) Remove(kind xml.Name) (int, error) {
	matches, err := a.GetAll(kind)
	if err != nil {
		return 0, err
	}
	for _, child := range matches {
		a.parent.RemoveChild(child)
	}
	return len(matches), nil
}

// InsertionIndex returns where a new child of kind would be inserted: 0 for
// a First kind, otherwise just before the first existing child whose kind is
// one of its successors, or at the end.
func (a *Accessor) InsertionIndex(kind xml.Name) (int, error) {
	d, err := a.schema.lookup("InsertionIndex", kind)
	if err != nil {
		return 0, err
	}
	return a.insertionIndex(d), nil
}

func (a *Accessor) insertionIndex(d *childDescriptor) int {
	if d.first {
		return 0
	}
	children := a.parent.ChildNodes()
	for i, child := range children {
		if d.successors.Contains(child.Name()) {
			return i
		}
	}
	return len(children)
}

func (a *Accessor) insert(d *childDescriptor, attrs []xml.Attr) xml.Node {
	index := a.insertionIndex(d)
	child := a.parent.InsertChildAt(index, d.name, attrs...)

	GetLogger().WithFields(logrus.Fields{
		"parent": xml.PrefixedName(a.schema.parent),
		"child":  xml.PrefixedName(d.name),
		"index":  index,
	}).Debug("inserted child")

	return child
}

func (a *Accessor) singular(op string, kind xml.Name) (*childDescriptor, error) {
	d, err := a.schema.lookup(op, kind)
	if err != nil {
		return nil, err
	}
	if d.cardinality != ZeroOrOne {
		return nil, newProgrammingError(op, a.schema.parent, kind, ErrCardinality)
	}
	return d, nil
}

func (a *Accessor) first(kind xml.Name) xml.Node {
	for _, child := range a.parent.ChildNodes() {
		if child.Name() == kind {
			return child
		}
	}
	return nil
}
