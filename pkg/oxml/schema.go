package oxml

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/benjaminschreck/go-oxml/pkg/oxml/xml"
)

// Cardinality of a declared child kind
type Cardinality int

const (
	// ZeroOrOne is an optional, singular child
	ZeroOrOne Cardinality = iota
	// ZeroOrMore is an optional, repeatable child
	ZeroOrMore
)

func (c Cardinality) String() string {
	switch c {
	case ZeroOrOne:
		return "ZeroOrOne"
	case ZeroOrMore:
		return "ZeroOrMore"
	default:
		return fmt.Sprintf("Cardinality(%d)", int(c))
	}
}

// ChildSpec declares one child kind of a parent element: its tag, how many
// times it may occur and which kinds must follow it when both are present.
// A First kind is always inserted as the very first child, ahead of children
// the schema does not declare.
type ChildSpec struct {
	Name        xml.Name
	Cardinality Cardinality
	Successors  []xml.Name
	First       bool
}

// OneOf declares an optional singular child, e.g. OneOf("w:rPr", "w:t", "w:tab").
func OneOf(tag string, successors ...string) ChildSpec {
	return ChildSpec{Name: xml.Qn(tag), Cardinality: ZeroOrOne, Successors: qnames(successors)}
}

// FirstOf declares an optional singular child that leads its parent, such as
// the <w:rPr> of a run. Successors are still recorded for IsSuccessor.
func FirstOf(tag string, successors ...string) ChildSpec {
	spec := OneOf(tag, successors...)
	spec.First = true
	return spec
}

// ManyOf declares an optional repeatable child.
func ManyOf(tag string, successors ...string) ChildSpec {
	return ChildSpec{Name: xml.Qn(tag), Cardinality: ZeroOrMore, Successors: qnames(successors)}
}

// Sequence declares singular children that must appear in the given order;
// every tag gets all later tags as successors.
func Sequence(tags ...string) []ChildSpec {
	specs := make([]ChildSpec, len(tags))
	for i, tag := range tags {
		specs[i] = OneOf(tag, tags[i+1:]...)
	}
	return specs
}

func qnames(tags []string) []xml.Name {
	names := make([]xml.Name, len(tags))
	for i, tag := range tags {
		names[i] = xml.Qn(tag)
	}
	return names
}

type childDescriptor struct {
	name        xml.Name
	cardinality Cardinality
	successors  mapset.Set[xml.Name]
	first       bool
}

// Schema is the static child declaration table of one parent element kind.
// It is immutable once built and safe to share between goroutines.
type Schema struct {
	parent xml.Name
	kinds  []xml.Name
	specs  map[xml.Name]*childDescriptor
}

// NewSchema builds the declaration table for parent. A kind may be declared
// once and may not name itself as a successor; successors need not be
// declared, so the order can also be enforced against children this schema
// otherwise ignores. At most one kind may be First, and it must be singular.
func NewSchema(parent string, specs ...ChildSpec) (*Schema, error) {
	s := &Schema{
		parent: xml.Qn(parent),
		specs:  make(map[xml.Name]*childDescriptor, len(specs)),
	}

	var first *xml.Name
	for _, spec := range specs {
		if spec.First {
			if first != nil {
				return nil, &SchemaError{Parent: s.parent, Message: "both " + xml.PrefixedName(*first) + " and " + xml.PrefixedName(spec.Name) + " are declared first"}
			}
			if spec.Cardinality != ZeroOrOne {
				return nil, &SchemaError{Parent: s.parent, Message: xml.PrefixedName(spec.Name) + " is declared first but repeatable"}
			}
			name := spec.Name
			first = &name
		}
		if _, dup := s.specs[spec.Name]; dup {
			return nil, &SchemaError{Parent: s.parent, Message: "duplicate declaration of " + xml.PrefixedName(spec.Name)}
		}

		successors := mapset.NewThreadUnsafeSet[xml.Name](spec.Successors...)
		if successors.Contains(spec.Name) {
			return nil, &SchemaError{Parent: s.parent, Message: xml.PrefixedName(spec.Name) + " lists itself as a successor"}
		}

		s.specs[spec.Name] = &childDescriptor{
			name:        spec.Name,
			cardinality: spec.Cardinality,
			successors:  successors,
			first:       spec.First,
		}
		s.kinds = append(s.kinds, spec.Name)
	}

	return s, nil
}

// MustSchema is NewSchema for package-level tables; it panics on error.
func MustSchema(parent string, specs ...ChildSpec) *Schema {
	s, err := NewSchema(parent, specs...)
	if err != nil {
		panic(err)
	}
	return s
}

// Parent returns the name of the element this schema describes
func (s *Schema) Parent() xml.Name {
	return s.parent
}

// Kinds returns the declared child kinds in declaration order
func (s *Schema) Kinds() []xml.Name {
	return append([]xml.Name(nil), s.kinds...)
}

// Declared reports whether kind is part of the schema
func (s *Schema) Declared(kind xml.Name) bool {
	_, ok := s.specs[kind]
	return ok
}

// Cardinality returns the declared cardinality of kind
func (s *Schema) Cardinality(kind xml.Name) (Cardinality, bool) {
	d, ok := s.specs[kind]
	if !ok {
		return 0, false
	}
	return d.cardinality, true
}

// IsSuccessor reports whether other must appear after kind
func (s *Schema) IsSuccessor(kind, other xml.Name) bool {
	d, ok := s.specs[kind]
	if !ok {
		return false
	}
	return d.successors.Contains(other)
}

func (s *Schema) lookup(op string, kind xml.Name) (*childDescriptor, error) {
	d, ok := s.specs[kind]
	if !ok {
		return nil, newProgrammingError(op, s.parent, kind, ErrUndeclaredKind)
	}
	return d, nil
}
