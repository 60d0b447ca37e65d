// Package oxml provides custom error types for better error handling and reporting.
package oxml

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/benjaminschreck/go-oxml/pkg/oxml/xml"
)

var (
	// ErrUndeclaredKind is returned when an accessor is asked about a child
	// kind its schema does not declare.
	ErrUndeclaredKind = errors.New("undeclared child kind")

	// ErrCardinality is returned when a singular operation is used on a
	// repeatable kind, or a second singular child would be added.
	ErrCardinality = errors.New("cardinality violation")

	// ErrWrongElement is returned when a node wrapper is given an element of
	// another kind.
	ErrWrongElement = errors.New("wrong element")
)

// ProgrammingError reports a misuse of a schema-driven accessor. It signals a
// bug in the calling code, never bad input data, and is not meant to be
// recovered from.
type ProgrammingError struct {
	Op     string
	Parent xml.Name
	Kind   xml.Name
	Err    error
}

func (e *ProgrammingError) Error() string {
	return fmt.Sprintf("programming error: %s(%s) on <%s>: %v",
		e.Op, xml.PrefixedName(e.Kind), xml.PrefixedName(e.Parent), e.Err)
}

func (e *ProgrammingError) Unwrap() error {
	return e.Err
}

func newProgrammingError(op string, parent, kind xml.Name, err error) error {
	return &ProgrammingError{
		Op:     op,
		Parent: parent,
		Kind:   kind,
		Err:    err,
	}
}

// SchemaError reports an inconsistent child declaration table
type SchemaError struct {
	Parent  xml.Name
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error for <%s>: %s", xml.PrefixedName(e.Parent), e.Message)
}

// DocumentError represents an error during document operations
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// IsProgrammingError checks if err is, or wraps, a programming error
func IsProgrammingError(err error) bool {
	var pe *ProgrammingError
	return errors.As(err, &pe)
}

// IsSchemaError checks if err is, or wraps, a schema error
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// IsDocumentError checks if err is, or wraps, a document error
func IsDocumentError(err error) bool {
	var de *DocumentError
	return errors.As(err, &de)
}
