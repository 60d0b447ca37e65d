package oxml

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/benjaminschreck/go-oxml/pkg/oxml/xml"
)

func TestErrorTypes(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "ProgrammingError",
			err:     newProgrammingError("Get", xml.Qn("w:hyperlink"), xml.Qn("w:r"), ErrCardinality),
			wantMsg: "programming error: Get(w:r) on <w:hyperlink>: cardinality violation",
		},
		{
			name:    "SchemaError",
			err:     &SchemaError{Parent: xml.Qn("w:r"), Message: "duplicate child w:t"},
			wantMsg: "schema error for <w:r>: duplicate child w:t",
		},
		{
			name:    "DocumentError",
			err:     &DocumentError{Operation: "save", Path: "output.docx", Cause: errors.New("permission denied")},
			wantMsg: "document error during save of 'output.docx': permission denied",
		},
		{
			name:    "DocumentError without path",
			err:     &DocumentError{Operation: "parse", Cause: errors.New("bad xml")},
			wantMsg: "document error during parse: bad xml",
		},
		{
			name:    "DocumentError without cause",
			err:     &DocumentError{Operation: "open", Path: "a.docx"},
			wantMsg: "document error during open of 'a.docx'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	pe := newProgrammingError("Add", xml.Qn("w:r"), xml.Qn("w:p"), ErrUndeclaredKind)
	wrapped := errors.Wrap(pe, "while editing")

	if !IsProgrammingError(wrapped) {
		t.Error("IsProgrammingError should see through wrapping")
	}
	if !errors.Is(wrapped, ErrUndeclaredKind) {
		t.Error("errors.Is should reach the sentinel")
	}
	if IsSchemaError(wrapped) || IsDocumentError(wrapped) {
		t.Error("programming error misclassified")
	}

	de := NewDocumentError("open", "x.docx", errors.New("boom"))
	if !IsDocumentError(errors.Wrap(de, "cli")) {
		t.Error("IsDocumentError should see through wrapping")
	}

	_, err := NewSchema("w:r", OneOf("w:t"), ManyOf("w:t"))
	if !IsSchemaError(err) {
		t.Errorf("duplicate declaration should be a schema error, got %v", err)
	}
}
