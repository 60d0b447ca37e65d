package oxml

import (
	"github.com/pkg/errors"

	"github.com/benjaminschreck/go-oxml/pkg/oxml/xml"
)

// runSchema covers the text-bearing children of <w:r>. Content kinds have no
// successors among themselves, so they stay in the order they were added.
var runSchema = MustSchema("w:r",
	FirstOf("w:rPr", "w:t", "w:br", "w:cr", "w:tab"),
	ManyOf("w:t"),
	ManyOf("w:br"),
	ManyOf("w:cr"),
	ManyOf("w:tab"),
)

// Run wraps a <w:r> element
type Run struct {
	textContainer
}

// NewRun wraps an existing <w:r> element
func NewRun(n xml.Node) (*Run, error) {
	if n.Name() != tagR {
		return nil, errors.Wrapf(ErrWrongElement, "expected <w:r>, got <%s>", xml.PrefixedName(n.Name()))
	}
	return wrapRun(n), nil
}

// FindRuns returns every <w:r> below root in document order, including runs
// nested in hyperlinks
func FindRuns(root xml.Node) []*Run {
	var runs []*Run
	for _, n := range xml.FindAll(root, tagR) {
		run, err := NewRun(n)
		if err != nil {
			continue
		}
		runs = append(runs, run)
	}
	return runs
}

func wrapRun(n xml.Node) *Run {
	return &Run{textContainer{children: NewAccessor(runSchema, n)}}
}
