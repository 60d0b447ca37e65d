package oxml

import (
	"testing"

	"github.com/benjaminschreck/go-oxml/pkg/oxml/xml"
)

const wordNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`

func mustParse(t *testing.T, markup string) *xml.Element {
	t.Helper()
	el, err := xml.ParseString(markup)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", markup, err)
	}
	return el
}

func mustHyperlink(t *testing.T, inner string) *Hyperlink {
	t.Helper()
	link, err := NewHyperlink(mustParse(t, `<w:hyperlink `+wordNS+`>`+inner+`</w:hyperlink>`))
	if err != nil {
		t.Fatalf("NewHyperlink failed: %v", err)
	}
	return link
}

func mustRun(t *testing.T, inner string) *Run {
	t.Helper()
	run, err := NewRun(mustParse(t, `<w:r `+wordNS+`>`+inner+`</w:r>`))
	if err != nil {
		t.Fatalf("NewRun failed: %v", err)
	}
	return run
}

// childTags lists the children of n as prefixed names
func childTags(n xml.Node) []string {
	children := n.ChildNodes()
	tags := make([]string, len(children))
	for i, c := range children {
		tags[i] = xml.PrefixedName(c.Name())
	}
	return tags
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func contentEqual(a, b []ContentItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
