package oxml

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/benjaminschreck/go-oxml/pkg/oxml/xml"
)

func hyperlinkAccessor(t *testing.T, inner string) *Accessor {
	t.Helper()
	return NewAccessor(hyperlinkSchema, mustParse(t, `<w:hyperlink `+wordNS+`>`+inner+`</w:hyperlink>`))
}

func TestAccessorGet(t *testing.T) {
	a := hyperlinkAccessor(t, `<w:t>a</w:t><w:rPr/><w:rPr/>`)

	rPr, err := a.Get(tagRPr)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if rPr == nil {
		t.Fatal("Get returned nil for an existing child")
	}
	if rPr != a.Node().ChildNodes()[1] {
		t.Error("Get should return the first match")
	}

	empty := hyperlinkAccessor(t, ``)
	rPr, err = empty.Get(tagRPr)
	if err != nil || rPr != nil {
		t.Errorf("Get on absent child = %v, %v; want nil, nil", rPr, err)
	}
}

func TestAccessorProgrammingErrors(t *testing.T) {
	a := hyperlinkAccessor(t, `<w:t>a</w:t>`)
	drawing := xml.Qn("w:drawing")

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{"Get undeclared", func() error { _, err := a.Get(drawing); return err }, ErrUndeclaredKind},
		{"GetAll undeclared", func() error { _, err := a.GetAll(drawing); return err }, ErrUndeclaredKind},
		{"GetOrCreate undeclared", func() error { _, err := a.GetOrCreate(drawing); return err }, ErrUndeclaredKind},
		{"Add undeclared", func() error { _, err := a.Add(drawing); return err }, ErrUndeclaredKind},
		{"Remove undeclared", func() error { _, err := a.Remove(drawing); return err }, ErrUndeclaredKind},
		{"InsertionIndex undeclared", func() error { _, err := a.InsertionIndex(drawing); return err }, ErrUndeclaredKind},
		{"Get repeatable", func() error { _, err := a.Get(tagT); return err }, ErrCardinality},
		{"GetOrCreate repeatable", func() error { _, err := a.GetOrCreate(tagTab); return err }, ErrCardinality},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error %v does not wrap %v", err, tt.want)
			}
			if !IsProgrammingError(err) {
				t.Errorf("expected ProgrammingError, got %T", err)
			}
		})
	}

	if got := childTags(a.Node()); !equalStrings(got, []string{"w:t"}) {
		t.Errorf("failed calls must not mutate the tree, children = %v", got)
	}
}

func TestAccessorAddSingularTwice(t *testing.T) {
	a := hyperlinkAccessor(t, ``)
	if _, err := a.Add(tagRPr); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	_, err := a.Add(tagRPr)
	if !errors.Is(err, ErrCardinality) {
		t.Errorf("second Add error = %v, want ErrCardinality", err)
	}
}

func TestAccessorGetOrCreateMovesPropertiesFirst(t *testing.T) {
	a := hyperlinkAccessor(t, `<w:t>a</w:t><w:tab/><w:t>b</w:t><w:br/>`)

	rPr, err := a.GetOrCreate(tagRPr)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}

	want := []string{"w:rPr", "w:t", "w:tab", "w:t", "w:br"}
	if got := childTags(a.Node()); !equalStrings(got, want) {
		t.Errorf("children = %v, want %v", got, want)
	}
	if a.Node().ChildNodes()[0] != rPr {
		t.Error("created w:rPr is not the first child")
	}

	texts, _ := a.GetAll(tagT)
	if v, _ := texts[0].Text(); v != "a" {
		t.Errorf("first w:t = %q, want a", v)
	}
	if v, _ := texts[1].Text(); v != "b" {
		t.Errorf("second w:t = %q, want b", v)
	}

	again, err := a.GetOrCreate(tagRPr)
	if err != nil || again != rPr {
		t.Errorf("GetOrCreate should return the existing child")
	}
	if n := len(a.Node().ChildNodes()); n != 5 {
		t.Errorf("GetOrCreate on existing child changed child count to %d", n)
	}
}

func TestAccessorAddKeepsSameKindOrder(t *testing.T) {
	a := hyperlinkAccessor(t, `<w:rPr/><w:tab/><w:r/><w:r/>`)

	first, err := a.Add(tagT)
	if err != nil {
		t.Fatal(err)
	}
	first.SetText("A")
	second, err := a.Add(tagT)
	if err != nil {
		t.Fatal(err)
	}
	second.SetText("B")

	want := []string{"w:rPr", "w:tab", "w:t", "w:t", "w:r", "w:r"}
	if got := childTags(a.Node()); !equalStrings(got, want) {
		t.Errorf("children = %v, want %v", got, want)
	}

	texts, _ := a.GetAll(tagT)
	if len(texts) != 2 || texts[0] != first || texts[1] != second {
		t.Fatal("GetAll should return A then B")
	}
}

func TestAccessorInsertionIndex(t *testing.T) {
	tests := []struct {
		name  string
		inner string
		kind  xml.Name
		want  int
	}{
		{"empty parent", ``, tagT, 0},
		{"rPr goes first", `<w:t/><w:tab/>`, tagRPr, 0},
		{"rPr goes ahead of unknown children", `<w:lastRenderedPageBreak/><w:t/>`, tagRPr, 0},
		{"content before nested runs", `<w:rPr/><w:t/><w:r/><w:t/>`, tagTab, 2},
		{"content appended without runs", `<w:rPr/><w:t/>`, tagBr, 2},
		{"runs always appended", `<w:r/><w:t/>`, tagR, 2},
		{"unknown children do not block", `<w:rPr/><w:proofErr/><w:r/>`, tagT, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := hyperlinkAccessor(t, tt.inner)
			got, err := a.InsertionIndex(tt.kind)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("InsertionIndex(%s) = %d, want %d", xml.PrefixedName(tt.kind), got, tt.want)
			}
		})
	}
}

func TestAccessorRemove(t *testing.T) {
	a := hyperlinkAccessor(t, `<w:t>a</w:t><w:proofErr/><w:t>b</w:t><w:tab/>`)

	n, err := a.Remove(tagT)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("removed %d, want 2", n)
	}

	want := []string{"w:proofErr", "w:tab"}
	if got := childTags(a.Node()); !equalStrings(got, want) {
		t.Errorf("children = %v, want %v", got, want)
	}

	n, err = a.Remove(tagT)
	if err != nil || n != 0 {
		t.Errorf("Remove on absent kind = %d, %v", n, err)
	}
}

func TestAccessorAddWithAttributes(t *testing.T) {
	a := hyperlinkAccessor(t, ``)
	br, err := a.Add(tagBr, xml.Attr{Name: xml.Qn("w:type"), Value: "page"})
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := br.Attr(xml.Qn("w:type")); v != "page" {
		t.Errorf("w:type = %q, want page", v)
	}
}
