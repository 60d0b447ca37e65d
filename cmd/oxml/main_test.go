package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benjaminschreck/go-oxml/pkg/oxml"
	"github.com/benjaminschreck/go-oxml/pkg/oxml/xml"
)

const testPart = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body><w:p><w:r><w:t>See </w:t></w:r><w:hyperlink w:anchor="intro"><w:t>intro</w:t></w:hyperlink><w:hyperlink r:id="rId7"><w:r><w:t>docs</w:t></w:r></w:hyperlink></w:p></w:body></w:document>`

func writeTestPart(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "document.xml")
	if err := os.WriteFile(path, []byte(testPart), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	original := oxml.GetGlobalConfig()
	t.Cleanup(func() { oxml.SetGlobalConfig(original) })

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "off"))
	err := cmd.Execute()
	return out.String(), err
}

func loadHyperlinks(t *testing.T, path string) []*oxml.Hyperlink {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	doc, err := xml.ParseDocument(f)
	if err != nil {
		t.Fatal(err)
	}
	return oxml.FindHyperlinks(doc.Root)
}

func TestTextCommand(t *testing.T) {
	path := writeTestPart(t)

	out, err := runCommand(t, "text", path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`[0]`, `"intro"`, `#intro`, `[1]`, `"docs"`, `r:id=rId7`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, err = runCommand(t, "text", "--kind", "run", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"See "`) || !strings.Contains(out, `"docs"`) {
		t.Errorf("run listing = %s", out)
	}

	if _, err := runCommand(t, "text", "--kind", "paragraph", path); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestSetTextCommand(t *testing.T) {
	path := writeTestPart(t)
	out := filepath.Join(t.TempDir(), "out.xml")

	stdout, err := runCommand(t, "set-text", path, "-i", "1", "-e", "-t", `Go\tdocs\nhere`, "-o", out, "--diff")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "  docs") || !strings.Contains(stdout, `+ Go\t`) {
		t.Errorf("diff output = %s", stdout)
	}

	links := loadHyperlinks(t, out)
	if got := links[1].Text(); got != "Go\tdocs\nhere" {
		t.Errorf("Text() = %q", got)
	}
	if len(links[1].Runs()) != 0 {
		t.Error("nested runs should be replaced")
	}

	// the input is untouched when -o is given
	if got := loadHyperlinks(t, path)[1].DisplayText(); got != "docs" {
		t.Errorf("input changed: %q", got)
	}

	if _, err := runCommand(t, "set-text", path, "-i", "5", "-t", "x"); err == nil {
		t.Error("expected out of range error")
	}
}

func TestStyleCommand(t *testing.T) {
	path := writeTestPart(t)

	if _, err := runCommand(t, "style", path, "--set", "Hyperlink"); err != nil {
		t.Fatal(err)
	}
	link := loadHyperlinks(t, path)[0]
	if style, ok := link.Style(); !ok || style != "Hyperlink" {
		t.Errorf("Style() = %q, %v", style, ok)
	}
	if got := link.Text(); got != "intro" {
		t.Errorf("Text() = %q", got)
	}

	if _, err := runCommand(t, "style", path, "--clear"); err != nil {
		t.Fatal(err)
	}
	if _, ok := loadHyperlinks(t, path)[0].Style(); ok {
		t.Error("style should be cleared")
	}

	if _, err := runCommand(t, "style", path); err == nil {
		t.Error("expected error without --set or --clear")
	}
}

func TestApplyCommand(t *testing.T) {
	path := writeTestPart(t)
	edits := filepath.Join(t.TempDir(), "edits.json")
	content := `[{"index": 0, "text": "Intro\tpart", "style": "Hyperlink"}, {"index": 1, "style": "Strong"}]`
	if err := os.WriteFile(edits, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "apply", path, edits)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "applied 2 edits") {
		t.Errorf("output = %s", out)
	}

	links := loadHyperlinks(t, path)
	if got := links[0].Text(); got != "Intro\tpart" {
		t.Errorf("Text() = %q", got)
	}
	if style, _ := links[0].Style(); style != "Hyperlink" {
		t.Errorf("link 0 style = %q", style)
	}
	if style, _ := links[1].Style(); style != "Strong" {
		t.Errorf("link 1 style = %q", style)
	}
	if got := links[1].DisplayText(); got != "docs" {
		t.Errorf("link 1 text = %q", got)
	}
}

func TestApplyFailureWritesNothing(t *testing.T) {
	path := writeTestPart(t)
	edits := filepath.Join(t.TempDir(), "edits.json")
	if err := os.WriteFile(edits, []byte(`[{"index": 0, "text": "x"}, {"index": 9, "text": "y"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "apply", path, edits); err == nil {
		t.Fatal("expected error")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != testPart {
		t.Error("input was rewritten after a failed apply")
	}
}

func TestApplyRejectsEditsOnRemovedRuns(t *testing.T) {
	tests := []struct {
		name  string
		edits string
	}{
		{
			name:  "run edited after its hyperlink",
			edits: `[{"index": 1, "text": "link"}, {"kind": "run", "index": 1, "text": "run"}]`,
		},
		{
			name:  "run edited before its hyperlink",
			edits: `[{"kind": "run", "index": 1, "style": "Strong"}, {"index": 1, "text": "link"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestPart(t)
			edits := filepath.Join(t.TempDir(), "edits.json")
			if err := os.WriteFile(edits, []byte(tt.edits), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := runCommand(t, "apply", path, edits)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "removes the run") {
				t.Errorf("error = %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != testPart {
				t.Error("input was rewritten after a failed apply")
			}
		})
	}
}

func TestApplyStyleKeepsNestedRuns(t *testing.T) {
	path := writeTestPart(t)
	edits := filepath.Join(t.TempDir(), "edits.json")
	content := `[{"index": 1, "style": "Hyperlink"}, {"kind": "run", "index": 1, "text": "guide"}]`
	if err := os.WriteFile(edits, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "apply", path, edits); err != nil {
		t.Fatal(err)
	}
	link := loadHyperlinks(t, path)[1]
	if got := link.DisplayText(); got != "guide" {
		t.Errorf("DisplayText() = %q", got)
	}
	if style, _ := link.Style(); style != "Hyperlink" {
		t.Errorf("Style() = %q", style)
	}
}

func TestParseEdits(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "empty array", input: `[]`, want: 0},
		{name: "text and style", input: `[{"index":0,"text":"a","style":"S"}]`, want: 1},
		{name: "null style", input: `[{"index":1,"style":null},{"kind":"run","index":2}]`, want: 2},
		{name: "not json", input: `[{`, wantErr: true},
		{name: "not an array", input: `{"index":0}`, wantErr: true},
		{name: "missing index", input: `[{"text":"a"}]`, wantErr: true},
		{name: "string index", input: `[{"index":"0"}]`, wantErr: true},
		{name: "not an object", input: `[1]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edits, err := parseEdits([]byte(tt.input), kindHyperlink)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseEdits() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(edits) != tt.want {
				t.Errorf("got %d edits, want %d", len(edits), tt.want)
			}
		})
	}

	edits, err := parseEdits([]byte(`[{"index":1,"style":null},{"kind":"run","index":2,"style":"Code","text":"t"}]`), kindHyperlink)
	if err != nil {
		t.Fatal(err)
	}
	if !edits[0].ClearStyle || edits[0].Kind != kindHyperlink || edits[0].Text != nil {
		t.Errorf("edit 0 = %+v", edits[0])
	}
	if edits[1].Kind != kindRun || edits[1].Style == nil || *edits[1].Style != "Code" || *edits[1].Text != "t" {
		t.Errorf("edit 1 = %+v", edits[1])
	}
}

func TestFormatDiff(t *testing.T) {
	got := FormatDiff("click here", "click there")
	if !strings.Contains(got, "  click") {
		t.Errorf("diff missing common prefix:\n%s", got)
	}
	if !strings.Contains(got, "+ ") || strings.Contains(got, "- ") {
		t.Errorf("diff should only insert:\n%s", got)
	}

	got = FormatDiff("a", "a\tb")
	if !strings.Contains(got, `\tb`) {
		t.Errorf("tabs should be escaped:\n%s", got)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "oxml dev") {
		t.Errorf("version output = %q", out)
	}
}
