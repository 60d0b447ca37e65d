package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/benjaminschreck/go-oxml/pkg/oxml"
	"github.com/benjaminschreck/go-oxml/pkg/oxml/xml"
)

const (
	kindHyperlink = "hyperlink"
	kindRun       = "run"
)

// source is a loaded input: a .docx package, or a bare XML part when docx is
// nil.
type source struct {
	path string
	docx *oxml.DocxReader
	doc  *xml.Document
}

// target is one addressable element of a source
type target struct {
	kind string
	node oxml.TextNode
	link *oxml.Hyperlink
}

func loadSource(path string) (*source, error) {
	if strings.EqualFold(filepath.Ext(path), ".docx") {
		dr, err := oxml.OpenDocx(path)
		if err != nil {
			return nil, err
		}
		doc, err := dr.Document()
		if err != nil {
			return nil, oxml.NewDocumentError("parse", path, err)
		}
		return &source{path: path, docx: dr, doc: doc}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, oxml.NewDocumentError("open", path, err)
	}
	defer f.Close()

	doc, err := xml.ParseDocument(f)
	if err != nil {
		return nil, oxml.NewDocumentError("parse", path, err)
	}
	return &source{path: path, doc: doc}, nil
}

// save writes the source to out, or back to its own path when out is empty
func (s *source) save(out string) error {
	if out == "" {
		out = s.path
	}

	var buf bytes.Buffer
	if s.docx != nil {
		if err := s.docx.WriteWithDocument(&buf, s.doc); err != nil {
			return oxml.NewDocumentError("save", out, err)
		}
	} else if _, err := s.doc.WriteTo(&buf); err != nil {
		return oxml.NewDocumentError("save", out, err)
	}

	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return oxml.NewDocumentError("save", out, err)
	}
	oxml.WithField("path", out).Info("document saved")
	return nil
}

// targets lists every element of the given kind in document order
func (s *source) targets(kind string) ([]target, error) {
	var targets []target
	switch kind {
	case kindHyperlink:
		for _, link := range oxml.FindHyperlinks(s.doc.Root) {
			targets = append(targets, target{kind: kind, node: link, link: link})
		}
	case kindRun:
		for _, run := range oxml.FindRuns(s.doc.Root) {
			targets = append(targets, target{kind: kind, node: run})
		}
	default:
		return nil, errors.Errorf("unknown kind %q (want %s or %s)", kind, kindHyperlink, kindRun)
	}
	return targets, nil
}

func (s *source) target(kind string, index int) (target, error) {
	targets, err := s.targets(kind)
	if err != nil {
		return target{}, err
	}
	if index < 0 || index >= len(targets) {
		return target{}, errors.Errorf("%s index %d out of range (found %d)", kind, index, len(targets))
	}
	return targets[index], nil
}

// contains reports whether n is still part of the loaded document
func (s *source) contains(n xml.Node) bool {
	found := false
	xml.Walk(s.doc.Root, func(c xml.Node) bool {
		if found {
			return false
		}
		if c == n {
			found = true
		}
		return !found
	})
	return found
}

// displayText is the text a reader sees. For a hyperlink that includes the
// text of its nested runs.
func (t target) displayText() string {
	if t.link != nil {
		return t.link.DisplayText()
	}
	return t.node.Text()
}

// destination describes where a hyperlink points, or "" when it is not a
// hyperlink or has neither a resolvable r:id nor an anchor.
func (s *source) destination(t target) string {
	if t.link == nil {
		return ""
	}
	if s.docx != nil {
		url, ok, err := s.docx.HyperlinkTarget(t.link)
		if err != nil {
			oxml.WithField("path", s.path).Warnf("could not read relationships: %v", err)
		} else if ok {
			return url
		}
	}
	if anchor, ok := t.link.Anchor(); ok {
		return "#" + anchor
	}
	if id, ok := t.link.RelationshipID(); ok {
		return "r:id=" + id
	}
	return ""
}
