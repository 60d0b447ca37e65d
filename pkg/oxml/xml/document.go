package xml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
)

// Document is a parsed XML part: the optional declaration plus the root
// element. The root keeps its namespace declarations in Attrs.
type Document struct {
	Declaration string
	Root        *Element
}

// ParseDocument parses a complete part such as word/document.xml
func ParseDocument(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)

	root, decl, err := parseRoot(decoder)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	doc := &Document{Root: root}
	if decl != nil {
		doc.Declaration = string(decl.Inst)
	}
	return doc, nil
}

// ExtractNamespaces returns the namespace declarations on the root element,
// keyed by prefix ("" for the default namespace).
func (doc *Document) ExtractNamespaces() map[string]string {
	namespaces := make(map[string]string)
	if doc.Root == nil {
		return namespaces
	}
	for _, attr := range doc.Root.Attrs {
		if prefix, ok := declaredPrefix(attr); ok {
			namespaces[prefix] = attr.Value
		}
	}
	return namespaces
}

// MergeNamespaces adds declarations for prefixes the root does not declare
// yet. Existing declarations win.
func (doc *Document) MergeNamespaces(namespaces map[string]string) {
	if doc.Root == nil {
		return
	}
	existing := doc.ExtractNamespaces()

	prefixes := make([]string, 0, len(namespaces))
	for prefix := range namespaces {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	for _, prefix := range prefixes {
		if _, ok := existing[prefix]; ok {
			continue
		}
		name := Name{Space: "xmlns", Local: prefix}
		if prefix == "" {
			name = Name{Local: "xmlns"}
		}
		doc.Root.Attrs = append(doc.Root.Attrs, Attr{Name: name, Value: namespaces[prefix]})
	}
}

// WriteTo serializes the declaration and the root element.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if doc.Declaration != "" {
		buf.WriteString("<?xml ")
		buf.WriteString(doc.Declaration)
		buf.WriteString("?>\n")
	}
	if doc.Root != nil {
		writeElement(&buf, doc.Root, nil)
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// Bytes returns the serialized document.
func (doc *Document) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = doc.WriteTo(&buf)
	return buf.Bytes()
}
