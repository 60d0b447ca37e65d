package xml

import (
	"fmt"
	"strings"
)

const (
	NamespaceW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	NamespaceR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	NamespaceXML = "http://www.w3.org/XML/1998/namespace"

	// NamespacePackageRels is the default namespace of *.rels parts.
	NamespacePackageRels = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// prefixMap maps namespace URIs to their conventional prefix
var prefixMap = map[string]string{
	// Core Word namespaces
	NamespaceW:   "w",
	NamespaceR:   "r",
	NamespaceXML: "xml",
	"http://schemas.openxmlformats.org/officeDocument/2006/math": "m",
	// Drawing namespaces
	"http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing": "wp",
	"http://schemas.openxmlformats.org/drawingml/2006/main":                  "a",
	"http://schemas.openxmlformats.org/drawingml/2006/picture":               "pic",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing":    "wp14",
	"http://schemas.microsoft.com/office/drawing/2010/main":                  "a14",
	// VML namespaces
	"urn:schemas-microsoft-com:vml":          "v",
	"urn:schemas-microsoft-com:office:office": "o",
	"urn:schemas-microsoft-com:office:word":  "w10",
	// Markup compatibility namespace
	"http://schemas.openxmlformats.org/markup-compatibility/2006": "mc",
	// Word processing shapes and canvas
	"http://schemas.microsoft.com/office/word/2010/wordprocessingShape":  "wps",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas": "wpc",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingGroup":  "wpg",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingInk":    "wpi",
	// Extended Word namespaces
	"http://schemas.microsoft.com/office/word/2010/wordml":       "w14",
	"http://schemas.microsoft.com/office/word/2012/wordml":       "w15",
	"http://schemas.microsoft.com/office/word/2018/wordml":       "w16",
	"http://schemas.microsoft.com/office/word/2016/wordml/cid":   "w16cid",
	"http://schemas.microsoft.com/office/word/2018/wordml/cex":   "w16cex",
	"http://schemas.microsoft.com/office/word/2015/wordml/symex": "w16se",
	"http://schemas.microsoft.com/office/word/2006/wordml":       "wne",
}

// namespaceMap is the reverse of prefixMap, used by Qn
var namespaceMap = func() map[string]string {
	m := make(map[string]string, len(prefixMap))
	for uri, prefix := range prefixMap {
		m[prefix] = uri
	}
	return m
}()

// namespaceToPrefix converts a namespace URI to its conventional prefix.
// Unknown URIs are returned as-is; the decoder leaves undeclared prefixes in
// Name.Space, so this keeps them intact on output.
func namespaceToPrefix(uri string) string {
	if prefix, ok := prefixMap[uri]; ok {
		return prefix
	}
	return uri
}

// Qn turns a prefixed tag such as "w:t" into a namespace-qualified Name.
// It panics on an unknown prefix: tag literals are fixed at compile time.
func Qn(tag string) Name {
	prefix, local, ok := strings.Cut(tag, ":")
	if !ok {
		return Name{Local: tag}
	}
	uri, known := namespaceMap[prefix]
	if !known {
		panic(fmt.Sprintf("xml: unknown namespace prefix %q in %q", prefix, tag))
	}
	return Name{Space: uri, Local: local}
}

// PrefixedName renders a Name with its conventional prefix, e.g. "w:rPr".
func PrefixedName(name Name) string {
	if name.Space == "" {
		return name.Local
	}
	return namespaceToPrefix(name.Space) + ":" + name.Local
}
