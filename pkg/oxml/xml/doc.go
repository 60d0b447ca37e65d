// Package xml provides the generic element tree that the oxml package mutates.
//
// DOCX parts are plain XML files. Rather than mapping every WordprocessingML
// element onto its own Go struct, this package keeps a small order-preserving
// tree: each Element remembers its qualified name, its attributes, its child
// elements in document order and, for leaf elements such as <w:t>, its
// character data. Elements the caller does not understand are kept exactly
// where they were found, so a parse/serialize round trip never drops content.
//
// # Structure Organization
//
//   - namespaces.go: Namespace URIs, the prefix table and Qn for "w:t" style names
//   - node.go: The Node interface consumed by the oxml package
//   - element.go: The Element tree and its traversal helpers
//   - parse.go: Building a tree from an io.Reader
//   - write.go: Serializing a tree with conventional prefixes
//   - document.go: A parsed part (declaration + root) and its namespace declarations
//
// # Usage
//
//	doc, err := xml.ParseDocument(r)
//	if err != nil {
//	    return err
//	}
//	for _, link := range xml.FindAll(doc.Root, xml.Qn("w:hyperlink")) {
//	    fmt.Println(xml.PrefixedName(link.Name()))
//	}
//
// # XML Namespaces
//
// Names are stored with their namespace URI, as encoding/xml reports them.
// The conventional prefixes (w:, r:, xml:, ...) are only used by Qn and when
// a tree is written back out.
package xml
