package xml

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Carriage returns are written as references so a reader does not fold them
// into newlines; attribute values also keep tabs and newlines that way.
var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\r", "&#13;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\"", "&quot;",
		"\t", "&#9;", "\n", "&#10;", "\r", "&#13;")
)

// WriteTo serializes e and its descendants to w.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	writeElement(&buf, e, nil)
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// String returns the serialized element.
func (e *Element) String() string {
	var buf bytes.Buffer
	writeElement(&buf, e, nil)
	return buf.String()
}

// writeElement writes el using the prefixes declared in scope (URI -> prefix),
// falling back to the conventional prefix table.
func writeElement(buf *bytes.Buffer, el *Element, scope map[string]string) {
	scope = declaredScope(el, scope)
	scope, attrScope, bound := bindUnknownNamespaces(el, scope)

	name := qualifiedName(el.XMLName, scope)
	buf.WriteString("<")
	buf.WriteString(name)
	for _, attr := range el.Attrs {
		buf.WriteString(" ")
		buf.WriteString(attrName(attr.Name, attrScope))
		buf.WriteString("=\"")
		buf.WriteString(attrEscaper.Replace(attr.Value))
		buf.WriteString("\"")
	}
	for _, uri := range bound {
		buf.WriteString(" xmlns:")
		buf.WriteString(attrScope[uri])
		buf.WriteString("=\"")
		buf.WriteString(attrEscaper.Replace(uri))
		buf.WriteString("\"")
	}

	if len(el.Children) == 0 && !el.HasContent {
		buf.WriteString("/>")
		return
	}
	buf.WriteString(">")

	if el.HasContent {
		buf.WriteString(textEscaper.Replace(el.Content))
	}
	for _, child := range el.Children {
		writeElement(buf, child, scope)
	}

	buf.WriteString("</")
	buf.WriteString(name)
	buf.WriteString(">")
}

// declaredScope extends scope with the xmlns declarations carried by el
func declaredScope(el *Element, scope map[string]string) map[string]string {
	var next map[string]string
	for _, attr := range el.Attrs {
		prefix, ok := declaredPrefix(attr)
		if !ok {
			continue
		}
		if next == nil {
			next = make(map[string]string, len(scope)+4)
			for uri, p := range scope {
				next[uri] = p
			}
		}
		next[attr.Value] = prefix
	}
	if next == nil {
		return scope
	}
	return next
}

// bindUnknownNamespaces gives a generated nsN prefix to every namespace el
// uses that neither scope nor the conventional prefix table can name. The
// returned scope carries the new bindings to el and its children; attrScope
// additionally binds a default namespace used by an attribute, since
// unprefixed attributes have no namespace. bound lists the URIs to declare.
func bindUnknownNamespaces(el *Element, scope map[string]string) (next, attrScope map[string]string, bound []string) {
	unnamed := func(space string, forAttr bool) bool {
		if space == "" || space == "xmlns" || space == NamespaceXML {
			return false
		}
		if _, ok := prefixMap[space]; ok {
			return false
		}
		// An undeclared prefix is left in Space by the decoder; keep it.
		if !strings.ContainsAny(space, ":/") {
			return false
		}
		prefix, ok := scope[space]
		return !ok || (forAttr && prefix == "")
	}

	if unnamed(el.XMLName.Space, false) {
		bound = append(bound, el.XMLName.Space)
	}
	for _, attr := range el.Attrs {
		if _, decl := declaredPrefix(attr); decl {
			continue
		}
		if unnamed(attr.Name.Space, true) && !slices.Contains(bound, attr.Name.Space) {
			bound = append(bound, attr.Name.Space)
		}
	}
	if len(bound) == 0 {
		return scope, scope, nil
	}

	used := make(map[string]bool, len(scope))
	for _, prefix := range scope {
		used[prefix] = true
	}
	next = make(map[string]string, len(scope)+len(bound))
	attrScope = make(map[string]string, len(scope)+len(bound))
	for uri, prefix := range scope {
		next[uri] = prefix
		attrScope[uri] = prefix
	}

	n := 0
	for _, uri := range bound {
		prefix := fmt.Sprintf("ns%d", n)
		for used[prefix] || namespaceMap[prefix] != "" {
			n++
			prefix = fmt.Sprintf("ns%d", n)
		}
		used[prefix] = true
		attrScope[uri] = prefix
		if _, ok := scope[uri]; !ok {
			next[uri] = prefix
		}
	}
	return next, attrScope, bound
}

// declaredPrefix reports whether attr is a namespace declaration, accepting
// both the decoded form {Space: "xmlns", Local: "w"} and a literal "xmlns:w".
func declaredPrefix(attr Attr) (string, bool) {
	switch {
	case attr.Name.Space == "xmlns":
		return attr.Name.Local, true
	case attr.Name.Space == "" && attr.Name.Local == "xmlns":
		return "", true
	case attr.Name.Space == "" && strings.HasPrefix(attr.Name.Local, "xmlns:"):
		return strings.TrimPrefix(attr.Name.Local, "xmlns:"), true
	}
	return "", false
}

func qualifiedName(name Name, scope map[string]string) string {
	if name.Space == "" {
		return name.Local
	}
	if name.Space == NamespaceXML {
		return "xml:" + name.Local
	}
	if prefix, ok := scope[name.Space]; ok {
		if prefix == "" {
			return name.Local
		}
		return prefix + ":" + name.Local
	}
	return namespaceToPrefix(name.Space) + ":" + name.Local
}

func attrName(name Name, scope map[string]string) string {
	if name.Space == "xmlns" {
		return "xmlns:" + name.Local
	}
	if name.Space == "" {
		return name.Local
	}
	// Unprefixed attributes never take the default namespace.
	if prefix, ok := scope[name.Space]; ok && prefix == "" {
		return namespaceToPrefix(name.Space) + ":" + name.Local
	}
	return qualifiedName(name, scope)
}
