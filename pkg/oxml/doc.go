/*
Package oxml edits the text of WordprocessingML hyperlinks and runs while
keeping their children in schema order.

# Ordered children

WordprocessingML fixes the order in which child elements may appear: the
properties element <w:rPr> comes first, content such as <w:t>, <w:tab/> and
<w:br/> follows, and inside a <w:hyperlink> all of that precedes nested
<w:r> runs. A Schema records this once per parent element as a table of
ChildSpecs. Each spec names a child kind, its Cardinality and its
successors: the kinds that must come after it when both are present.

An Accessor applies a Schema to one element. Every insertion goes through a
single rule: a new child is placed immediately before the first existing
child whose kind is one of its successors, or at the end. Children of the
same kind therefore keep the order in which they were added, and <w:rPr> is
always first because every content kind is among its successors.

	link, _ := oxml.NewHyperlink(node)
	props, _ := link.GetOrAddProperties() // lands at index 0
	_ = props.SetStyle("Hyperlink")

# Logical text

Hyperlink and Run expose their content as a plain string:

	_ = link.SetText("Name:\tJane\nRole: editor")
	link.Text() // "Name:\tJane\nRole: editor"

SetText stores runs of characters in <w:t>, tabs as <w:tab/> and line
breaks as <w:br/>. Both "\n" and "\r" become a line break, and a break
always reads back as "\n", so text containing "\r" does not round-trip
exactly. Text with leading or trailing whitespace gets
xml:space="preserve". The same content is available as typed ContentItem
values through Content and AppendContent.

# Errors

Asking an Accessor about a kind its schema does not declare, or using a
singular operation on a repeatable kind, returns a *ProgrammingError. These
indicate a bug in the caller and are not meant to be handled. Missing
optional children are not errors: Get returns nil and Style returns false.

# Concurrency

Nothing here locks. A document tree must be mutated by one goroutine at a
time; Schemas are immutable and may be shared freely.
*/
package oxml
