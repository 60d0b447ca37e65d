package xml

// Element is a single node of the tree. Only element children are kept;
// character data is stored on the element itself, which is all that
// WordprocessingML leaf elements like <w:t> and <w:instrText> need.
type Element struct {
	XMLName  Name
	Attrs    []Attr
	Children []*Element
	// Content holds the character data when HasContent is set.
	Content    string
	HasContent bool

	parent *Element
}

// NewElement creates a detached element.
func NewElement(name Name, attrs ...Attr) *Element {
	e := &Element{XMLName: name}
	if len(attrs) > 0 {
		e.Attrs = append([]Attr(nil), attrs...)
	}
	return e
}

// Name implements Node
func (e *Element) Name() Name {
	return e.XMLName
}

// Parent returns the enclosing element, or nil for a root or detached element
func (e *Element) Parent() *Element {
	return e.parent
}

// ChildNodes implements Node
func (e *Element) ChildNodes() []Node {
	nodes := make([]Node, len(e.Children))
	for i, child := range e.Children {
		nodes[i] = child
	}
	return nodes
}

// InsertChildAt implements Node
func (e *Element) InsertChildAt(index int, name Name, attrs ...Attr) Node {
	child := NewElement(name, attrs...)
	e.Insert(index, child)
	return child
}

// Insert places an existing element at index, detaching it from its previous
// parent first.
func (e *Element) Insert(index int, child *Element) {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	if index < 0 {
		index = 0
	}
	if index > len(e.Children) {
		index = len(e.Children)
	}

	e.Children = append(e.Children, nil)
	copy(e.Children[index+1:], e.Children[index:])
	e.Children[index] = child
	child.parent = e
}

// Append adds child after the current last child.
func (e *Element) Append(child *Element) {
	e.Insert(len(e.Children), child)
}

// RemoveChild implements Node
func (e *Element) RemoveChild(child Node) bool {
	el, ok := child.(*Element)
	if !ok {
		return false
	}
	return e.removeChild(el)
}

func (e *Element) removeChild(child *Element) bool {
	for i, c := range e.Children {
		if c == child {
			e.Children = append(e.Children[:i], e.Children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Index returns the position of child among e's children, or -1.
func (e *Element) Index(child *Element) int {
	for i, c := range e.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// Text implements Node
func (e *Element) Text() (string, bool) {
	return e.Content, e.HasContent
}

// SetText implements Node
func (e *Element) SetText(text string) {
	e.Content = text
	e.HasContent = true
}

// ClearText removes the character data entirely.
func (e *Element) ClearText() {
	e.Content = ""
	e.HasContent = false
}

// Attr implements Node
func (e *Element) Attr(name Name) (string, bool) {
	for _, attr := range e.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// SetAttr implements Node. An existing attribute keeps its position.
func (e *Element) SetAttr(name Name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// RemoveAttr implements Node
func (e *Element) RemoveAttr(name Name) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs = append(e.Attrs[:i], e.Attrs[i+1:]...)
			return
		}
	}
}

// Copy returns a deep, detached copy of e.
func (e *Element) Copy() *Element {
	res := &Element{
		XMLName:    e.XMLName,
		Attrs:      append([]Attr(nil), e.Attrs...),
		Content:    e.Content,
		HasContent: e.HasContent,
	}
	if len(e.Children) > 0 {
		res.Children = make([]*Element, len(e.Children))
		for i, child := range e.Children {
			c := child.Copy()
			c.parent = res
			res.Children[i] = c
		}
	}
	return res
}

// Walk visits root and its descendants depth-first in document order.
// Returning false from fn skips the node's subtree.
func Walk(root Node, fn func(Node) bool) {
	if !fn(root) {
		return
	}
	for _, child := range root.ChildNodes() {
		Walk(child, fn)
	}
}

// FindAll returns every descendant of root (root included) named name, in
// document order.
func FindAll(root Node, name Name) []Node {
	var found []Node
	Walk(root, func(n Node) bool {
		if n.Name() == name {
			found = append(found, n)
		}
		return true
	})
	return found
}

// Find returns the first node FindAll would return, or nil.
func Find(root Node, name Name) Node {
	var found Node
	Walk(root, func(n Node) bool {
		if found != nil {
			return false
		}
		if n.Name() == name {
			found = n
			return false
		}
		return true
	})
	return found
}
