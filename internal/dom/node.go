// Package dom provides the in-process document tree that floating elements are
// mounted into. A Document stands in for the browser's window/document pair:
// it owns a body, creates detached nodes, measures rendered boxes, and reports
// the vertical scroll offset. Terminal renderers paint the tree afterwards.
package dom

// Node is a single element in a Document tree. Content is a pre-rendered
// block of text (it may contain ANSI styling and newlines).
type Node struct {
	id       int
	tag      string
	content  string
	style    Style
	parent   *Node
	children []*Node
}

// ID returns the document-unique identifier assigned at creation.
func (n *Node) ID() int { return n.id }

// Tag returns the element tag name.
func (n *Node) Tag() string { return n.tag }

// Content returns the rendered text block.
func (n *Node) Content() string { return n.content }

// Style returns a copy of the node's inline style.
func (n *Node) Style() Style { return n.style.Clone() }

// Parent returns the parent node, or nil when the node is detached.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// AppendChild attaches child as the last child of n, moving it out of its
// current parent first.
func (n *Node) AppendChild(child *Node) {
	if child == nil || child == n {
		return
	}
	child.Detach()
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from n. It is a no-op if child is not a child of n.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Detach removes n from its parent, if any.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants depth-first in document order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}
