package swift

import (
	"fmt"
	"iter"
)

// Node is the sole IR entity of a demangled symbol: a kind tag, an optional
// text payload (identifiers, numbers, operator spellings), and an ordered
// sequence of owned children. Child order is semantically significant; the
// printer depends on it.
//
// A freshly created Node is unlinked. Attaching it gives it exactly one
// owning parent for its lifetime; attaching an already-linked Node panics,
// because the same subtree must never appear at two tree positions. Sibling
// navigation is derived from the parent's child sequence rather than stored
// separately. Trees returned by the demangler are never mutated afterwards
// and are safe for concurrent readers.
type Node struct {
	kind        NodeKind
	text        string
	children    []*Node
	parent      *Node
	parentIndex int
}

// NewNode creates an unlinked node with no text payload.
func NewNode(kind NodeKind) *Node {
	return &Node{kind: kind}
}

// NewTextNode creates an unlinked node carrying a text payload.
func NewTextNode(kind NodeKind, text string) *Node {
	return &Node{kind: kind, text: text}
}

// Kind returns the node's kind tag.
func (n *Node) Kind() NodeKind {
	return n.kind
}

// Text returns the node's text payload, which is empty for most non-leaf
// kinds.
func (n *Node) Text() string {
	return n.text
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Child returns the i-th child. The index must be in range; violating this
// is a programming error and panics.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		panic(fmt.Sprintf("swift: child index %d out of range in %s node with %d children", i, n.kind, len(n.children)))
	}
	return n.children[i]
}

// FirstChild returns the first child. The node must have at least one child;
// callers check NumChildren first.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		panic(fmt.Sprintf("swift: FirstChild on childless %s node", n.kind))
	}
	return n.children[0]
}

// Children returns an iterator over the node's children in order.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.children {
			if !yield(c) {
				return
			}
		}
	}
}

// Parent returns the owning parent, or nil for an unlinked or root node.
func (n *Node) Parent() *Node {
	return n.parent
}

// PrevSibling returns the child preceding n under its parent, or nil.
func (n *Node) PrevSibling() *Node {
	if n.parent == nil || n.parentIndex == 0 {
		return nil
	}
	return n.parent.children[n.parentIndex-1]
}

// NextSibling returns the child following n under its parent, or nil.
func (n *Node) NextSibling() *Node {
	if n.parent == nil || n.parentIndex+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[n.parentIndex+1]
}

// IsUnlinked reports whether the node has no parent.
func (n *Node) IsUnlinked() bool {
	return n.parent == nil
}

// AddChild appends child to n's child sequence. The child must be unlinked;
// attaching a linked node panics, as it signals a construction bug rather
// than a recoverable condition. Returns n for chaining.
func (n *Node) AddChild(child *Node) *Node {
	if child == nil {
		panic("swift: AddChild with nil child")
	}
	if !child.IsUnlinked() {
		panic(fmt.Sprintf("swift: AddChild with already-linked %s node", child.kind))
	}
	child.parent = n
	child.parentIndex = len(n.children)
	n.children = append(n.children, child)
	return n
}

// AddChildren appends two children in order.
func (n *Node) AddChildren(first, second *Node) *Node {
	n.AddChild(first)
	n.AddChild(second)
	return n
}

// Clone deep-copies the subtree rooted at n. The copy is fully unlinked and
// shares no node identity with the source, so it can be attached anywhere.
func (n *Node) Clone() *Node {
	c := &Node{kind: n.kind, text: n.text}
	if len(n.children) > 0 {
		c.children = make([]*Node, len(n.children))
		for i, child := range n.children {
			cc := child.Clone()
			cc.parent = c
			cc.parentIndex = i
			c.children[i] = cc
		}
	}
	return c
}

// Walk visits the subtree rooted at n in preorder, passing each node and its
// depth relative to n. Returning false skips the node's children.
func (n *Node) Walk(f func(n *Node, depth int) bool) {
	n.walk(f, 0)
}

func (n *Node) walk(f func(n *Node, depth int) bool, depth int) {
	if !f(n, depth) {
		return
	}
	for _, c := range n.children {
		c.walk(f, depth+1)
	}
}
