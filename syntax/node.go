package syntax

import (
	"fmt"
	"strings"
)

// Node is a green-tree node: an immutable value carrying a kind and an
// ordered list of children. Children are either leaf tokens (text, no
// children of their own) or inner nodes (no text, only children). Width is
// always the sum of children widths, so concatenating every descendant
// leaf's text in order reproduces the original input byte-for-byte.
//
// Nodes are shared, not copied: a Node can appear in many trees (or many
// positions of the same tree) without duplicating its subtree, which is
// what lets a Parse's green root, its typed AST overlay, and its debug
// printer all walk the same underlying structure.
type Node struct {
	kind        Kind
	text        string     // set only for leaves
	children    []*Node    // set only for inner nodes
	width       int
	descendants int
	erroneous   bool
}

// Leaf creates a token node holding exact source text.
func Leaf(kind Kind, text string) *Node {
	return &Node{kind: kind, text: text, width: len(text), descendants: 1, erroneous: kind == Error}
}

// Inner creates a node wrapping the given children in order.
func Inner(kind Kind, children []*Node) *Node {
	n := &Node{kind: kind, children: children, descendants: 1, erroneous: kind == Error}
	for _, c := range children {
		n.width += c.width
		n.descendants += c.descendants
		n.erroneous = n.erroneous || c.erroneous
	}
	return n
}

// Kind returns the node's syntax kind.
func (n *Node) Kind() Kind { return n.kind }

// Len returns the node's width in bytes.
func (n *Node) Len() int { return n.width }

// IsLeaf reports whether n is a token (as opposed to an inner node).
func (n *Node) IsLeaf() bool { return n.children == nil }

// Text returns the node's own text if it's a leaf, or "" for an inner node.
// Use IntoText to recover the full text of an inner node's subtree.
func (n *Node) Text() string { return n.text }

// IntoText reconstructs the exact source text spanned by n, recursing
// through children for inner nodes.
func (n *Node) IntoText() string {
	if n.IsLeaf() {
		return n.text
	}
	var b strings.Builder
	b.Grow(n.width)
	for _, c := range n.children {
		b.WriteString(c.IntoText())
	}
	return b.String()
}

// Children returns the node's children in order, or nil for a leaf.
func (n *Node) Children() []*Node { return n.children }

// Erroneous reports whether n or any descendant is an Error node or token.
func (n *Node) Erroneous() bool { return n.erroneous }

// Descendants returns the count of nodes in the subtree rooted at n,
// including n itself.
func (n *Node) Descendants() int { return n.descendants }

// SpanlessEq reports whether two nodes are structurally identical —
// same kind, same text (leaves) or same children (inner nodes) —
// independent of any position information, which this tree doesn't carry
// in the first place. Useful for asserting round-trip/idempotency in tests.
func (n *Node) SpanlessEq(other *Node) bool {
	if n.kind != other.kind || n.IsLeaf() != other.IsLeaf() {
		return false
	}
	if n.IsLeaf() {
		return n.text == other.text
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for i, c := range n.children {
		if !c.SpanlessEq(other.children[i]) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer for debugging; see Parse.DebugTree for the
// indented multi-line tree format used in diagnostics and tests.
func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("%s %q", n.kind, n.text)
	}
	return fmt.Sprintf("%s@%d", n.kind, n.width)
}

// --- LinkedNode: the red view ---

// LinkedNode is a cheaply-cloneable handle over a shared Node, carrying the
// absolute byte offset and parent link that the green tree itself doesn't
// store. Two LinkedNodes compare meaningfully only by identity of the
// underlying Node, never by deep value — the same subtree reached via two
// different paths is still "the same node" structurally, but a LinkedNode
// also encodes which path got you there.
//
// Children returns every direct child, trivia included; PrevSibling and
// NextSibling skip over Whitespace trivia since callers walking siblings
// almost always want the next syntactically meaningful node.
type LinkedNode struct {
	node   *Node
	parent *LinkedNode
	index  int
	offset int
}

// NewLinkedNode starts a traversal at a root node.
func NewLinkedNode(root *Node) *LinkedNode {
	return &LinkedNode{node: root}
}

// Node returns the underlying green node.
func (ln *LinkedNode) Node() *Node { return ln.node }

// Index returns this node's position among its parent's children.
func (ln *LinkedNode) Index() int { return ln.index }

// Offset returns the absolute byte offset where this node begins.
func (ln *LinkedNode) Offset() int { return ln.offset }

// Span returns the absolute byte range covered by this node.
func (ln *LinkedNode) Span() Span {
	return Span{Start: ln.offset, End: ln.offset + ln.node.Len()}
}

// Kind returns the underlying node's kind.
func (ln *LinkedNode) Kind() Kind { return ln.node.Kind() }

// Text returns the underlying node's own text (empty for inner nodes).
func (ln *LinkedNode) Text() string { return ln.node.Text() }

// Parent returns this node's parent, or nil at the root.
func (ln *LinkedNode) Parent() *LinkedNode { return ln.parent }

// Children returns this node's children as LinkedNodes, including trivia.
func (ln *LinkedNode) Children() []*LinkedNode {
	children := ln.node.Children()
	if len(children) == 0 {
		return nil
	}
	out := make([]*LinkedNode, len(children))
	offset := ln.offset
	for i, c := range children {
		out[i] = &LinkedNode{node: c, parent: ln, index: i, offset: offset}
		offset += c.Len()
	}
	return out
}

// PrevSibling returns the nearest preceding non-trivia sibling, or nil.
func (ln *LinkedNode) PrevSibling() *LinkedNode {
	if ln.parent == nil {
		return nil
	}
	siblings := ln.parent.node.Children()
	offset := ln.offset
	for i := ln.index - 1; i >= 0; i-- {
		offset -= siblings[i].Len()
		if !siblings[i].Kind().IsTrivia() {
			return &LinkedNode{node: siblings[i], parent: ln.parent, index: i, offset: offset}
		}
	}
	return nil
}

// NextSibling returns the nearest following non-trivia sibling, or nil.
func (ln *LinkedNode) NextSibling() *LinkedNode {
	if ln.parent == nil {
		return nil
	}
	siblings := ln.parent.node.Children()
	offset := ln.offset + ln.node.Len()
	for i := ln.index + 1; i < len(siblings); i++ {
		if !siblings[i].Kind().IsTrivia() {
			return &LinkedNode{node: siblings[i], parent: ln.parent, index: i, offset: offset}
		}
		offset += siblings[i].Len()
	}
	return nil
}

// Descendants returns every LinkedNode in the subtree rooted at ln,
// including ln itself, in document order.
func (ln *LinkedNode) Descendants() []*LinkedNode {
	out := []*LinkedNode{ln}
	for _, c := range ln.Children() {
		out = append(out, c.Descendants()...)
	}
	return out
}

// String implements fmt.Stringer for debugging.
func (ln *LinkedNode) String() string { return ln.node.String() }
