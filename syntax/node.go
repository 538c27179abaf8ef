// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package syntax

import (
	"iter"

	"github.com/bufbuild/lossless/green"
	"github.com/bufbuild/lossless/intern"
	"github.com/bufbuild/lossless/text"
)

// Node is a cursor denoting one node position in a syntax tree.
//
// Nodes are ephemeral: navigation materializes them on demand and distinct
// instances may denote the same position. Compare them with [Node.Equal],
// never by pointer.
type Node struct {
	tree  *Tree
	green *green.Node

	// parent is nil exactly at the root.
	parent *Node

	// offset is the absolute byte offset of this node's text: the parent's
	// offset plus the lengths of all preceding siblings.
	offset uint32

	// index is this node's slot in the parent's child list, counting
	// tokens.
	index int
}

// Kind returns this node's kind.
func (n *Node) Kind() Kind { return n.green.Kind() }

// Range returns the absolute byte range of the text this node covers.
func (n *Node) Range() text.Range {
	return text.RangeAt(n.offset, n.green.Len())
}

// Green returns the green node underlying this cursor.
func (n *Node) Green() *green.Node { return n.green }

// Tree returns the tree this cursor belongs to.
func (n *Node) Tree() *Tree { return n.tree }

// Parent returns this node's parent, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Root returns the root cursor of this node's tree.
func (n *Node) Root() *Node { return n.tree.root }

// IsRoot reports whether this is the root cursor.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Index returns this node's slot in its parent's child list, counting
// tokens. The root's index is 0.
func (n *Node) Index() int { return n.index }

// Equal reports whether two cursors denote the same position: the same
// green node at the same absolute offset.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.green == other.green && n.offset == other.offset
}

// Arity returns the number of child nodes, not counting tokens.
func (n *Node) Arity() int {
	var count int
	for child := range n.green.Children() {
		if child.IsNode() {
			count++
		}
	}
	return count
}

// ArityWithTokens returns the number of children, counting tokens.
func (n *Node) ArityWithTokens() int { return n.green.Arity() }

// Children returns an iterator over this node's child nodes, skipping
// tokens, in construction order. The iterator is restartable: ranging over
// it again yields fresh cursors from the start.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		offset := n.offset
		for i := range n.green.Arity() {
			child := n.green.Child(i)
			if child.IsNode() {
				if !yield(n.child(child, offset, i)) {
					return
				}
			}
			offset += child.Len()
		}
	}
}

// ChildrenWithTokens returns an iterator over all of this node's children,
// tokens included, in construction order.
func (n *Node) ChildrenWithTokens() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		offset := n.offset
		for i := range n.green.Arity() {
			child := n.green.Child(i)
			if !yield(n.element(child, offset, i)) {
				return
			}
			offset += child.Len()
		}
	}
}

// FirstChild returns this node's first child node, or nil if it has none.
func (n *Node) FirstChild() *Node {
	for child := range n.Children() {
		return child
	}
	return nil
}

// LastChild returns this node's last child node, or nil if it has none.
func (n *Node) LastChild() *Node {
	offset := n.offset + n.green.Len()
	for i := n.green.Arity() - 1; i >= 0; i-- {
		child := n.green.Child(i)
		offset -= child.Len()
		if child.IsNode() {
			return n.child(child, offset, i)
		}
	}
	return nil
}

// FirstChildOrToken returns this node's first child, or the zero [Element]
// if it has none.
func (n *Node) FirstChildOrToken() Element {
	for child := range n.ChildrenWithTokens() {
		return child
	}
	return Element{}
}

// LastChildOrToken returns this node's last child, or the zero [Element]
// if it has none.
func (n *Node) LastChildOrToken() Element {
	arity := n.green.Arity()
	if arity == 0 {
		return Element{}
	}
	child := n.green.Child(arity - 1)
	return n.element(child, n.offset+n.green.Len()-child.Len(), arity-1)
}

// NextSibling returns the next sibling node after this one, skipping
// tokens, or nil if there is none.
func (n *Node) NextSibling() *Node {
	return nextSiblingNode(n.parent, n.index, n.offset+n.green.Len())
}

// PrevSibling returns the previous sibling node before this one, skipping
// tokens, or nil if there is none.
func (n *Node) PrevSibling() *Node {
	return prevSiblingNode(n.parent, n.index, n.offset)
}

// NextSiblingOrToken returns the element immediately after this one in the
// parent, or the zero [Element] if there is none.
func (n *Node) NextSiblingOrToken() Element {
	return nextSiblingElement(n.parent, n.index, n.offset+n.green.Len())
}

// PrevSiblingOrToken returns the element immediately before this one in
// the parent, or the zero [Element] if there is none.
func (n *Node) PrevSiblingOrToken() Element {
	return prevSiblingElement(n.parent, n.index, n.offset)
}

// FirstToken returns the first token underneath this node in document
// order, or nil if the subtree contains no tokens.
func (n *Node) FirstToken() *Token {
	for el := range n.ChildrenWithTokens() {
		if el.IsToken() {
			return el.Token()
		}
		if tok := el.Node().FirstToken(); tok != nil {
			return tok
		}
	}
	return nil
}

// LastToken returns the last token underneath this node in document order,
// or nil if the subtree contains no tokens.
func (n *Node) LastToken() *Token {
	offset := n.offset + n.green.Len()
	for i := n.green.Arity() - 1; i >= 0; i-- {
		child := n.green.Child(i)
		offset -= child.Len()
		if child.IsToken() {
			return n.token(child.Token(), offset, i)
		}
		if tok := n.child(child, offset, i).LastToken(); tok != nil {
			return tok
		}
	}
	return nil
}

// Ancestors returns an iterator over this node and its ancestors, ending
// at the root.
func (n *Node) Ancestors() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for cur := n; cur != nil; cur = cur.parent {
			if !yield(cur) {
				return
			}
		}
	}
}

// Preorder returns an iterator over this node and all node descendants, in
// document order.
func (n *Node) Preorder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		preorder(n, yield)
	}
}

func preorder(n *Node, yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for child := range n.Children() {
		if !preorder(child, yield) {
			return false
		}
	}
	return true
}

// CoveringElement returns the smallest element in this node's subtree
// whose range contains r.
//
// Panics if r is not contained in this node's own range.
func (n *Node) CoveringElement(r text.Range) Element {
	if !n.Range().ContainsRange(r) {
		panic("lossless/syntax: CoveringElement range is outside the node")
	}

	cur := n
outer:
	for {
		for el := range cur.ChildrenWithTokens() {
			if el.Range().ContainsRange(r) {
				if el.IsToken() {
					return el
				}
				cur = el.Node()
				continue outer
			}
		}
		return nodeElement(cur)
	}
}

// ResolveText returns the text this node covers: the concatenation, in
// order, of every token underneath it, resolved through r.
func (n *Node) ResolveText(r intern.Resolver) string {
	if r == nil {
		panic("lossless/syntax: nil resolver passed to ResolveText")
	}
	return n.green.ResolveText(r)
}

// Text returns the text this node covers, resolved through the tree's
// owned resolver.
//
// Panics if the tree was constructed with [NewRoot]; use
// [Node.ResolveText] instead there.
func (n *Node) Text() string {
	return n.green.ResolveText(n.tree.mustResolver())
}

// child materializes the node cursor for the given green child.
func (n *Node) child(c green.Child, offset uint32, index int) *Node {
	return &Node{tree: n.tree, green: c.Node(), parent: n, offset: offset, index: index}
}

// token materializes the token cursor for the given green token.
func (n *Node) token(t *green.Token, offset uint32, index int) *Token {
	return &Token{tree: n.tree, green: t, parent: n, offset: offset, index: index}
}

// element materializes the element cursor for the given green child.
func (n *Node) element(c green.Child, offset uint32, index int) Element {
	if c.IsToken() {
		return tokenElement(n.token(c.Token(), offset, index))
	}
	return nodeElement(n.child(c, offset, index))
}

// nextSiblingNode finds the first node among parent's children after slot
// index, which ends at the given absolute offset.
func nextSiblingNode(parent *Node, index int, offset uint32) *Node {
	if parent == nil {
		return nil
	}
	for i := index + 1; i < parent.green.Arity(); i++ {
		child := parent.green.Child(i)
		if child.IsNode() {
			return parent.child(child, offset, i)
		}
		offset += child.Len()
	}
	return nil
}

// prevSiblingNode finds the last node among parent's children before slot
// index, which starts at the given absolute offset.
func prevSiblingNode(parent *Node, index int, offset uint32) *Node {
	if parent == nil {
		return nil
	}
	for i := index - 1; i >= 0; i-- {
		child := parent.green.Child(i)
		offset -= child.Len()
		if child.IsNode() {
			return parent.child(child, offset, i)
		}
	}
	return nil
}

func nextSiblingElement(parent *Node, index int, offset uint32) Element {
	if parent == nil || index+1 >= parent.green.Arity() {
		return Element{}
	}
	return parent.element(parent.green.Child(index+1), offset, index+1)
}

func prevSiblingElement(parent *Node, index int, offset uint32) Element {
	if parent == nil || index == 0 {
		return Element{}
	}
	child := parent.green.Child(index - 1)
	return parent.element(child, offset-child.Len(), index-1)
}
