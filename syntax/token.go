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

// Token is a cursor denoting one token position in a syntax tree.
//
// Like [Node] cursors, tokens are ephemeral values compared by position,
// not by pointer; see [Token.Equal].
type Token struct {
	tree   *Tree
	green  *green.Token
	parent *Node
	offset uint32
	index  int
}

// Kind returns this token's kind.
func (t *Token) Kind() Kind { return t.green.Kind() }

// Range returns the absolute byte range of this token's text.
func (t *Token) Range() text.Range {
	return text.RangeAt(t.offset, t.green.Len())
}

// Green returns the green token underlying this cursor.
func (t *Token) Green() *green.Token { return t.green }

// Tree returns the tree this cursor belongs to.
func (t *Token) Tree() *Tree { return t.tree }

// Parent returns this token's parent node. Tokens always have one; the
// root of a tree is a node.
func (t *Token) Parent() *Node { return t.parent }

// Index returns this token's slot in its parent's child list.
func (t *Token) Index() int { return t.index }

// Equal reports whether two cursors denote the same position: the same
// green token at the same absolute offset.
func (t *Token) Equal(other *Token) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.green == other.green && t.offset == other.offset
}

// Ancestors returns an iterator over this token's ancestor nodes, starting
// at the parent and ending at the root.
func (t *Token) Ancestors() iter.Seq[*Node] {
	return t.parent.Ancestors()
}

// NextSibling returns the next sibling node after this token, or nil if
// there is none.
func (t *Token) NextSibling() *Node {
	return nextSiblingNode(t.parent, t.index, t.offset+t.green.Len())
}

// PrevSibling returns the previous sibling node before this token, or nil
// if there is none.
func (t *Token) PrevSibling() *Node {
	return prevSiblingNode(t.parent, t.index, t.offset)
}

// NextSiblingOrToken returns the element immediately after this token in
// the parent, or the zero [Element] if there is none.
func (t *Token) NextSiblingOrToken() Element {
	return nextSiblingElement(t.parent, t.index, t.offset+t.green.Len())
}

// PrevSiblingOrToken returns the element immediately before this token in
// the parent, or the zero [Element] if there is none.
func (t *Token) PrevSiblingOrToken() Element {
	return prevSiblingElement(t.parent, t.index, t.offset)
}

// ResolveText returns this token's text, resolved through r.
func (t *Token) ResolveText(r intern.Resolver) string {
	if r == nil {
		panic("lossless/syntax: nil resolver passed to ResolveText")
	}
	return t.green.ResolveText(r)
}

// Text returns this token's text, resolved through the tree's owned
// resolver.
//
// Panics if the tree was constructed with [NewRoot]; use
// [Token.ResolveText] instead there.
func (t *Token) Text() string {
	return t.green.ResolveText(t.tree.mustResolver())
}
