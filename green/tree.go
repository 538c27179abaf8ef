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

package green

import (
	"iter"
	"strings"
	"sync/atomic"

	"github.com/bufbuild/lossless/intern"
)

// identities hands out process-unique identities for green elements. The
// identity doubles as the hashable stand-in for pointer identity in cache
// signatures and position keys.
var identities atomic.Uint64

// Token is an immutable leaf of a green tree.
//
// Tokens do not store their text directly; they store an [intern.ID] into
// whatever interner the creating [Cache] was using. The byte length is
// cached so that offsets can be computed without resolving text.
//
// Tokens are created only by a [Cache] and never mutated afterwards; they
// may be referenced from any number of parents and goroutines.
type Token struct {
	kind   Kind
	text   intern.ID
	length uint32
	id     uint64
}

// Kind returns this token's kind.
func (t *Token) Kind() Kind { return t.kind }

// TextKey returns the interner key for this token's text.
func (t *Token) TextKey() intern.ID { return t.text }

// Len returns the byte length of this token's text.
func (t *Token) Len() uint32 { return t.length }

// Identity returns a process-unique identity for this token. Two tokens
// have equal identities if and only if they are the same token.
func (t *Token) Identity() uint64 { return t.id }

// ResolveText resolves this token's text.
//
// r must resolve the keys of the interner the token was built against; see
// [intern.Resolver].
func (t *Token) ResolveText(r intern.Resolver) string {
	return r.Value(t.text)
}

// Node is an immutable interior element of a green tree.
//
// A node's children are in construction order and are never reordered. Its
// byte length is the sum of its children's lengths, cached at construction.
//
// Nodes are created only by a [Cache] and never mutated afterwards; they
// may be referenced from any number of parents and goroutines.
type Node struct {
	kind     Kind
	length   uint32
	id       uint64
	children []Child
}

// Kind returns this node's kind.
func (n *Node) Kind() Kind { return n.kind }

// Len returns the total byte length of the text this node covers.
func (n *Node) Len() uint32 { return n.length }

// Identity returns a process-unique identity for this node. Two nodes have
// equal identities if and only if they are the same node.
func (n *Node) Identity() uint64 { return n.id }

// Arity returns the number of children.
func (n *Node) Arity() int { return len(n.children) }

// Child returns the idx-th child.
//
// Panics if idx is out of range.
func (n *Node) Child(idx int) Child { return n.children[idx] }

// Children returns an iterator over this node's children, in construction
// order.
func (n *Node) Children() iter.Seq[Child] {
	return func(yield func(Child) bool) {
		for _, c := range n.children {
			if !yield(c) {
				return
			}
		}
	}
}

// ResolveText resolves the text this node covers: the concatenation, in
// order, of the resolved text of every token underneath it.
func (n *Node) ResolveText(r intern.Resolver) string {
	var sb strings.Builder
	sb.Grow(int(n.length))
	n.writeText(&sb, r)
	return sb.String()
}

func (n *Node) writeText(sb *strings.Builder, r intern.Resolver) {
	for _, c := range n.children {
		if c.token != nil {
			sb.WriteString(c.token.ResolveText(r))
		} else {
			c.node.writeText(sb, r)
		}
	}
}

// Child is one child of a [Node]: either a node or a token, never both.
//
// The zero value is the absent child, which never appears inside a tree.
type Child struct {
	node  *Node
	token *Token
}

// ChildNode wraps a node as a [Child].
func ChildNode(n *Node) Child { return Child{node: n} }

// ChildToken wraps a token as a [Child].
func ChildToken(t *Token) Child { return Child{token: t} }

// IsZero reports whether this is the absent child.
func (c Child) IsZero() bool { return c.node == nil && c.token == nil }

// IsNode reports whether this child is a node.
func (c Child) IsNode() bool { return c.node != nil }

// IsToken reports whether this child is a token.
func (c Child) IsToken() bool { return c.token != nil }

// Node returns the underlying node, or nil if this child is not a node.
func (c Child) Node() *Node { return c.node }

// Token returns the underlying token, or nil if this child is not a token.
func (c Child) Token() *Token { return c.token }

// Kind returns the kind of the underlying element.
//
// Panics if this is the absent child.
func (c Child) Kind() Kind {
	if c.token != nil {
		return c.token.kind
	}
	return c.node.kind
}

// Len returns the byte length of the underlying element.
//
// Panics if this is the absent child.
func (c Child) Len() uint32 {
	if c.token != nil {
		return c.token.length
	}
	return c.node.length
}

// Identity returns the identity of the underlying element.
//
// Panics if this is the absent child.
func (c Child) Identity() uint64 {
	if c.token != nil {
		return c.token.id
	}
	return c.node.id
}

// ResolveText resolves the text of the underlying element.
func (c Child) ResolveText(r intern.Resolver) string {
	if c.token != nil {
		return c.token.ResolveText(r)
	}
	return c.node.ResolveText(r)
}

func (c Child) writeText(sb *strings.Builder, r intern.Resolver) {
	if c.token != nil {
		sb.WriteString(c.token.ResolveText(r))
	} else {
		c.node.writeText(sb, r)
	}
}
