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
	"github.com/bufbuild/lossless/intern"
	"github.com/bufbuild/lossless/text"
)

// Element is either a [Node] cursor or a [Token] cursor.
//
// The zero value is the absent element, returned by navigation that runs
// off the end of a child list.
type Element struct {
	node  *Node
	token *Token
}

func nodeElement(n *Node) Element { return Element{node: n} }
func tokenElement(t *Token) Element { return Element{token: t} }

// IsZero reports whether this is the absent element.
func (e Element) IsZero() bool { return e.node == nil && e.token == nil }

// IsNode reports whether this element is a node.
func (e Element) IsNode() bool { return e.node != nil }

// IsToken reports whether this element is a token.
func (e Element) IsToken() bool { return e.token != nil }

// Node returns the node cursor, or nil if this element is not a node.
func (e Element) Node() *Node { return e.node }

// Token returns the token cursor, or nil if this element is not a token.
func (e Element) Token() *Token { return e.token }

// Kind returns the kind of the underlying cursor.
//
// Panics if this is the absent element.
func (e Element) Kind() Kind {
	if e.token != nil {
		return e.token.Kind()
	}
	return e.node.Kind()
}

// Range returns the absolute byte range of the underlying cursor.
//
// Panics if this is the absent element.
func (e Element) Range() text.Range {
	if e.token != nil {
		return e.token.Range()
	}
	return e.node.Range()
}

// Parent returns the parent of the underlying cursor, or nil at the root.
func (e Element) Parent() *Node {
	if e.token != nil {
		return e.token.Parent()
	}
	return e.node.Parent()
}

// Equal reports whether two elements denote the same position.
func (e Element) Equal(other Element) bool {
	switch {
	case e.IsZero() || other.IsZero():
		return e.IsZero() && other.IsZero()
	case e.IsToken() != other.IsToken():
		return false
	case e.IsToken():
		return e.token.Equal(other.token)
	default:
		return e.node.Equal(other.node)
	}
}

// NextSiblingOrToken returns the element immediately after this one in the
// parent, or the zero Element if there is none.
func (e Element) NextSiblingOrToken() Element {
	if e.token != nil {
		return e.token.NextSiblingOrToken()
	}
	return e.node.NextSiblingOrToken()
}

// PrevSiblingOrToken returns the element immediately before this one in
// the parent, or the zero Element if there is none.
func (e Element) PrevSiblingOrToken() Element {
	if e.token != nil {
		return e.token.PrevSiblingOrToken()
	}
	return e.node.PrevSiblingOrToken()
}

// ResolveText returns the text of the underlying cursor, resolved through
// r.
func (e Element) ResolveText(r intern.Resolver) string {
	if e.token != nil {
		return e.token.ResolveText(r)
	}
	return e.node.ResolveText(r)
}

// Text returns the text of the underlying cursor, resolved through the
// tree's owned resolver.
func (e Element) Text() string {
	if e.token != nil {
		return e.token.Text()
	}
	return e.node.Text()
}
