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
	"fmt"
	"strings"

	"github.com/bufbuild/lossless/intern"
)

// The rendering below is part of the observable contract and is relied on
// by snapshot tests: a node renders as `Kind(k)@start..end`, a token as
// `Kind(k)@start..end "text"`, and the recursive form indents each level
// by two spaces and ends with a newline.

// Debug renders this node as a single line: its kind and range.
//
// r is accepted for symmetry with [Token.Debug] and [Element.Debug] and
// may be nil; nodes render no text.
func (n *Node) Debug(intern.Resolver) string {
	return fmt.Sprintf("%v@%v", n.Kind(), n.Range())
}

// DebugTree renders this node's whole subtree, one element per line at
// increasing indentation, tokens with their quoted text, terminated by a
// trailing newline.
//
// If r is nil, the tree's owned resolver is used; panics if there is
// neither.
func (n *Node) DebugTree(r intern.Resolver) string {
	r = n.tree.resolverOr(r)
	var sb strings.Builder
	debugTree(&sb, nodeElement(n), r, 0)
	return sb.String()
}

// String implements [fmt.Stringer]. If the tree owns a resolver, this is
// the node's resolved text; otherwise it falls back to the single-line
// debug form, which needs no resolver.
func (n *Node) String() string {
	if n.tree.resolver == nil {
		return n.Debug(nil)
	}
	return n.Text()
}

// Debug renders this token as a single line: its kind, range, and quoted
// text.
//
// If r is nil, the tree's owned resolver is used; panics if there is
// neither.
func (t *Token) Debug(r intern.Resolver) string {
	r = t.tree.resolverOr(r)
	return fmt.Sprintf("%v@%v %q", t.Kind(), t.Range(), t.green.ResolveText(r))
}

// String implements [fmt.Stringer]. If the tree owns a resolver, this is
// the token's resolved text; otherwise it falls back to a debug form
// without the text.
func (t *Token) String() string {
	if t.tree.resolver == nil {
		return fmt.Sprintf("%v@%v", t.Kind(), t.Range())
	}
	return t.Text()
}

// Debug renders the underlying cursor as a single line.
func (e Element) Debug(r intern.Resolver) string {
	if e.token != nil {
		return e.token.Debug(r)
	}
	return e.node.Debug(r)
}

// String implements [fmt.Stringer].
func (e Element) String() string {
	if e.IsZero() {
		return "<zero>"
	}
	if e.token != nil {
		return e.token.String()
	}
	return e.node.String()
}

func debugTree(sb *strings.Builder, e Element, r intern.Resolver, depth int) {
	for range depth {
		sb.WriteString("  ")
	}
	sb.WriteString(e.Debug(r))
	sb.WriteByte('\n')

	if e.IsNode() {
		for child := range e.Node().ChildrenWithTokens() {
			debugTree(sb, child, r, depth+1)
		}
	}
}
