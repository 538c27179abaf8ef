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
)

// Kind is re-exported for convenience; kinds are defined by the green
// layer.
type Kind = green.Kind

// Tree is the shared state behind every cursor of one syntax tree: the
// green root, the optional owned resolver, and the data attachment table.
//
// A Tree is created by [NewRoot] or [NewRootWithResolver] and reached from
// any of its cursors via [Node.Tree].
type Tree struct {
	green    *green.Node
	resolver intern.Resolver
	root     *Node
	data     attachments
}

// NewRoot returns a root cursor over the given green tree.
//
// The tree does not own a resolver: text queries must go through
// [Node.ResolveText] with an explicitly supplied one. Use this when many
// trees share one interner and carrying it in each tree is not wanted.
func NewRoot(root *green.Node) *Node {
	return newTree(root, nil)
}

// NewRootWithResolver returns a root cursor over the given green tree,
// owning the given resolver.
//
// The resolver must cover the keys produced when root was built; it is
// threaded implicitly through [Node.Text] and the other resolver-free text
// accessors.
func NewRootWithResolver(root *green.Node, r intern.Resolver) *Node {
	if r == nil {
		panic("lossless/syntax: nil resolver passed to NewRootWithResolver")
	}
	return newTree(root, r)
}

func newTree(root *green.Node, r intern.Resolver) *Node {
	if root == nil {
		panic("lossless/syntax: nil green root")
	}
	t := &Tree{green: root, resolver: r}
	t.root = &Node{tree: t, green: root}
	return t.root
}

// Root returns the root cursor of this tree.
func (t *Tree) Root() *Node { return t.root }

// Resolver returns the resolver this tree owns, or nil if it was created
// with [NewRoot].
func (t *Tree) Resolver() intern.Resolver { return t.resolver }

// Attachments returns an iterator over every position in this tree that
// currently has data attached, paired with that data, in document-position
// order.
//
// The iteration works over a snapshot: table operations performed while
// iterating (including from other goroutines) do not affect it.
func (t *Tree) Attachments() iter.Seq2[*Node, any] {
	return func(yield func(*Node, any) bool) {
		for _, entry := range t.data.snapshot() {
			node := t.findNode(entry.key)
			if node == nil {
				// Keys are minted from cursors of this tree; unreachable.
				continue
			}
			if !yield(node, entry.value) {
				return
			}
		}
	}
}

// resolverOr returns r if non-nil, else the tree's owned resolver.
//
// Panics if neither is available.
func (t *Tree) resolverOr(r intern.Resolver) intern.Resolver {
	if r != nil {
		return r
	}
	return t.mustResolver()
}

func (t *Tree) mustResolver() intern.Resolver {
	if t.resolver == nil {
		panic("lossless/syntax: tree has no resolver; construct it with NewRootWithResolver or supply one explicitly")
	}
	return t.resolver
}

// findNode re-materializes the cursor for a position key by descending
// from the root. Only nodes whose range can contain the key's offset are
// visited, so this is linear in tree depth for non-degenerate trees.
func (t *Tree) findNode(key dataKey) *Node {
	return findNodeFrom(t.root, key)
}

func findNodeFrom(n *Node, key dataKey) *Node {
	if n.offset == key.offset && n.green.Identity() == key.id {
		return n
	}
	for child := range n.Children() {
		r := child.Range()
		// The inclusive end admits empty nodes sitting at a boundary.
		if key.offset < r.Start() || key.offset > r.End() {
			continue
		}
		if found := findNodeFrom(child, key); found != nil {
			return found
		}
	}
	return nil
}
