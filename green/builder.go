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
	"fmt"

	"github.com/petermattis/goid"

	"github.com/bufbuild/lossless/intern"
)

// Builder assembles one green tree from a depth-first event stream.
//
// The producer drives it with balanced [Builder.StartNode] and
// [Builder.FinishNode] calls, with [Builder.Token] recording leaves in
// between, and calls [Builder.Finish] once exactly one root node has been
// closed. The builder records children strictly in call order and performs
// no grammar validation of its own: any balanced event sequence is
// accepted.
//
// Unbalanced sequences are programmer errors and panic; a partial tree
// would be structurally invalid, so there is nothing to recover.
//
// A build session belongs to the goroutine that created the builder.
// Mutating it from another goroutine panics.
type Builder struct {
	cache     *Cache
	ownsCache bool
	gid       int64

	// Open frames. Each frame remembers where its children begin in the
	// shared children slice; everything past that index belongs to it.
	parents []openFrame

	// Children of all open frames, innermost last. FinishNode pops a
	// frame's suffix off this slice and replaces it with the finished node.
	children []Child
}

type openFrame struct {
	kind  Kind
	first int
}

// Checkpoint marks a position in the child list of the frame that was
// innermost when [Builder.Checkpoint] was called. See
// [Builder.StartNodeAt].
type Checkpoint int

// NewBuilder returns a Builder over a fresh private [Cache].
//
// Since the cache in turn owns its interner, [Builder.Finish] will return
// the interner alongside the root.
func NewBuilder() *Builder {
	return &Builder{
		cache:     NewCache(),
		ownsCache: true,
		gid:       goid.Get(),
	}
}

// NewBuilderWithCache returns a Builder over a caller-supplied cache, so
// that repeated builds deduplicate against each other.
func NewBuilderWithCache(c *Cache) *Builder {
	if c == nil {
		panic("lossless/green: nil cache passed to NewBuilderWithCache")
	}
	return &Builder{cache: c, gid: goid.Get()}
}

// Cache returns the cache this builder canonicalizes against.
func (b *Builder) Cache() *Cache { return b.cache }

// StartNode pushes a new open node of the given kind. Every element
// recorded until the matching [Builder.FinishNode] becomes its child.
func (b *Builder) StartNode(kind Kind) {
	b.checkGoroutine()
	b.parents = append(b.parents, openFrame{kind: kind, first: len(b.children)})
}

// Token records a token in the innermost open node, interning text through
// the builder's cache.
//
// Panics if no node is open.
func (b *Builder) Token(kind Kind, text string) {
	b.checkGoroutine()
	if len(b.parents) == 0 {
		panic("lossless/green: Token called with no open node")
	}
	b.children = append(b.children, ChildToken(b.cache.GetOrInsertToken(kind, text)))
}

// FinishNode closes the innermost open node, canonicalizes it through the
// cache, and records it as a child of the enclosing node (or as the
// pending root if none is open).
//
// Panics if no node is open.
func (b *Builder) FinishNode() {
	b.checkGoroutine()
	if len(b.parents) == 0 {
		panic("lossless/green: FinishNode called with no open node")
	}

	frame := b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]

	node := b.cache.GetOrInsertNode(frame.kind, b.children[frame.first:])
	b.children = append(b.children[:frame.first], ChildNode(node))
}

// Checkpoint records the current position in the innermost open node's
// child list, for a later [Builder.StartNodeAt].
func (b *Builder) Checkpoint() Checkpoint {
	b.checkGoroutine()
	return Checkpoint(len(b.children))
}

// StartNodeAt is like [Builder.StartNode], except that the new node also
// retroactively adopts every element recorded since the checkpoint was
// taken. This serves producers that only discover a node's existence after
// seeing some of its content, such as precedence-climbing expression
// parsers wrapping an already-built operand.
//
// The checkpoint must still be live: taken in the current build, with no
// enclosing node finished since. Panics otherwise.
func (b *Builder) StartNodeAt(c Checkpoint, kind Kind) {
	b.checkGoroutine()
	first := int(c)
	if first > len(b.children) {
		panic(fmt.Sprintf("lossless/green: checkpoint %d is no longer valid: was FinishNode called early?", first))
	}
	if len(b.parents) > 0 && first < b.parents[len(b.parents)-1].first {
		panic(fmt.Sprintf("lossless/green: checkpoint %d is not part of the innermost open node: was StartNode called after taking it?", first))
	}
	b.parents = append(b.parents, openFrame{kind: kind, first: first})
}

// Finish returns the finished tree's root.
//
// If the builder transitively owns its interner (it was created with
// [NewBuilder]), the interner is returned alongside the root so the caller
// can resolve text; otherwise the second return is nil and the caller
// already holds the interner it supplied.
//
// Panics if any node is still open, or if the build produced no tree.
func (b *Builder) Finish() (*Node, *intern.Table) {
	b.checkGoroutine()
	if len(b.parents) != 0 {
		panic(fmt.Sprintf("lossless/green: Finish called with %d unfinished node(s)", len(b.parents)))
	}
	if len(b.children) != 1 || !b.children[0].IsNode() {
		panic("lossless/green: Finish called on a builder without exactly one root node")
	}

	root := b.children[0].Node()
	b.children = nil

	if b.ownsCache {
		return root, b.cache.ownedInterner()
	}
	return root, nil
}

// checkGoroutine enforces that a build session stays on the goroutine that
// created it. The builder and its cache are unsynchronized; catching the
// misuse beats corrupting the cache.
func (b *Builder) checkGoroutine() {
	if g := goid.Get(); g != b.gid {
		panic(fmt.Sprintf("lossless/green: Builder created on goroutine %d used from goroutine %d", b.gid, g))
	}
}
