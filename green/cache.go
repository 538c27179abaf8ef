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
	"encoding/binary"
	"hash/maphash"
	"slices"

	"github.com/bufbuild/lossless/intern"
)

// Cache canonicalizes green elements by structural identity.
//
// Asked for a node or token it has built before, a Cache returns the
// existing element instead of building a new one, so structurally identical
// subtrees built through it are pointer-identical. A long-lived Cache keeps
// deduplicating across many builds at the cost of retaining every subtree
// it has ever canonicalized.
//
// A Cache is a check-then-act structure: sharing one across concurrently
// running builds requires external synchronization.
type Cache struct {
	interner intern.Interner
	owned    *intern.Table
	seed     maphash.Seed
	tokens   map[tokenKey]*Token
	nodes    map[uint64][]*Node
}

// tokenKey is the structural signature of a token. Text is interned before
// lookup, so kind plus text key identifies a token completely.
type tokenKey struct {
	kind Kind
	text intern.ID
}

// NewCache returns a Cache that owns a private [intern.Table].
//
// The owned table is handed back by [Builder.Finish] when the builder owns
// the cache in turn.
func NewCache() *Cache {
	t := new(intern.Table)
	c := newCacheWith(t)
	c.owned = t
	return c
}

// NewCacheWithInterner returns a Cache over a caller-supplied interner.
//
// Independent caches constructed over one interner produce tokens with
// interchangeable text keys: equal text receives equal keys across all of
// them, and one resolver serves every tree they build.
func NewCacheWithInterner(in intern.Interner) *Cache {
	if in == nil {
		panic("lossless/green: nil interner passed to NewCacheWithInterner")
	}
	return newCacheWith(in)
}

func newCacheWith(in intern.Interner) *Cache {
	return &Cache{
		interner: in,
		seed:     maphash.MakeSeed(),
		tokens:   make(map[tokenKey]*Token),
		nodes:    make(map[uint64][]*Node),
	}
}

// Interner returns the interner this cache interns token text into.
func (c *Cache) Interner() intern.Interner { return c.interner }

// ownedInterner returns the table created by [NewCache], or nil if the
// interner was caller-supplied.
func (c *Cache) ownedInterner() *intern.Table { return c.owned }

// GetOrInsertToken returns the canonical token with the given kind and
// text, creating it if this cache has not seen it before.
func (c *Cache) GetOrInsertToken(kind Kind, text string) *Token {
	key := tokenKey{kind: kind, text: c.interner.Intern(text)}
	if tok, ok := c.tokens[key]; ok {
		return tok
	}

	tok := &Token{
		kind:   kind,
		text:   key.text,
		length: uint32(len(text)),
		id:     identities.Add(1),
	}
	c.tokens[key] = tok
	return tok
}

// GetOrInsertNode returns the canonical node with the given kind and
// children, creating it if this cache has not seen it before.
//
// Children must themselves be canonical: pointer equality of children is
// what makes the structural signature sound. Elements obtained from this
// cache (or from a cache sharing its history) satisfy this by construction.
// On a cache hit the passed-in children are discarded.
//
// Panics if children contains the absent child.
func (c *Cache) GetOrInsertNode(kind Kind, children []Child) *Node {
	hash := c.nodeHash(kind, children)
	for _, cand := range c.nodes[hash] {
		if cand.kind == kind && slices.Equal(cand.children, children) {
			return cand
		}
	}

	var length uint32
	for _, child := range children {
		length += child.Len()
	}

	node := &Node{
		kind:     kind,
		length:   length,
		id:       identities.Add(1),
		children: slices.Clone(children),
	}
	c.nodes[hash] = append(c.nodes[hash], node)
	return node
}

// nodeHash computes the structural signature hash of a prospective node:
// its kind plus, for each child, its kind tag and identity. The node's own
// kind participates even for empty children lists.
func (c *Cache) nodeHash(kind Kind, children []Child) uint64 {
	var h maphash.Hash
	h.SetSeed(c.seed)

	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], uint32(kind))
	h.Write(buf[:4])

	for _, child := range children {
		if child.IsZero() {
			panic("lossless/green: absent child passed to GetOrInsertNode")
		}
		if child.IsToken() {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
		binary.LittleEndian.PutUint64(buf[:], child.Identity())
		h.Write(buf[:])
	}
	return h.Sum64()
}
