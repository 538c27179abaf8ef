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

// Package intern provides the text interning mechanism used by the green
// tree: token text is stored once, and tokens carry a compact [ID] instead
// of a string.
//
// The interning and resolution capabilities are split into two interfaces,
// [Interner] and [Resolver], because they are needed at different times:
// interning happens only while a tree is being built, resolution only while
// it is being queried. Any type providing these operations may be plugged
// in; [Table] is the implementation used by default.
package intern

import (
	"fmt"
	"strings"
	"sync"
)

// ID is an interned string in a particular [Table].
//
// IDs can be compared very cheaply. The zero value of ID always corresponds
// to the empty string.
type ID uint32

// String implements [fmt.Stringer].
//
// Note that this will not convert the ID back into its text; to do that, you
// must call [Resolver.Value] on the table that produced it.
func (id ID) String() string {
	return fmt.Sprintf("intern.ID(%d)", uint32(id))
}

// Resolver is the capability to map an [ID] back to the text it was interned
// from.
//
// The ID must have been produced by this resolver (or by a resolver sharing
// its storage); resolving a foreign ID is a precondition violation, and
// implementations are encouraged to panic rather than return wrong text
// silently.
type Resolver interface {
	// Value converts an ID back into its corresponding string.
	Value(id ID) string
}

// Interner is the capability to intern text: a [Resolver] that can also mint
// new IDs. It is consumed by the node cache and the tree builder; queries
// only ever need the Resolver half.
type Interner interface {
	Resolver

	// Intern interns the given string, returning its ID. Interning the same
	// string twice returns the same ID.
	Intern(s string) ID
}

// Table is an interning table.
//
// A table can be used to convert strings into [ID]s and back again.
//
// The zero value of Table is empty and ready to use. A Table may be called
// by multiple goroutines concurrently.
type Table struct {
	mu    sync.RWMutex
	index map[string]ID
	table []string
}

var (
	_ Interner = (*Table)(nil)
	_ Resolver = (*Table)(nil)
)

// Intern implements [Interner].
func (t *Table) Intern(s string) ID {
	// Fast path for strings that have already been interned. Token text
	// repeats heavily in real inputs, so a read lock avoids contending the
	// write lock in the common case.
	if id, ok := t.Query(s); ok {
		return id
	}

	// Outline the fallback for when we haven't interned, to promote inlining
	// of Intern().
	return t.internSlow(s)
}

// Query reports whether s has already been interned, without interning it.
//
// The empty string is always interned as ID 0.
func (t *Table) Query(s string) (ID, bool) {
	if s == "" {
		return 0, true
	}

	t.mu.RLock()
	id, ok := t.index[s]
	t.mu.RUnlock()

	return id, ok
}

func (t *Table) internSlow(s string) ID {
	// Intern tables are expected to be long-lived. Avoid holding onto a
	// larger buffer that s is an internal pointer to by cloning it.
	s = strings.Clone(s)

	t.mu.Lock()
	defer t.mu.Unlock()

	// Check if someone raced us to intern this string. We have to check
	// again because in the unsynchronized section between RUnlock and Lock,
	// another goroutine might have successfully interned s.
	if id, ok := t.index[s]; ok {
		return id
	}

	t.table = append(t.table, s)

	// The first ID has value 1. ID 0 is reserved for "".
	id := ID(len(t.table))

	if t.index == nil {
		t.index = make(map[string]ID)
	}
	t.index[s] = id

	return id
}

// Value implements [Resolver].
//
// Panics if id was not created by this table.
func (t *Table) Value(id ID) string {
	if id == 0 {
		return ""
	}

	// The locking part is outlined to promote inlining of the fast path.
	return t.getSlow(id)
}

// Len returns the number of distinct non-empty strings interned so far.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.table)
}

func (t *Table) getSlow(id ID) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if int(id) > len(t.table) {
		panic(fmt.Sprintf("lossless/intern: ID %d was not created by this table", uint32(id)))
	}
	return t.table[int(id)-1]
}
