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
	"sync"

	"github.com/tidwall/btree"
)

// dataKey is the position identity used by the attachment table: the
// absolute offset plus the green element's identity. Two cursors for the
// same place produce equal keys no matter when they were materialized.
//
// Keys order by offset first, so iterating the table visits attachments in
// document-position order.
type dataKey struct {
	offset uint32
	id     uint64
}

type dataEntry struct {
	key   dataKey
	value any
}

func dataEntryLess(a, b dataEntry) bool {
	if a.key.offset != b.key.offset {
		return a.key.offset < b.key.offset
	}
	return a.key.id < b.key.id
}

// attachments is the per-tree data attachment table.
//
// All operations are safe to call from multiple goroutines holding
// independently created cursors over the same tree. This table is the only
// mutable state a tree carries; green nodes are shared and never touched.
type attachments struct {
	mu      sync.RWMutex
	entries *btree.BTreeG[dataEntry]
}

// init allocates the underlying tree. Callers must hold mu for writing.
func (a *attachments) init() {
	if a.entries == nil {
		a.entries = btree.NewBTreeGOptions(dataEntryLess, btree.Options{NoLocks: true})
	}
}

// trySet atomically inserts value at key if the key is vacant. It returns
// the value present after the call and whether the insert happened; an
// occupied entry is left untouched.
func (a *attachments) trySet(key dataKey, value any) (any, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.init()
	if existing, ok := a.entries.Get(dataEntry{key: key}); ok {
		return existing.value, false
	}
	a.entries.Set(dataEntry{key: key, value: value})
	return value, true
}

// set unconditionally installs value at key, replacing any existing value.
func (a *attachments) set(key dataKey, value any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.init()
	a.entries.Set(dataEntry{key: key, value: value})
}

// get returns the value at key, if any. The returned value is the caller's
// to keep: later set or clear calls on the same key do not invalidate it.
func (a *attachments) get(key dataKey) (any, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.entries == nil {
		return nil, false
	}
	entry, ok := a.entries.Get(dataEntry{key: key})
	if !ok {
		return nil, false
	}
	return entry.value, true
}

// clear removes the entry at key. Clearing a vacant key is a no-op.
func (a *attachments) clear(key dataKey) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.entries != nil {
		a.entries.Delete(dataEntry{key: key})
	}
}

// snapshot returns the current entries in key order. The copy is O(1):
// the underlying tree is copy-on-write.
func (a *attachments) snapshot() []dataEntry {
	a.mu.RLock()
	if a.entries == nil {
		a.mu.RUnlock()
		return nil
	}
	copied := a.entries.Copy()
	a.mu.RUnlock()

	entries := make([]dataEntry, 0, copied.Len())
	copied.Scan(func(e dataEntry) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}

func (n *Node) dataKey() dataKey {
	return dataKey{offset: n.offset, id: n.green.Identity()}
}

// TrySetData attaches value to this node's position if no data is attached
// there yet.
//
// It returns the data present at the position after the call, and whether
// value was the one installed: (value, true) on a vacant position, and the
// pre-existing data plus false on an occupied one, which is left
// untouched. The check and the insert are atomic with respect to all other
// data operations on the tree.
func (n *Node) TrySetData(value any) (any, bool) {
	return n.tree.data.trySet(n.dataKey(), value)
}

// SetData attaches value to this node's position, replacing any data
// already attached there.
func (n *Node) SetData(value any) {
	n.tree.data.set(n.dataKey(), value)
}

// GetData returns the data attached to this node's position, if any.
//
// The returned value stays valid regardless of later [Node.SetData] or
// [Node.ClearData] calls; it is whatever was attached at the moment of the
// read.
func (n *Node) GetData() (any, bool) {
	return n.tree.data.get(n.dataKey())
}

// ClearData removes the data attached to this node's position, if any.
func (n *Node) ClearData() {
	n.tree.data.clear(n.dataKey())
}
