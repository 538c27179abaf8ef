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

// Package syntax implements the "red" half of a lossless syntax tree:
// position-aware cursors over the immutable green tree built by the green
// package.
//
// # Red Cursors
//
// A green element does not know where it is; the same green subtree may
// appear at many offsets in many trees. A [Node] or [Token] cursor pairs a
// green element with just enough context (its parent cursor and absolute
// offset) to answer position queries and navigate in every direction.
// Cursors are small values materialized lazily during traversal: they are
// created on demand, compared by the position they denote rather than by
// object identity, and are cheap to discard.
//
// # Position Identity
//
// Two cursors are [Node.Equal] when they denote the same place: the same
// green element at the same absolute offset. This identity, not the cursor
// instance, also keys the per-tree data attachment table, so data attached
// through one cursor is visible through every other cursor for that
// position, including ones created later. See [Node.SetData].
//
// # Resolvers
//
// Token text lives in an interner, so any operation that produces text
// needs an [intern.Resolver]. A root created with [NewRootWithResolver]
// owns one and threads it implicitly, enabling [Node.Text]; a root created
// with [NewRoot] does not, and callers must pass a resolver to
// [Node.ResolveText] explicitly. Calling Text on a resolver-less tree is a
// precondition violation and panics.
package syntax
