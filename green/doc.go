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

// Package green implements the "green" half of a lossless syntax tree: an
// immutable, position-agnostic tree whose leaves concatenate to exactly the
// original source text.
//
// # Green Trees
//
// A green tree is built from [Node]s and [Token]s. A token is a leaf
// carrying a [Kind] and interned text; a node is an interior element
// carrying a Kind and an ordered list of children. Neither knows its
// absolute position, only its byte length. This is what makes green trees
// shareable: the same subtree value can appear as a child of many parents,
// in many trees, at many different offsets. Position-aware views are
// layered on top by the syntax package.
//
// # Deduplication
//
// All construction goes through a [Cache], which canonicalizes subtrees by
// structural identity: building the same kind with the same children twice
// returns the same *Node both times. Pointer equality of green elements
// from one cache therefore implies structural equality, and repetitive
// inputs share storage instead of duplicating it.
//
// # Building
//
// [Builder] assembles a tree from a depth-first event stream (StartNode,
// Token, FinishNode), consulting the cache at every node boundary. A
// [Checkpoint] allows wrapping already-recorded children into a new node
// retroactively, for producers that discover a node's existence late, such
// as operator-precedence parsers.
package green
