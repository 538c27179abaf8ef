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

// Package lossless is a lossless concrete syntax tree engine: trees whose
// leaves concatenate back to the exact original source text, whitespace
// and comments included.
//
// The engine is split along the classic green/red design:
//
//   - [github.com/bufbuild/lossless/green] holds the immutable,
//     structurally shared tree and its canonicalizing builder and cache.
//   - [github.com/bufbuild/lossless/syntax] layers ephemeral,
//     position-aware cursors over a green root, along with a per-tree
//     data attachment table for analysis results.
//   - [github.com/bufbuild/lossless/intern] supplies the pluggable text
//     interning and resolution contracts that keep token text out of the
//     tree itself.
//   - [github.com/bufbuild/lossless/text] provides byte ranges and
//     line/column conversion for diagnostics.
//
// A parser drives a [github.com/bufbuild/lossless/green.Builder] with a
// depth-first stream of start/token/finish events; the finished root is
// wrapped in a cursor by the syntax package for querying. This package
// itself contains no code: it exists to document the module.
package lossless
