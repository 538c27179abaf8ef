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

// Package text provides byte-offset ranges over source text, and conversion
// of offsets into user-displayable line/column locations.
package text

import "fmt"

// Range is a half-open byte range [Start, End) within some source text.
//
// The zero value is the empty range at offset zero.
type Range struct {
	start, end uint32
}

// NewRange returns the range [start, end).
//
// Panics if end < start.
func NewRange(start, end uint32) Range {
	if end < start {
		panic(fmt.Sprintf("lossless/text: invalid range %d..%d", start, end))
	}
	return Range{start: start, end: end}
}

// RangeAt returns the range of the given length starting at offset.
func RangeAt(offset, length uint32) Range {
	return Range{start: offset, end: offset + length}
}

// Start returns the inclusive start offset.
func (r Range) Start() uint32 { return r.start }

// End returns the exclusive end offset.
func (r Range) End() uint32 { return r.end }

// Len returns the number of bytes this range covers.
func (r Range) Len() uint32 { return r.end - r.start }

// IsEmpty reports whether this range covers no bytes.
func (r Range) IsEmpty() bool { return r.start == r.end }

// Contains reports whether offset lies within this range.
func (r Range) Contains(offset uint32) bool {
	return offset >= r.start && offset < r.end
}

// ContainsRange reports whether other lies entirely within this range.
//
// Every range contains the empty range at its own start, and a non-empty
// range contains itself.
func (r Range) ContainsRange(other Range) bool {
	return other.start >= r.start && other.end <= r.end
}

// Intersects reports whether the two ranges share at least one byte, or
// touch at a shared boundary.
func (r Range) Intersects(other Range) bool {
	return r.start <= other.end && other.start <= r.end
}

// String implements [fmt.Stringer], rendering the range as "start..end".
func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.start, r.end)
}
