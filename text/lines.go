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

package text

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the width all tabstops are rendered as when computing
// columns.
const TabstopWidth = 4

// Location is a user-displayable location within source text, as produced
// by [LineIndex.Location].
type Location struct {
	// The byte offset for this location.
	Offset uint32

	// The line and column for this location, 1-indexed.
	//
	// Column is measured in terminal display cells, not bytes: multi-byte
	// graphemes count by their monospace width, and tabs advance to the
	// next multiple of [TabstopWidth].
	Line, Column int
}

// LineIndex converts byte offsets within a source text into line/column
// [Location]s.
//
// Building the index scans the text once; each lookup is a binary search
// over line starts plus a width measurement of the line prefix. The text a
// LineIndex was built from must be the same text offsets are taken against,
// typically the resolved text of a tree root.
type LineIndex struct {
	text string

	// Byte offset of the first byte of each line. Always starts with 0.
	starts []uint32
}

// NewLineIndex builds a line index for text.
func NewLineIndex(text string) *LineIndex {
	starts := []uint32{0}
	for i := 0; i < len(text); {
		nl := strings.IndexByte(text[i:], '\n')
		if nl == -1 {
			break
		}
		i += nl + 1
		starts = append(starts, uint32(i))
	}
	return &LineIndex{text: text, starts: starts}
}

// Location returns the location of the given byte offset.
//
// Panics if offset is past the end of the indexed text. An offset equal to
// the text's length is allowed, denoting the end-of-text position.
func (x *LineIndex) Location(offset uint32) Location {
	if int(offset) > len(x.text) {
		panic(fmt.Sprintf("lossless/text: offset %d out of range for text of length %d", offset, len(x.text)))
	}

	line := sort.Search(len(x.starts), func(i int) bool {
		return x.starts[i] > offset
	})
	// line is now 1-indexed: starts[line-1] <= offset < starts[line].

	prefix := x.text[x.starts[line-1]:offset]
	return Location{
		Offset: offset,
		Line:   line,
		Column: 1 + widthOf(prefix),
	}
}

// LineSpan returns the range of the given 1-indexed line, including its
// trailing newline if present.
func (x *LineIndex) LineSpan(line int) Range {
	if line < 1 || line > len(x.starts) {
		panic(fmt.Sprintf("lossless/text: line %d out of range", line))
	}
	start := x.starts[line-1]
	end := uint32(len(x.text))
	if line < len(x.starts) {
		end = x.starts[line]
	}
	return NewRange(start, end)
}

// LineCount returns the number of lines in the indexed text. Empty text has
// one (empty) line.
func (x *LineIndex) LineCount() int {
	return len(x.starts)
}

// widthOf measures the display width of a line prefix. We can't just use
// uniseg.StringWidth, because that doesn't respect tabstops correctly.
func widthOf(prefix string) int {
	var column int
	for prefix != "" {
		nextTab := strings.IndexByte(prefix, '\t')
		haveTab := nextTab != -1
		next := prefix
		if haveTab {
			next, prefix = prefix[:nextTab], prefix[nextTab+1:]
		} else {
			prefix = ""
		}

		column += uniseg.StringWidth(next)

		if haveTab {
			column += TabstopWidth - (column % TabstopWidth)
		}
	}
	return column
}
