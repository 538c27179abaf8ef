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

package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/lossless/text"
)

func TestLineIndex(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	x := text.NewLineIndex("let x = 1;\nlet y = 2;\n")
	assert.Equal(3, x.LineCount())

	assert.Equal(text.Location{Offset: 0, Line: 1, Column: 1}, x.Location(0))
	assert.Equal(text.Location{Offset: 4, Line: 1, Column: 5}, x.Location(4))
	assert.Equal(text.Location{Offset: 11, Line: 2, Column: 1}, x.Location(11))
	assert.Equal(text.Location{Offset: 15, Line: 2, Column: 5}, x.Location(15))

	// End-of-text is a valid location on the final (empty) line.
	assert.Equal(text.Location{Offset: 22, Line: 3, Column: 1}, x.Location(22))

	assert.Equal("0..11", x.LineSpan(1).String())
	assert.Equal("11..22", x.LineSpan(2).String())
	assert.Equal("22..22", x.LineSpan(3).String())
}

func TestLineIndexTabs(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	x := text.NewLineIndex("\tx\ty")
	// A tab advances to the next multiple of the tabstop width.
	assert.Equal(5, x.Location(1).Column)  // after "\t"
	assert.Equal(6, x.Location(2).Column)  // after "\tx"
	assert.Equal(9, x.Location(3).Column)  // after "\tx\t"
	assert.Equal(10, x.Location(4).Column) // after "\tx\ty"
}

func TestLineIndexWideRunes(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// CJK characters occupy two terminal cells but three bytes.
	x := text.NewLineIndex("日本;\n")
	assert.Equal(text.Location{Offset: 3, Line: 1, Column: 3}, x.Location(3))
	assert.Equal(text.Location{Offset: 6, Line: 1, Column: 5}, x.Location(6))
	assert.Equal(text.Location{Offset: 7, Line: 1, Column: 6}, x.Location(7))
}

func TestLineIndexEmpty(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	x := text.NewLineIndex("")
	assert.Equal(1, x.LineCount())
	assert.Equal(text.Location{Offset: 0, Line: 1, Column: 1}, x.Location(0))
	assert.Panics(func() { x.Location(1) })
}
