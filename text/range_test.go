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

func TestRange(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	r := text.RangeAt(6, 3)
	assert.Equal(uint32(6), r.Start())
	assert.Equal(uint32(9), r.End())
	assert.Equal(uint32(3), r.Len())
	assert.Equal("6..9", r.String())
	assert.False(r.IsEmpty())

	assert.True(r.Contains(6))
	assert.True(r.Contains(8))
	assert.False(r.Contains(9))
	assert.False(r.Contains(5))

	assert.True(r.ContainsRange(text.NewRange(6, 9)))
	assert.True(r.ContainsRange(text.NewRange(7, 7)))
	assert.False(r.ContainsRange(text.NewRange(5, 9)))
	assert.False(r.ContainsRange(text.NewRange(6, 10)))

	empty := text.RangeAt(4, 0)
	assert.True(empty.IsEmpty())
	assert.Equal("4..4", empty.String())
}

func TestRangeInvalid(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { text.NewRange(9, 6) })
}
