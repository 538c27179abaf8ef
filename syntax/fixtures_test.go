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

package syntax_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/lossless/green"
	"github.com/bufbuild/lossless/syntax"
)

// fixtureElement is one node or token of a fixture tree. Elements with a
// token value are leaves; everything else is a node.
type fixtureElement struct {
	Kind     uint32           `yaml:"kind"`
	Token    *string          `yaml:"token"`
	Children []fixtureElement `yaml:"children"`
}

type fixture struct {
	Name   string         `yaml:"name"`
	Root   fixtureElement `yaml:"root"`
	Text   string         `yaml:"text"`
	Render string         `yaml:"render"`
}

type fixtureFile struct {
	Trees []fixture `yaml:"trees"`
}

func buildFixture(b *green.Builder, el fixtureElement) {
	if el.Token != nil {
		b.Token(green.Kind(el.Kind), *el.Token)
		return
	}
	b.StartNode(green.Kind(el.Kind))
	for _, child := range el.Children {
		buildFixture(b, child)
	}
	b.FinishNode()
}

func TestFixtures(t *testing.T) {
	t.Parallel()

	raw, err := os.ReadFile("testdata/trees.yaml")
	require.NoError(t, err)

	var file fixtureFile
	require.NoError(t, yaml.Unmarshal(raw, &file))
	require.NotEmpty(t, file.Trees)

	for _, tt := range file.Trees {
		t.Run(tt.Name, func(t *testing.T) {
			t.Parallel()

			b := green.NewBuilder()
			buildFixture(b, tt.Root)
			root, resolver := b.Finish()

			tree := syntax.NewRootWithResolver(root, resolver)
			assert.Equal(t, tt.Text, tree.Text())
			assert.Equal(t, uint32(len(tt.Text)), tree.Range().Len())
			assertRender(t, tt.Render, tree.DebugTree(nil))
		})
	}
}
