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
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/lossless/green"
	"github.com/bufbuild/lossless/intern"
	"github.com/bufbuild/lossless/syntax"
	"github.com/bufbuild/lossless/text"
)

// buildTwoLevel drives b with the canonical test tree
//
//	Node(0)
//	  Node(1)("0.0" "0.1")
//	  Node(4)("1.0")
//	  Node(6)("2.0" "2.1" "2.2")
//
// whose kinds are assigned in depth-first visit order.
func buildTwoLevel(b *green.Builder) {
	b.StartNode(0)
	b.StartNode(1)
	b.Token(2, "0.0")
	b.Token(3, "0.1")
	b.FinishNode()
	b.StartNode(4)
	b.Token(5, "1.0")
	b.FinishNode()
	b.StartNode(6)
	b.Token(7, "2.0")
	b.Token(8, "2.1")
	b.Token(9, "2.2")
	b.FinishNode()
	b.FinishNode()
}

func buildTree(t *testing.T) (*green.Node, *intern.Table) {
	t.Helper()
	b := green.NewBuilder()
	buildTwoLevel(b)
	root, resolver := b.Finish()
	require.NotNil(t, resolver)
	return root, resolver
}

// nthChild returns the idx-th child node, mirroring how callers fish
// specific children out of an iterator.
func nthChild(t *testing.T, n *syntax.Node, idx int) *syntax.Node {
	t.Helper()
	children := slices.Collect(n.Children())
	require.Greater(t, len(children), idx)
	return children[idx]
}

func TestCreate(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	root, resolver := buildTree(t)
	tree := syntax.NewRoot(root)
	assert.Equal(syntax.Kind(0), tree.Kind())
	assert.True(tree.IsRoot())
	assert.Nil(tree.Parent())
	assert.Equal(text.RangeAt(0, 18), tree.Range())

	{
		elements := slices.Collect(nthChild(t, tree, 1).ChildrenWithTokens())
		require.Len(t, elements, 1)
		leaf10 := elements[0].Token()
		require.NotNil(t, leaf10)
		assert.Equal(syntax.Kind(5), leaf10.Kind())
		assert.Equal("1.0", leaf10.ResolveText(resolver))
		assert.Equal(text.RangeAt(6, 3), leaf10.Range())
	}
	{
		node2 := nthChild(t, tree, 2)
		assert.Equal(syntax.Kind(6), node2.Kind())
		assert.Equal(3, node2.ArityWithTokens())
		assert.Equal("2.02.12.2", node2.ResolveText(resolver))
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	root, resolver := buildTree(t)
	tree := syntax.NewRootWithResolver(root, resolver)

	// The root's text is the exact concatenation of every leaf.
	assert.Equal(t, "0.00.11.02.02.12.2", tree.Text())

	// Child ranges are contiguous and cover the parent exactly.
	var check func(n *syntax.Node)
	check = func(n *syntax.Node) {
		offset := n.Range().Start()
		for el := range n.ChildrenWithTokens() {
			assert.Equal(t, offset, el.Range().Start(), "children must tile the parent")
			offset = el.Range().End()
			if el.IsNode() {
				check(el.Node())
			}
		}
		if n.ArityWithTokens() > 0 {
			assert.Equal(t, n.Range().End(), offset)
		}
	}
	check(tree)
}

func TestWithInterner(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var table intern.Table
	cache := green.NewCacheWithInterner(&table)
	b := green.NewBuilderWithCache(cache)
	buildTwoLevel(b)
	root, owned := b.Finish()
	require.Nil(t, owned)

	tree := syntax.NewRoot(root)
	{
		elements := slices.Collect(nthChild(t, tree, 1).ChildrenWithTokens())
		leaf10 := elements[0].Token()
		assert.Equal("1.0", leaf10.ResolveText(&table))
		assert.Equal(text.RangeAt(6, 3), leaf10.Range())
	}
	{
		node2 := nthChild(t, tree, 2)
		assert.Equal("2.02.12.2", node2.ResolveText(&table))
	}
}

func TestInlineResolver(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	root, resolver := buildTree(t)
	tree := syntax.NewRootWithResolver(root, resolver)

	{
		elements := slices.Collect(nthChild(t, tree, 1).ChildrenWithTokens())
		leaf10 := elements[0].Token()
		assert.Equal("1.0", leaf10.Text())
		assert.Equal(text.RangeAt(6, 3), leaf10.Range())
		assert.Equal(leaf10.Text(), fmt.Sprintf("%v", leaf10))
		assert.Equal(`Kind(5)@6..9 "1.0"`, leaf10.Debug(nil))
	}
	{
		node2 := nthChild(t, tree, 2)
		assert.Equal("2.02.12.2", node2.Text())
		require.NotNil(t, node2.Tree().Resolver())
		assert.Equal(node2.Text(), node2.ResolveText(node2.Tree().Resolver()))
		assert.Equal(node2.Text(), fmt.Sprintf("%v", node2))
		assert.Equal("Kind(6)@9..18", node2.Debug(nil))
		assert.Equal(
			"Kind(6)@9..18\n"+
				"  Kind(7)@9..12 \"2.0\"\n"+
				"  Kind(8)@12..15 \"2.1\"\n"+
				"  Kind(9)@15..18 \"2.2\"\n",
			node2.DebugTree(nil),
		)
	}
}

func TestResolverEquivalence(t *testing.T) {
	t.Parallel()

	root, resolver := buildTree(t)
	external := syntax.NewRoot(root)
	owned := syntax.NewRootWithResolver(root, resolver)

	assert.Equal(t, owned.Text(), external.ResolveText(resolver))
	assert.Panics(t, func() { external.Text() }, "Text requires an owned resolver")
}

func TestNavigation(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	root, resolver := buildTree(t)
	tree := syntax.NewRootWithResolver(root, resolver)

	nodeA := nthChild(t, tree, 0)
	nodeB := nthChild(t, tree, 1)
	nodeC := nthChild(t, tree, 2)

	assert.True(tree.FirstChild().Equal(nodeA))
	assert.True(tree.LastChild().Equal(nodeC))
	assert.True(nodeA.NextSibling().Equal(nodeB))
	assert.True(nodeB.NextSibling().Equal(nodeC))
	assert.Nil(nodeC.NextSibling())
	assert.True(nodeC.PrevSibling().Equal(nodeB))
	assert.True(nodeB.PrevSibling().Equal(nodeA))
	assert.Nil(nodeA.PrevSibling())
	assert.Nil(tree.NextSibling())

	assert.True(nodeB.Parent().Equal(tree))
	assert.True(nodeB.Root().Equal(tree))

	// Token-level siblings inside node C.
	tokens := slices.Collect(nodeC.ChildrenWithTokens())
	require.Len(t, tokens, 3)
	assert.True(tokens[0].NextSiblingOrToken().Equal(tokens[1]))
	assert.True(tokens[2].PrevSiblingOrToken().Equal(tokens[1]))
	assert.True(tokens[2].NextSiblingOrToken().IsZero())
	assert.True(tokens[0].PrevSiblingOrToken().IsZero())

	// Crossing a node boundary yields the absent element, not a cousin.
	lastA := slices.Collect(nodeA.ChildrenWithTokens())[1]
	assert.True(lastA.NextSiblingOrToken().IsZero())

	assert.Equal("0.0", tree.FirstToken().Text())
	assert.Equal("2.2", tree.LastToken().Text())

	ancestors := slices.Collect(tokens[1].Token().Ancestors())
	require.Len(t, ancestors, 2)
	assert.True(ancestors[0].Equal(nodeC))
	assert.True(ancestors[1].Equal(tree))

	var kinds []syntax.Kind
	for n := range tree.Preorder() {
		kinds = append(kinds, n.Kind())
	}
	assert.Equal([]syntax.Kind{0, 1, 4, 6}, kinds)
}

func TestCoveringElement(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	root, resolver := buildTree(t)
	tree := syntax.NewRootWithResolver(root, resolver)

	// Entirely inside token "1.0".
	el := tree.CoveringElement(text.NewRange(7, 8))
	require.True(t, el.IsToken())
	assert.Equal(syntax.Kind(5), el.Kind())

	// Exactly a token's range.
	el = tree.CoveringElement(text.RangeAt(6, 3))
	require.True(t, el.IsToken())
	assert.Equal(syntax.Kind(5), el.Kind())

	// Spans two children: only the root covers it.
	el = tree.CoveringElement(text.NewRange(5, 7))
	require.True(t, el.IsNode())
	assert.True(el.Node().Equal(tree))

	assert.Panics(func() { tree.CoveringElement(text.NewRange(0, 19)) })
}

func TestCursorEquality(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	root, resolver := buildTree(t)
	tree := syntax.NewRootWithResolver(root, resolver)

	// Cursors materialized independently for the same position are equal.
	first := nthChild(t, tree, 2)
	second := nthChild(t, tree, 2)
	assert.NotSame(first, second)
	assert.True(first.Equal(second))
	assert.False(first.Equal(nthChild(t, tree, 1)))

	// Structurally identical siblings share one green node but occupy
	// different positions, so their cursors must not compare equal.
	b := green.NewBuilder()
	b.StartNode(0)
	for range 2 {
		b.StartNode(1)
		b.Token(2, "x")
		b.FinishNode()
	}
	b.FinishNode()
	dupRoot, dupResolver := b.Finish()

	dup := syntax.NewRootWithResolver(dupRoot, dupResolver)
	twins := slices.Collect(dup.Children())
	require.Len(t, twins, 2)
	assert.Same(twins[0].Green(), twins[1].Green(), "the cache shares the green subtree")
	assert.False(twins[0].Equal(twins[1]), "but the positions differ")
}
