// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pathmatch

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"rivaas.dev/pathmatch/compiler"
)

// TrieTestSuite tests trie construction directly against node internals.
type TrieTestSuite struct {
	suite.Suite

	cache *compiler.Cache
}

func (suite *TrieTestSuite) SetupTest() {
	suite.cache = compiler.NewCache()
}

// build sorts and inserts the patterns, failing the test on any error.
func (suite *TrieTestSuite) build(patterns ...string) *node {
	sorted, err := sortRoutes(patterns)
	suite.Require().NoError(err)

	root, err := buildTrie(sorted, suite.cache)
	suite.Require().NoError(err)

	return root
}

// TestStaticTransitions verifies that literal-only and empty segments become
// static map transitions.
func (suite *TrieTestSuite) TestStaticTransitions() {
	root := suite.build("users/me", "users", "")

	suite.Len(root.static, 2) // "users" and ""
	suite.Empty(root.dynamic)

	users := root.static["users"]
	suite.Require().NotNil(users)
	suite.True(users.terminal)
	suite.Equal("users", users.route)
	suite.Empty(users.keys)

	me := users.static["me"]
	suite.Require().NotNil(me)
	suite.True(me.terminal)
	suite.Equal("users/me", me.route)

	empty := root.static[""]
	suite.Require().NotNil(empty)
	suite.True(empty.terminal)
	suite.Equal("", empty.route)
}

// TestEmptySegments verifies that leading/trailing slashes produce empty
// static transitions, so "a/" and "a" occupy different trie paths.
func (suite *TrieTestSuite) TestEmptySegments() {
	root := suite.build("a", "a/", "/a")

	a := root.static["a"]
	suite.Require().NotNil(a)
	suite.True(a.terminal)

	trailing := a.static[""]
	suite.Require().NotNil(trailing)
	suite.True(trailing.terminal)
	suite.Equal("a/", trailing.route)

	leading := root.static[""]
	suite.Require().NotNil(leading)
	suite.False(leading.terminal)
	suite.Require().NotNil(leading.static["a"])
	suite.Equal("/a", leading.static["a"].route)
}

// TestDynamicEdgeSharing verifies that structurally identical segments share
// one dynamic edge and one child subtree, with per-route parameter names.
func (suite *TrieTestSuite) TestDynamicEdgeSharing() {
	root := suite.build("[a]/a", "[b]/b")

	suite.Empty(root.static)
	suite.Require().Len(root.dynamic, 1, "same shape must share one edge")
	suite.Equal("[]", root.dynamic[0].key)

	child := root.dynamic[0].child
	suite.Len(child.static, 2)
	suite.Equal([]string{"a"}, child.static["a"].keys)
	suite.Equal([]string{"b"}, child.static["b"].keys)

	// One shape compiled for the whole trie.
	suite.Equal(1, suite.cache.Len())
}

// TestDynamicEdgeOrder verifies that dynamic edges preserve sorted insertion
// order.
func (suite *TrieTestSuite) TestDynamicEdgeOrder() {
	root := suite.build("c[x]", "a[x]", "b[x]")

	suite.Require().Len(root.dynamic, 3)
	suite.Equal("a[]", root.dynamic[0].key)
	suite.Equal("b[]", root.dynamic[1].key)
	suite.Equal("c[]", root.dynamic[2].key)
}

// TestTerminalKeys verifies parameter name accumulation along the insertion
// path.
func (suite *TrieTestSuite) TestTerminalKeys() {
	root := suite.build("users/[id]/posts/[post]")

	n := root.static["users"]
	suite.Require().NotNil(n)
	suite.Require().Len(n.dynamic, 1)
	n = n.dynamic[0].child.static["posts"]
	suite.Require().NotNil(n)
	suite.Require().Len(n.dynamic, 1)

	terminal := n.dynamic[0].child
	suite.True(terminal.terminal)
	suite.Equal([]string{"id", "post"}, terminal.keys)
}

// TestDuplicateStatic verifies collision detection on static paths.
func (suite *TrieTestSuite) TestDuplicateStatic() {
	sorted, err := sortRoutes([]string{"a/b", "a/b"})
	suite.Require().NoError(err)

	_, err = buildTrie(sorted, suite.cache)
	suite.Require().Error(err)

	var dup *DuplicateRouteError
	suite.Require().ErrorAs(err, &dup)
	suite.Equal("a/b", dup.Pattern)
}

// TestDuplicateStructural verifies that patterns differing only in parameter
// names collide: they reduce to the same transition sequence.
func (suite *TrieTestSuite) TestDuplicateStructural() {
	sorted, err := sortRoutes([]string{"[a]", "[b]"})
	suite.Require().NoError(err)

	_, err = buildTrie(sorted, suite.cache)
	suite.Require().Error(err)

	var dup *DuplicateRouteError
	suite.Require().ErrorAs(err, &dup)
	suite.Equal("[b]", dup.Pattern)
	suite.Equal("[a]", dup.Existing)
}

func TestTrieTestSuite(t *testing.T) {
	suite.Run(t, new(TrieTestSuite))
}
