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

package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustParse parses a segment or fails the test.
func mustParse(t *testing.T, segment string) Segment {
	t.Helper()

	parsed, err := ParseSegment(segment)
	require.NoError(t, err)

	return parsed
}

// TestCompile tests matcher behavior across segment shapes.
func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pattern    string
		input      string
		wantValues []string
		wantOK     bool
	}{
		// Empty segment: matches only the empty string.
		{name: "empty matches empty", pattern: "", input: "", wantValues: nil, wantOK: true},
		{name: "empty rejects text", pattern: "", input: "a", wantOK: false},

		// Trailing parameter captures the remainder.
		{name: "tail capture", pattern: "[key]@[value]", input: "foo@bar@baz", wantValues: []string{"foo", "bar@baz"}, wantOK: true},
		{name: "leftmost delimiter", pattern: "[key]@[value]", input: "foo@@", wantValues: []string{"foo", "@"}, wantOK: true},

		// Parameters never capture the empty string.
		{name: "empty leading capture", pattern: "[key]@[value]", input: "@bar", wantOK: false},
		{name: "empty trailing capture", pattern: "[key]@[value]", input: "foo@", wantOK: false},
		{name: "missing delimiter", pattern: "[key]@[value]", input: "foobar", wantOK: false},
		{name: "empty input", pattern: "[id]", input: "", wantOK: false},

		// Literals anchor exactly.
		{name: "literal prefix", pattern: "v[major].[minor]", input: "v1.2", wantValues: []string{"1", "2"}, wantOK: true},
		{name: "tail swallows later delimiters", pattern: "v[major].[minor]", input: "v1.2.3", wantValues: []string{"1", "2.3"}, wantOK: true},
		{name: "missing literal prefix", pattern: "v[major].[minor]", input: "1.2", wantOK: false},

		// No backtracking: the leftmost delimiter is authoritative even when
		// a later occurrence would let the match complete.
		{name: "leftmost is final", pattern: "[x]b", input: "abcb", wantOK: false},
		{name: "leftmost accepted", pattern: "[x]b", input: "acb", wantValues: []string{"ac"}, wantOK: true},

		// Whole input must be consumed.
		{name: "trailing garbage", pattern: "[name].json", input: "doc.jsonx", wantOK: false},
		{name: "exact consumption", pattern: "[name].json", input: "doc.json", wantValues: []string{"doc"}, wantOK: true},

		// Single literal: handled upstream as a static transition, but
		// compiling one still works.
		{name: "pure literal match", pattern: "users", input: "users", wantValues: []string{}, wantOK: true},
		{name: "pure literal mismatch", pattern: "users", input: "user", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			matcher := Compile(mustParse(t, tt.pattern))
			values, ok := matcher(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantValues, values)
			} else {
				assert.Nil(t, values)
			}
		})
	}
}

// TestKey tests structural key computation.
func TestKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		want    string
	}{
		{"", ""},
		{"users", "users"},
		{"[id]", "[]"},
		{"[key]@[value]", "[]@[]"},
		{"v[major].[minor]", "v[].[]"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Key(mustParse(t, tt.pattern)), "pattern %q", tt.pattern)
	}
}

// TestKeyIgnoresNames verifies that parameter names never influence the
// structural key, while literals and parameter positions always do.
func TestKeyIgnoresNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		Key(mustParse(t, "[a]")),
		Key(mustParse(t, "[b]")),
	)
	assert.Equal(t,
		Key(mustParse(t, "x[a]y[b]")),
		Key(mustParse(t, "x[c]y[d]")),
	)
	assert.NotEqual(t,
		Key(mustParse(t, "[a]")),
		Key(mustParse(t, "a[b]")),
	)
	assert.NotEqual(t,
		Key(mustParse(t, "a")),
		Key(mustParse(t, "[a]")),
	)
}

// TestCache verifies that structurally identical segments share one compiled
// matcher and distinct shapes do not.
func TestCache(t *testing.T) {
	t.Parallel()

	cache := NewCache()

	m1 := cache.Get(mustParse(t, "[a]"))
	m2 := cache.Get(mustParse(t, "[b]"))
	require.Equal(t, 1, cache.Len(), "same shape must compile once")

	// The shared matcher serves both spellings.
	values, ok := m1("x")
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, values)
	values, ok = m2("y")
	require.True(t, ok)
	assert.Equal(t, []string{"y"}, values)

	cache.Get(mustParse(t, "x[a]"))
	assert.Equal(t, 2, cache.Len())

	cache.Get(mustParse(t, "x[zzz]"))
	assert.Equal(t, 2, cache.Len(), "name change must not add a shape")
}
