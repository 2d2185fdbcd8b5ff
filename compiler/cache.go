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

import "strings"

// Key returns the structural cache key for a segment: its serialization
// with every parameter name erased to "[]". Since '[' cannot appear in
// literal text, the key uniquely identifies the token shape: two segments
// have equal keys if and only if they have identical literals and
// parameters in identical positions.
//
//	Key(parse("[id]"))        == "[]"
//	Key(parse("[key]@[val]")) == "[]@[]"
//	Key(parse("users"))       == "users"
func Key(segment Segment) string {
	var b strings.Builder
	for _, t := range segment {
		if t.IsParam() {
			b.WriteString("[]")
		} else {
			b.WriteString(t.Text)
		}
	}

	return b.String()
}

// Cache memoizes compiled Matchers by structural key so that structurally
// identical dynamic segments across different routes share a single Matcher
// instance. This bounds the number of compiled matchers by the number of
// distinct segment shapes, not by the number of routes.
//
// Cache is not synchronized: it is used only during single-threaded router
// construction and discarded (or left idle) afterwards.
type Cache struct {
	matchers map[string]Matcher
}

// NewCache creates an empty matcher cache.
func NewCache() *Cache {
	return &Cache{matchers: make(map[string]Matcher, 16)}
}

// Get returns the cached Matcher for the segment's structural key,
// compiling and caching it on first use.
func (c *Cache) Get(segment Segment) Matcher {
	key := Key(segment)
	if m, ok := c.matchers[key]; ok {
		return m
	}

	m := Compile(segment)
	c.matchers[key] = m

	return m
}

// Len returns the number of distinct segment shapes compiled so far.
func (c *Cache) Len() int {
	return len(c.matchers)
}
