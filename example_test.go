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

package pathmatch_test

import (
	"fmt"

	"rivaas.dev/pathmatch"
)

// ExampleNew demonstrates building a router and enumerating every match in
// specificity order.
func ExampleNew() {
	r, err := pathmatch.New([]string{
		"users",
		"users/[id]",
		"[page]",
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for m := range r.Match("users") {
		fmt.Printf("%s keys=%v values=%v\n", m.Route, m.Keys, m.Values)
	}
	// Output:
	// users keys=[] values=[]
	// [page] keys=[page] values=[users]
}

// ExampleRouter_Match demonstrates parameter extraction.
func ExampleRouter_Match() {
	r := pathmatch.MustNew([]string{"users/[id]/posts/[post]"})

	for m := range r.Match("users/42/posts/first") {
		for i, key := range m.Keys {
			fmt.Printf("%s=%s\n", key, m.Values[i])
		}
	}
	// Output:
	// id=42
	// post=first
}

// ExampleRouter_MatchFirst demonstrates best-match dispatch: lower-priority
// matches are never computed.
func ExampleRouter_MatchFirst() {
	r := pathmatch.MustNew([]string{"about", "[page]"})

	if m, ok := r.MatchFirst("about"); ok {
		fmt.Println(m.Route)
	}
	if _, ok := r.MatchFirst("a/b"); !ok {
		fmt.Println("no match")
	}
	// Output:
	// about
	// no match
}

// ExampleRouter_Routes demonstrates introspecting the priority order.
func ExampleRouter_Routes() {
	r := pathmatch.MustNew([]string{"[page]", "users/[id]", "users", "users/me"})

	for _, route := range r.Routes() {
		fmt.Println(route)
	}
	// Output:
	// users
	// [page]
	// users/me
	// users/[id]
}

// ExampleNew_errors demonstrates registration failure modes.
func ExampleNew_errors() {
	_, err := pathmatch.New([]string{"[a][b]"})
	fmt.Println(err)

	_, err = pathmatch.New([]string{"[a]", "[b]"})
	fmt.Println(err)
	// Output:
	// route "[a][b]": parse "[a][b]": parameter immediately follows another parameter at index 3
	// duplicate route "[b]": already registered as "[a]"
}
