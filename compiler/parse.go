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
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse failure reasons, used verbatim in ParseError messages.
const (
	ReasonAdjacentParams = "parameter immediately follows another parameter"
	ReasonMissingName    = "missing parameter name"
	ReasonMissingClose   = "missing parameter name close character"
	ReasonInvalidChar    = "invalid name character"
)

// ParseError reports malformed parameter syntax in a pattern segment.
// Pos is the byte index of the offending character within Input.
type ParseError struct {
	Input  string // the text being parsed when the error occurred
	Pos    int    // byte index of the offending character
	Reason string // one of the Reason constants
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s at index %d", e.Input, e.Reason, e.Pos)
}

// ParseSegment parses one '/'-delimited pattern segment into an ordered
// token list. The empty segment parses to an empty Segment, which is
// distinct from a segment containing literal text: it matches only the
// empty string.
//
// Errors are returned as *ParseError with the byte index of the offending
// character:
//
//   - "[a][b]"  → ReasonAdjacentParams at the second '['
//   - "[]"      → ReasonMissingName at the ']'
//   - "[abc"    → ReasonMissingClose at the opening '['
//   - "[a-b]"   → ReasonInvalidChar at the '-'
//
// Parameter names accept letters and digits in any script (unicode.IsLetter,
// unicode.IsDigit); punctuation and whitespace are rejected.
func ParseSegment(segment string) (Segment, error) {
	if segment == "" {
		return Segment{}, nil
	}

	var (
		parsed Segment
		lit    strings.Builder
	)

	i := 0
	for i < len(segment) {
		r, size := utf8.DecodeRuneInString(segment[i:])
		if r != '[' {
			lit.WriteRune(r)
			i += size

			continue
		}

		// Parameter opens here. Flush any pending literal first; if there is
		// none and the previous token was a parameter, the boundary between
		// the two captures is ambiguous.
		if lit.Len() > 0 {
			parsed = append(parsed, Token{Text: lit.String()})
			lit.Reset()
		} else if len(parsed) > 0 && parsed[len(parsed)-1].IsParam() {
			return nil, &ParseError{Input: segment, Pos: i, Reason: ReasonAdjacentParams}
		}

		open := i
		i += size // consume '['

		start := i
		for i < len(segment) {
			r, size := utf8.DecodeRuneInString(segment[i:])
			if r == ']' {
				break
			}
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return nil, &ParseError{Input: segment, Pos: i, Reason: ReasonInvalidChar}
			}
			i += size
		}

		if i >= len(segment) {
			return nil, &ParseError{Input: segment, Pos: open, Reason: ReasonMissingClose}
		}
		if i == start {
			return nil, &ParseError{Input: segment, Pos: i, Reason: ReasonMissingName}
		}

		parsed = append(parsed, Token{Name: segment[start:i]})
		i++ // consume ']'
	}

	if lit.Len() > 0 {
		parsed = append(parsed, Token{Text: lit.String()})
	}

	return parsed, nil
}
