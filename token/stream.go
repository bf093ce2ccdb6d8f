/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package token

import "strings"

// Stream is an ordered sequence of tokens. All structural operations return
// a new slice and never mutate the receiver's backing array in place, so a
// parsed stream can be spliced by several rewriters independently.
type Stream []Token

// Render concatenates the literal text of every token, emitting one space
// after tokens flagged SpaceAfter, and trims the result. For an unmodified
// stream this is the inverse of tokenization up to whitespace
// normalization.
func (s Stream) Render() string {
	var b strings.Builder
	for _, t := range s {
		b.WriteString(t.Literal)
		if t.SpaceAfter {
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

// Insert returns a copy of the stream with toks inserted before position i.
func (s Stream) Insert(i int, toks ...Token) Stream {
	out := make(Stream, 0, len(s)+len(toks))
	out = append(out, s[:i]...)
	out = append(out, toks...)
	out = append(out, s[i:]...)
	return out
}

// Delete returns a copy of the stream with the half-open range [i, j)
// removed.
func (s Stream) Delete(i, j int) Stream {
	out := make(Stream, 0, len(s)-(j-i))
	out = append(out, s[:i]...)
	out = append(out, s[j:]...)
	return out
}

// Slice returns a copy of the half-open range [i, j).
func (s Stream) Slice(i, j int) Stream {
	out := make(Stream, j-i)
	copy(out, s[i:j])
	return out
}

// Spaced returns a copy of the stream whose position i-1 token is
// guaranteed to carry a trailing space, so that tokens inserted at i do not
// glue onto the preceding literal. Inserting at position 0 needs no
// separator.
func (s Stream) Spaced(i int) Stream {
	if i == 0 || s[i-1].SpaceAfter {
		return s
	}
	out := make(Stream, len(s))
	copy(out, s)
	out[i-1].SpaceAfter = true
	return out
}

// IndexAfter returns the index of the first token at or after position i
// whose type matches typ, or -1.
func (s Stream) IndexAfter(i int, typ Type) int {
	for ; i < len(s); i++ {
		if s[i].Type == typ {
			return i
		}
	}
	return -1
}

// ContainsKeyword reports whether any token in the stream matches the given
// word case-insensitively.
func (s Stream) ContainsKeyword(word string) bool {
	for _, t := range s {
		if t.IsKeyword(word) {
			return true
		}
	}
	return false
}
