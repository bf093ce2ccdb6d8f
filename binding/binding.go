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

// Package binding extracts bind markers from declared queries: named
// parameters (:name), positional parameters (?1, bare ?), and inline
// expression placeholders (:#{...} / ?#{...}). Expression placeholders
// are rewritten to synthetic named parameters and compiled once, so the
// rewritten query can be handed to a driver while the expressions are
// evaluated against a caller-supplied environment.
package binding

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/spf13/cast"
)

// Kind classifies a bind marker.
type Kind int

const (
	// Named is a :name marker.
	Named Kind = iota
	// Positional is a ?N or bare ? marker.
	Positional
	// Expression is a :#{...} or ?#{...} placeholder.
	Expression
)

// Parameter is one bind marker found in a query.
type Parameter struct {
	Kind Kind
	// Name is the parameter name for Named markers and the synthetic
	// name assigned to Expression markers.
	Name string
	// Ordinal is the declared index of a ?N marker, or the 1-based
	// occurrence index of a bare ? marker. Zero for named markers.
	Ordinal int
	// Expression holds the placeholder source text, braces stripped.
	Expression string
}

// Bindings is the parsed bind-marker set of one query.
type Bindings struct {
	query     string
	rewritten string
	params    []Parameter
	programs  map[string]*vm.Program
}

const syntheticPrefix = "__synthetic_"

// ErrMixedParameters is returned when a query uses both named and
// positional bind markers. Drivers resolve the two styles differently,
// so a mixed query is ambiguous.
var ErrMixedParameters = errors.New("query mixes named and positional parameters")

// Parse scans the query for bind markers, skipping string literals,
// quoted identifiers, comments, and the :: cast operator. Expression
// placeholders are compiled eagerly so a malformed expression fails here
// rather than at evaluation time.
func Parse(query string) (*Bindings, error) {
	b := &Bindings{
		query:    query,
		programs: map[string]*vm.Program{},
	}

	var out strings.Builder
	var bare int
	i := 0
	for i < len(query) {
		c := query[i]
		switch {
		case c == '\'' || c == '"' || c == '`':
			end := skipQuoted(query, i)
			out.WriteString(query[i:end])
			i = end
		case c == '-' && strings.HasPrefix(query[i:], "--"):
			end := skipLineComment(query, i)
			out.WriteString(query[i:end])
			i = end
		case c == '/' && strings.HasPrefix(query[i:], "/*"):
			end := skipBlockComment(query, i)
			out.WriteString(query[i:end])
			i = end
		case strings.HasPrefix(query[i:], ":#{") || strings.HasPrefix(query[i:], "?#{"):
			end, err := matchBraces(query, i+2)
			if err != nil {
				return nil, err
			}
			src := query[i+3 : end-1]
			name := fmt.Sprintf("%s%d", syntheticPrefix, len(b.programs))
			program, err := expr.Compile(src, expr.AllowUndefinedVariables())
			if err != nil {
				return nil, fmt.Errorf("compile placeholder expression %q: %w", src, err)
			}
			b.programs[name] = program
			b.params = append(b.params, Parameter{Kind: Expression, Name: name, Expression: src})
			out.WriteString(":" + name)
			i = end
		case c == ':':
			if strings.HasPrefix(query[i:], "::") {
				out.WriteString("::")
				i += 2
				continue
			}
			end := i + 1
			for end < len(query) && isNameByte(query[end]) {
				end++
			}
			if end == i+1 {
				out.WriteByte(c)
				i++
				continue
			}
			b.params = append(b.params, Parameter{Kind: Named, Name: query[i+1 : end]})
			out.WriteString(query[i:end])
			i = end
		case c == '?':
			end := i + 1
			for end < len(query) && query[end] >= '0' && query[end] <= '9' {
				end++
			}
			ordinal := 0
			if end > i+1 {
				ordinal = int(cast.ToInt64(query[i+1 : end]))
			} else {
				bare++
				ordinal = bare
			}
			b.params = append(b.params, Parameter{Kind: Positional, Ordinal: ordinal})
			out.WriteString(query[i:end])
			i = end
		default:
			out.WriteByte(c)
			i++
		}
	}
	b.rewritten = out.String()

	if b.hasKind(Named) && b.hasKind(Positional) {
		return nil, ErrMixedParameters
	}
	return b, nil
}

func (b *Bindings) hasKind(k Kind) bool {
	for _, p := range b.params {
		if p.Kind == k {
			return true
		}
	}
	return false
}

// Query returns the original query text.
func (b *Bindings) Query() string {
	return b.query
}

// Rewritten returns the query with every expression placeholder replaced
// by its synthetic named parameter. Queries without placeholders come
// back unchanged.
func (b *Bindings) Rewritten() string {
	return b.rewritten
}

// Parameters returns the bind markers in source order.
func (b *Bindings) Parameters() []Parameter {
	out := make([]Parameter, len(b.params))
	copy(out, b.params)
	return out
}

// DuplicatePositionals returns the ordinals that more than one positional
// marker resolves to, in ascending order. Reusing an index is legal in
// some dialects, but in a hand-numbered query it usually means a marker
// was copied without renumbering, so the duplicates are reported for the
// caller to act on.
func (b *Bindings) DuplicatePositionals() []int {
	counts := map[int]int{}
	for _, p := range b.params {
		if p.Kind == Positional {
			counts[p.Ordinal]++
		}
	}
	var out []int
	for ordinal, n := range counts {
		if n > 1 {
			out = append(out, ordinal)
		}
	}
	sort.Ints(out)
	return out
}

// HasExpressions reports whether the query declared any :#{...} or
// ?#{...} placeholders.
func (b *Bindings) HasExpressions() bool {
	return len(b.programs) > 0
}

// Evaluate runs every placeholder expression against env and returns the
// synthetic-parameter values to bind alongside the caller's own
// parameters.
func (b *Bindings) Evaluate(env map[string]interface{}) (map[string]interface{}, error) {
	values := make(map[string]interface{}, len(b.programs))
	for name, program := range b.programs {
		v, err := expr.Run(program, env)
		if err != nil {
			return nil, fmt.Errorf("evaluate placeholder %s: %w", name, err)
		}
		values[name] = v
	}
	return values, nil
}

// EvaluateStrings is Evaluate with every value coerced to its string
// form, for drivers that bind text.
func (b *Bindings) EvaluateStrings(env map[string]interface{}) (map[string]string, error) {
	values, err := b.Evaluate(env)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(values))
	for name, v := range values {
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, fmt.Errorf("placeholder %s value %v is not stringable: %w", name, v, err)
		}
		out[name] = s
	}
	return out, nil
}

func skipQuoted(s string, i int) int {
	quote := s[i]
	j := i + 1
	for j < len(s) {
		if s[j] == quote {
			// Doubled quotes escape inside SQL literals.
			if j+1 < len(s) && s[j+1] == quote {
				j += 2
				continue
			}
			return j + 1
		}
		j++
	}
	return len(s)
}

func skipLineComment(s string, i int) int {
	j := strings.IndexByte(s[i:], '\n')
	if j < 0 {
		return len(s)
	}
	return i + j + 1
}

func skipBlockComment(s string, i int) int {
	j := strings.Index(s[i+2:], "*/")
	if j < 0 {
		return len(s)
	}
	return i + 2 + j + 2
}

// matchBraces returns the index just past the brace block opening at i,
// tracking nesting and single-quoted strings inside the expression.
func matchBraces(s string, i int) (int, error) {
	depth := 0
	j := i
	for j < len(s) {
		switch s[j] {
		case '\'':
			j = skipQuoted(s, j)
			continue
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j + 1, nil
			}
		}
		j++
	}
	return 0, fmt.Errorf("unterminated expression placeholder at offset %d", i)
}

func isNameByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
