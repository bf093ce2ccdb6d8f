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

// Package enhancer implements the per-dialect query analyzers: sort
// injection, count-query derivation, and the projection/alias/constructor
// introspections, all as token-stream splices over a lazily parsed
// statement.
package enhancer

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/rulego/querykit/logger"
	"github.com/rulego/querykit/parser"
	"github.com/rulego/querykit/token"
	"github.com/rulego/querykit/types"
)

// InvalidQueryError is the argument error raised when a rewriting
// operation is requested for a query that does not parse. It wraps the
// cached parse failure.
type InvalidQueryError struct {
	Query string
	Err   error
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("cannot rewrite unparseable query: %v", e.Err)
}

func (e *InvalidQueryError) Unwrap() error {
	return e.Err
}

// InvalidSortError is raised when a sort property does not look like a
// property path or function call and so cannot safely be spliced into a
// query.
type InvalidSortError struct {
	Property string
}

func (e *InvalidSortError) Error() string {
	return fmt.Sprintf("unsafe sort expression %q", e.Property)
}

// parseFunc is the memoized parse of one declared query. The first call
// parses; every later call, from any goroutine, observes the identical
// statement or the identical error instance.
type parseFunc func() (*parser.Statement, error)

func newParseFunc(query string, dialect parser.Dialect) parseFunc {
	return sync.OnceValues(func() (*parser.Statement, error) {
		stmt, err := parser.Parse(query, dialect)
		if err != nil {
			logger.Debug("querykit: %s parse failed: %v", dialect, err)
			return nil, err
		}
		logger.Debug("querykit: parsed %s query with %d tokens", dialect, len(stmt.Tokens))
		return stmt, nil
	})
}

var (
	propertyPathPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*(\.[A-Za-z_][A-Za-z0-9_$]*)*$`)
	functionSortPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*\([A-Za-z0-9_$.*,'\s]*\)$`)
)

// safeSortExpression accepts property paths ("name", "address.city") and
// simple function calls ("LENGTH(name)"). Anything else is rejected so a
// sort specification can never smuggle arbitrary query text.
func safeSortExpression(property string) bool {
	return propertyPathPattern.MatchString(property) || functionSortPattern.MatchString(property)
}

// sortTokens renders a sort specification as order-by item tokens,
// qualifying bare property paths with the alias when requested.
func sortTokens(sort types.Sort, alias string, qualify bool) (token.Stream, error) {
	var out token.Stream
	for i, o := range sort.Orders() {
		if !safeSortExpression(o.Property) {
			return nil, &InvalidSortError{Property: o.Property}
		}
		property := o.Property
		if qualify && alias != "" && !strings.ContainsAny(property, ".(") {
			property = alias + "." + property
		}
		if i > 0 {
			out[len(out)-1].SpaceAfter = false
			out = append(out, token.New(","))
		}
		out = append(out, token.New(property), token.New(o.Direction.String()))
	}
	return out, nil
}

// applySorting splices the sort into the statement-level ORDER BY:
// appended to an existing clause, or injected as a new clause before the
// pagination tail (or at the very end). Set-operation statements get the
// clause after the last branch; individual branches are never touched.
func applySorting(stmt *parser.Statement, sort types.Sort, qualify bool) (string, error) {
	if sort.IsEmpty() {
		return stmt.Tokens.Render(), nil
	}
	items, err := sortTokens(sort, stmt.PrimaryAlias(), qualify)
	if err != nil {
		return "", err
	}

	toks := stmt.Tokens
	if !stmt.OrderBy.IsZero() {
		at := stmt.OrderBy.End
		glued := toks.Slice(0, len(toks))
		glued[at-1].SpaceAfter = false
		items = append(token.Stream{token.New(",")}, items...)
		return glued.Insert(at, items...).Render(), nil
	}

	at := len(toks)
	if !stmt.Pagination.IsZero() {
		at = stmt.Pagination.Start
	}
	items = append(token.Stream{token.New("order"), token.New("by")}, items...)
	return toks.Spaced(at).Insert(at, items...).Render(), nil
}

// countSelect builds the "select count(...)" head tokens.
func countSelect(selector string, distinct bool) token.Stream {
	head := token.Stream{token.New("select"), token.NewNoSpace("count(")}
	if distinct {
		head = append(head, token.New("distinct"))
	}
	return append(head, token.NewNoSpace(selector), token.New(")"))
}

// countQuery synthesizes the count derivation for statements whose select
// list can simply be replaced: the head is swapped for a count projection
// and the FROM..HAVING portion is kept verbatim, dropping ORDER BY and
// pagination.
func countQuery(stmt *parser.Statement, selector string, distinct bool) string {
	var out token.Stream
	if !stmt.With.IsZero() {
		out = append(out, stmt.Tokens.Slice(stmt.With.Start, stmt.With.End).Spaced(stmt.With.End-stmt.With.Start)...)
	}
	out = append(out, countSelect(selector, distinct)...)
	if stmt.Primary.FromIdx >= 0 {
		out = append(out, stmt.Tokens.Slice(stmt.Primary.FromIdx, stmt.BodyEnd())...)
	}
	return out.Render()
}

// wrappedCountQuery counts rows by wrapping the original statement (sans
// ORDER BY and pagination) in a derived table. Used when the select list
// cannot be replaced without changing cardinality: set-operation
// statements and DISTINCT projections with no single countable column.
func wrappedCountQuery(stmt *parser.Statement) string {
	start := 0
	var out token.Stream
	if !stmt.With.IsZero() {
		out = append(out, stmt.Tokens.Slice(stmt.With.Start, stmt.With.End).Spaced(stmt.With.End-stmt.With.Start)...)
		start = stmt.With.End
	}
	out = append(out,
		token.New("select"),
		token.NewNoSpace("count("),
		token.NewNoSpace("*"),
		token.New(")"),
		token.New("from"),
		token.NewNoSpace("("),
	)
	inner := stmt.Tokens.Slice(start, stmt.BodyEnd())
	inner[len(inner)-1].SpaceAfter = false
	out = append(out, inner...)
	out = append(out, token.New(")"), token.New("count_source"))
	return out.Render()
}

// simplePathProjection returns the projection as a property path when the
// select list is exactly one dot-qualified identifier chain, or "".
func simplePathProjection(stmt *parser.Statement) string {
	items := stmt.Primary.Items
	if len(items) != 1 {
		return ""
	}
	span := items[0].Span
	var b strings.Builder
	for i := span.Start; i < span.End; i++ {
		t := stmt.Tokens[i]
		switch {
		case t.Type == token.IDENT, t.Type == token.DOT:
			b.WriteString(t.Literal)
		default:
			return ""
		}
	}
	path := b.String()
	if !propertyPathPattern.MatchString(path) {
		return ""
	}
	return path
}

// projection renders the verbatim top-level select list.
func projection(stmt *parser.Statement) string {
	span := stmt.ProjectionSpan()
	if span.IsZero() {
		return ""
	}
	return stmt.Tokens.Slice(span.Start, span.End).Render()
}

func invalid(declared types.DeclaredQuery, err error) error {
	return &InvalidQueryError{Query: declared.Query(), Err: err}
}
