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

package enhancer

import (
	"github.com/spf13/cast"

	"github.com/rulego/querykit/parser"
	"github.com/rulego/querykit/token"
	"github.com/rulego/querykit/types"
)

// SQL analyzes and rewrites native SQL queries. Sort properties are
// spliced in as written, count derivation strips LIMIT/OFFSET/FETCH
// tails, and statements that cannot be reduced to a simple count head
// (set operations, DISTINCT without a single countable column) are
// wrapped in a derived table instead.
type SQL struct {
	declared types.DeclaredQuery
	parse    parseFunc
}

// NewSQL returns an enhancer for the given native query. The query text
// is not parsed until the first operation needs it.
func NewSQL(declared types.DeclaredQuery) *SQL {
	return &SQL{
		declared: declared,
		parse:    newParseFunc(declared.Query(), parser.SQL),
	}
}

func (s *SQL) Query() types.DeclaredQuery {
	return s.declared
}

// RenderSortedQuery returns the query with the sort applied after the
// statement body and before any pagination tail. Properties are emitted
// as written; native column names are not alias-qualified.
func (s *SQL) RenderSortedQuery(sort types.Sort) (string, error) {
	stmt, err := s.parse()
	if err != nil {
		return "", invalid(s.declared, err)
	}
	return applySorting(stmt, sort, false)
}

// CreateCountQuery derives the count form of the query. Set-operation
// statements always count a wrapped derived table. Otherwise the selector
// is the explicit countProjection, the single-path projection for
// DISTINCT queries, or "*"; a DISTINCT query with no usable column is
// wrapped as well.
func (s *SQL) CreateCountQuery(countProjection string) (string, error) {
	stmt, err := s.parse()
	if err != nil {
		return "", invalid(s.declared, err)
	}
	if len(stmt.SetOps) > 0 {
		return wrappedCountQuery(stmt), nil
	}
	distinct := stmt.Primary.Distinct
	selector := countProjection
	if selector == "" && distinct {
		selector = simplePathProjection(stmt)
		if selector == "" {
			return wrappedCountQuery(stmt), nil
		}
	}
	if selector == "" {
		selector = "*"
	}
	return countQuery(stmt, selector, distinct), nil
}

// Projection returns the verbatim select list, or "" when the query does
// not parse.
func (s *SQL) Projection() string {
	stmt, err := s.parse()
	if err != nil {
		return ""
	}
	return projection(stmt)
}

// FindAlias returns the alias of the first FROM table, or "" when there
// is none or the query does not parse.
func (s *SQL) FindAlias() string {
	stmt, err := s.parse()
	if err != nil {
		return ""
	}
	return stmt.PrimaryAlias()
}

// HasConstructorExpression is always false for native SQL; constructor
// expressions are a JPQL-only construct.
func (s *SQL) HasConstructorExpression() bool {
	return false
}

// Limit returns the declared row cap from a trailing LIMIT or FETCH
// FIRST/NEXT clause. Like the other introspections it degrades silently:
// no pagination, a non-literal count, or an unparseable query all report
// (0, false).
func (s *SQL) Limit() (int64, bool) {
	stmt, err := s.parse()
	if err != nil || stmt.Pagination.IsZero() {
		return 0, false
	}
	toks := stmt.Tokens
	for i := stmt.Pagination.Start; i < stmt.Pagination.End; i++ {
		switch toks[i].Type {
		case token.LIMIT, token.FIRST, token.NEXT:
			if i+1 < stmt.Pagination.End && toks[i+1].Type == token.NUMBER {
				n, err := cast.ToInt64E(toks[i+1].Literal)
				if err != nil {
					return 0, false
				}
				return n, true
			}
		case token.OFFSET:
			// Skip the offset operand so its count is not mistaken for
			// a row cap.
			i++
		}
	}
	return 0, false
}
