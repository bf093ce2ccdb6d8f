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
	"github.com/rulego/querykit/parser"
	"github.com/rulego/querykit/types"
)

// JPQL analyzes and rewrites JPQL queries. Unqualified sort properties
// are qualified with the root alias, and count derivation may count the
// alias or a single path projection directly.
type JPQL struct {
	declared types.DeclaredQuery
	parse    parseFunc
}

// NewJPQL returns an enhancer for the given JPQL query. The query text is
// not parsed until the first operation needs it.
func NewJPQL(declared types.DeclaredQuery) *JPQL {
	return &JPQL{
		declared: declared,
		parse:    newParseFunc(declared.Query(), parser.JPQL),
	}
}

func (j *JPQL) Query() types.DeclaredQuery {
	return j.declared
}

// RenderSortedQuery returns the query with the sort applied. Bare
// property names are qualified with the root alias so they resolve
// against the query root rather than a join.
func (j *JPQL) RenderSortedQuery(sort types.Sort) (string, error) {
	stmt, err := j.parse()
	if err != nil {
		return "", invalid(j.declared, err)
	}
	return applySorting(stmt, sort, true)
}

// CreateCountQuery derives the count form of the query. The count
// selector is, in order of preference: the explicit countProjection, the
// single-path projection for DISTINCT queries, the root alias, or "*".
// DISTINCT on the source query always carries into the count.
func (j *JPQL) CreateCountQuery(countProjection string) (string, error) {
	stmt, err := j.parse()
	if err != nil {
		return "", invalid(j.declared, err)
	}
	distinct := stmt.Primary.Distinct
	selector := countProjection
	if selector == "" {
		if distinct {
			selector = simplePathProjection(stmt)
		}
		if selector == "" {
			selector = stmt.PrimaryAlias()
		}
		if selector == "" {
			selector = "*"
		}
	}
	return countQuery(stmt, selector, distinct), nil
}

// Projection returns the verbatim select list, or "" when the query does
// not parse.
func (j *JPQL) Projection() string {
	stmt, err := j.parse()
	if err != nil {
		return ""
	}
	return projection(stmt)
}

// FindAlias returns the root entity alias, or "" when there is none or
// the query does not parse.
func (j *JPQL) FindAlias() string {
	stmt, err := j.parse()
	if err != nil {
		return ""
	}
	return stmt.PrimaryAlias()
}

// HasConstructorExpression reports whether the select list is a single
// "new com.example.Dto(...)" expression.
func (j *JPQL) HasConstructorExpression() bool {
	stmt, err := j.parse()
	if err != nil {
		return false
	}
	return stmt.Primary.Constructor
}
