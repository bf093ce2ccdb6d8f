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

// Package types holds the value types shared across querykit: declared
// queries, sort specifications, and the query-enhancer contract.
package types

// DeclaredQuery is an immutable query string together with the dialect it
// is written in. It is created once, when a query is registered for
// analysis, and never mutated.
type DeclaredQuery struct {
	query  string
	native bool
}

// NewJpqlQuery declares an object-query-language (JPQL) query.
func NewJpqlQuery(query string) DeclaredQuery {
	return DeclaredQuery{query: query}
}

// NewNativeQuery declares a native SQL query.
func NewNativeQuery(query string) DeclaredQuery {
	return DeclaredQuery{query: query, native: true}
}

// Query returns the raw query text.
func (d DeclaredQuery) Query() string {
	return d.query
}

// IsNative reports whether the query is native SQL rather than JPQL.
func (d DeclaredQuery) IsNative() bool {
	return d.native
}

// QueryEnhancer derives rewritten queries and structural facts from one
// declared query.
//
// The two rewriting operations fail loudly when the query cannot be
// parsed: the caller asked for a transformation that cannot be honored.
// The three introspective operations are best-effort and degrade to an
// empty answer on a parse failure instead of propagating it.
type QueryEnhancer interface {
	// Query returns the declared query this enhancer analyzes.
	Query() DeclaredQuery
	// RenderSortedQuery returns the query with the sort specification
	// applied to its outermost statement.
	RenderSortedQuery(sort Sort) (string, error)
	// CreateCountQuery derives a row-count query. countProjection
	// overrides the counted expression when non-empty.
	CreateCountQuery(countProjection string) (string, error)
	// Projection returns the verbatim text of the top-level select list,
	// or "" when it cannot be determined.
	Projection() string
	// FindAlias returns the range variable of the primary FROM target, or
	// "" when none is known.
	FindAlias() string
	// HasConstructorExpression reports whether the select list is a
	// single constructor expression (a DTO projection).
	HasConstructorExpression() bool
}
