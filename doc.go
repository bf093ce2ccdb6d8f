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

/*
Package querykit analyzes and rewrites declared JPQL and native SQL
queries. It parses a query once, lazily, into a token stream with clause
structure, then derives new query text from it: sort clauses spliced in,
count queries for pagination, and structural introspections such as the
select-list projection, the root alias, and constructor-expression
detection.

Rewrites are token splices over the original text. Everything the
rewrite does not touch comes back exactly as written, up to whitespace
normalization: comments are dropped and runs of whitespace collapse to a
single space, but identifier case, quoting, literals, and parameter
markers are preserved byte for byte.

# Getting started

	package main

	import (
		"fmt"

		"github.com/rulego/querykit"
		"github.com/rulego/querykit/types"
	)

	func main() {
		q := querykit.ForQuery(types.NewJpqlQuery(
			"SELECT e FROM Employee e WHERE e.active = true"))

		sorted, err := q.RenderSortedQuery(types.By("lastName", "firstName"))
		if err != nil {
			panic(err)
		}
		fmt.Println(sorted)
		// SELECT e FROM Employee e WHERE e.active = true order by e.lastName asc, e.firstName asc

		count, err := q.CreateCountQuery("")
		if err != nil {
			panic(err)
		}
		fmt.Println(count)
		// select count(e) FROM Employee e WHERE e.active = true
	}

Native queries go through types.NewNativeQuery and get SQL semantics:
LIMIT/OFFSET/FETCH tails are recognized and stripped from count queries,
set operations are counted through a derived table, and sort properties
are emitted as written instead of being alias-qualified.

# Error policy

Operations that produce query text to execute, RenderSortedQuery and
CreateCountQuery, fail loudly with an *enhancer.InvalidQueryError when
the underlying query does not parse. Introspections degrade silently:
Projection and FindAlias return "", HasConstructorExpression returns
false, so scanning a repository of declared queries never aborts on one
bad declaration. The parse runs at most once per query; every operation
afterwards observes the same result or the same error instance.

# Parameter binding

The binding subpackage extracts :name, ?N, and bare ? bind markers, and
rewrites inline expression placeholders (:#{...} and ?#{...}) into
synthetic named parameters whose values are computed with expr-lang
against a caller-supplied environment.
*/
package querykit
