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

package querykit

import (
	"github.com/rulego/querykit/enhancer"
	"github.com/rulego/querykit/types"
)

// EnhancerFactory builds a QueryEnhancer for a declared query. The
// default factory dispatches on the query's declared dialect; embedders
// can install their own to wrap or replace the built-in analyzers.
type EnhancerFactory func(types.DeclaredQuery) types.QueryEnhancer

// QueryKit is the entry point for query analysis. A single instance is
// safe for concurrent use; each enhancer it hands out memoizes its own
// parse.
type QueryKit struct {
	factory EnhancerFactory
}

// New creates a QueryKit instance with the given options.
//
// Example:
//
//	qk := querykit.New(querykit.WithDiscardLog())
//	q := qk.ForQuery(types.NewJpqlQuery("SELECT e FROM Employee e"))
//	sorted, err := q.RenderSortedQuery(types.By("name"))
func New(opts ...Option) *QueryKit {
	k := &QueryKit{factory: defaultFactory}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

func defaultFactory(declared types.DeclaredQuery) types.QueryEnhancer {
	if declared.IsNative() {
		return enhancer.NewSQL(declared)
	}
	return enhancer.NewJPQL(declared)
}

// ForQuery returns the enhancer for a declared query. Parsing is
// deferred until the first operation that needs the parse; a query that
// never gets rewritten is never parsed.
func (k *QueryKit) ForQuery(declared types.DeclaredQuery) types.QueryEnhancer {
	return k.factory(declared)
}

// ForQuery is the package-level convenience form of QueryKit.ForQuery.
func ForQuery(declared types.DeclaredQuery, opts ...Option) types.QueryEnhancer {
	return New(opts...).ForQuery(declared)
}
