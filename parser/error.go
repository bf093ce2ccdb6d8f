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

package parser

import (
	"fmt"
	"strings"
)

// ParseError describes a grammar failure. It always carries the full
// original query text for diagnostics, never a truncated fragment. Exactly
// one ParseError is produced per failed parse; parsing aborts at the first
// syntax error.
type ParseError struct {
	Line    int
	Column  int
	Message string
	Query   string
	Cause   error
}

// Error renders the failure with its source location and the offending
// query.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("bad query grammar")
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d, column %d", e.Line, e.Column)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	fmt.Fprintf(&b, " [%s]", e.Query)
	return b.String()
}

// Unwrap exposes the underlying cause, if any.
func (e *ParseError) Unwrap() error {
	return e.Cause
}
