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

// Package parser turns a query string into a Statement: the original token
// stream plus the clause structure of the outermost SELECT as token-index
// spans. Rewriters splice the token stream using those spans; the parse
// tree itself is never mutated.
//
// The parser is clause-structured rather than grammar-complete: SELECT,
// FROM, join, ORDER BY, and pagination clauses are parsed strictly, while
// expression positions (select items, WHERE, GROUP BY, HAVING, ON) are
// consumed tolerantly with parenthesis tracking. Subqueries are always
// parenthesized, so top-level clause detection only ever looks at
// parenthesis level zero and nested statements cannot be mistaken for the
// primary one.
package parser

import (
	"fmt"

	"github.com/rulego/querykit/lexer"
	"github.com/rulego/querykit/token"
)

// Dialect selects the grammar variant a declared query is written in.
type Dialect int

const (
	// JPQL covers the object-query language: range variables are expected
	// in the FROM clause, constructor expressions and typed numeric literal
	// suffixes are recognized, and set operations and pagination clauses
	// are rejected.
	JPQL Dialect = iota
	// SQL covers generic native SQL: quoted identifiers, UNION/INTERSECT/
	// EXCEPT, leading WITH clauses, derived tables, and trailing
	// LIMIT/OFFSET/FETCH clauses.
	SQL
)

func (d Dialect) String() string {
	if d == SQL {
		return "SQL"
	}
	return "JPQL"
}

// Span is a half-open token-index range [Start, End) into a Statement's
// token stream. The zero Span means "absent": no real clause can start at
// index 0, which is always the SELECT (or WITH) keyword.
type Span struct {
	Start int
	End   int
}

// IsZero reports whether the span denotes an absent clause.
func (s Span) IsZero() bool {
	return s.Start == 0 && s.End == 0
}

// Statement is the parse result for one declared query.
type Statement struct {
	Dialect Dialect
	Query   string
	Tokens  token.Stream

	// With covers a leading common-table-expression clause (SQL only).
	With Span
	// Primary is the outermost SELECT (the first branch when the statement
	// is a set operation).
	Primary *SelectQuery
	// SetOps holds UNION/INTERSECT/EXCEPT branches in source order.
	SetOps []SetOperation
	// OrderBy covers the statement-level ORDER BY clause.
	OrderBy Span
	// Pagination covers the trailing LIMIT/OFFSET/FETCH clauses (SQL only).
	Pagination Span
}

// SelectQuery captures the clause layout of one SELECT body.
type SelectQuery struct {
	Start, End int
	SelectIdx  int
	Distinct   bool
	// ItemsStart is the index of the first select-list token, after
	// SELECT and an optional DISTINCT/ALL.
	ItemsStart int
	Items      []SelectItem
	// Constructor is set when the select list is a single
	// "new fully.qualified.Type(...)" expression (JPQL only).
	Constructor bool
	FromIdx     int // -1 when the statement has no FROM clause
	Tables      []TableRef
	WhereIdx    int
	GroupByIdx  int
	HavingIdx   int
}

// SelectItem is one top-level entry of the select list.
type SelectItem struct {
	Span Span
}

// TableRef is one FROM-clause target with its bound range variable, if
// any. For derived tables Target is empty.
type TableRef struct {
	Target string
	Alias  string
	Joined bool
}

// SetOperation is one UNION/INTERSECT/EXCEPT branch.
type SetOperation struct {
	OpIdx int
	All   bool
	Query *SelectQuery
}

// PrimaryAlias returns the range variable of the first top-level FROM
// target, or "" when the target carries no alias. An absent alias is not
// an error, native queries routinely omit it.
func (s *Statement) PrimaryAlias() string {
	if s.Primary == nil || len(s.Primary.Tables) == 0 {
		return ""
	}
	return s.Primary.Tables[0].Alias
}

// ProjectionSpan returns the token range of the top-level select list,
// between SELECT [DISTINCT] and FROM.
func (s *Statement) ProjectionSpan() Span {
	q := s.Primary
	if len(q.Items) == 0 {
		return Span{}
	}
	return Span{q.ItemsStart, q.Items[len(q.Items)-1].Span.End}
}

// BodyEnd returns the token index where the statement-level ORDER BY or
// pagination tail begins, i.e. the exclusive end of the FROM/WHERE/GROUP
// BY/HAVING portion (including all set-operation branches).
func (s *Statement) BodyEnd() int {
	if !s.OrderBy.IsZero() {
		return s.OrderBy.Start
	}
	if !s.Pagination.IsZero() {
		return s.Pagination.Start
	}
	return len(s.Tokens)
}

// Parse tokenizes and parses query according to the dialect, returning the
// statement structure or a *ParseError on the first syntax failure.
func Parse(query string, dialect Dialect) (*Statement, error) {
	var opts []lexer.Option
	if dialect == JPQL {
		opts = append(opts, lexer.WithTypedNumericSuffixes())
	} else {
		opts = append(opts, lexer.WithQuotedIdentifiers(), lexer.WithDollarPlaceholders())
	}
	p := &parser{
		toks:    lexer.New(query, opts...).Tokenize(),
		dialect: dialect,
		query:   query,
	}
	return p.parseStatement()
}

type parser struct {
	toks    token.Stream
	pos     int
	dialect Dialect
	query   string
}

func (p *parser) done() bool {
	return p.pos >= len(p.toks)
}

func (p *parser) at(t token.Type) bool {
	return !p.done() && p.toks[p.pos].Type == t
}

func (p *parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *parser) parseStatement() (*Statement, error) {
	stmt := &Statement{Dialect: p.dialect, Query: p.query, Tokens: p.toks}
	if len(p.toks) == 0 {
		return nil, &ParseError{Line: 1, Column: 1, Message: "empty query", Query: p.query}
	}

	if p.dialect == SQL && p.at(token.WITH) {
		start := p.pos
		if err := p.parseWithClause(); err != nil {
			return nil, err
		}
		stmt.With = Span{start, p.pos}
	}

	if !p.at(token.SELECT) {
		return nil, p.errorHere("expected SELECT")
	}
	primary, err := p.parseSelectBody()
	if err != nil {
		return nil, err
	}
	stmt.Primary = primary

	for p.dialect == SQL && (p.at(token.UNION) || p.at(token.INTERSECT) || p.at(token.EXCEPT)) {
		op := SetOperation{OpIdx: p.pos}
		p.pos++
		if p.at(token.ALL) {
			op.All = true
			p.pos++
		} else if p.at(token.DISTINCT) {
			p.pos++
		}
		if !p.at(token.SELECT) {
			return nil, p.errorHere("set operation requires a SELECT branch")
		}
		branch, err := p.parseSelectBody()
		if err != nil {
			return nil, err
		}
		op.Query = branch
		stmt.SetOps = append(stmt.SetOps, op)
	}

	if p.at(token.ORDER) {
		span, err := p.parseOrderBy()
		if err != nil {
			return nil, err
		}
		stmt.OrderBy = span
	}

	if p.dialect == SQL && (p.at(token.LIMIT) || p.at(token.OFFSET) || p.at(token.FETCH)) {
		span, err := p.parsePagination()
		if err != nil {
			return nil, err
		}
		stmt.Pagination = span
	}

	// Trailing semicolons are syntax, not query content; drop them from
	// the stream so rewrites never splice around them.
	if p.at(token.SEMICOLON) {
		end := p.pos
		for p.at(token.SEMICOLON) {
			p.pos++
		}
		if !p.done() {
			return nil, p.errorHere("unexpected %q after end of statement", p.cur().Literal)
		}
		stmt.Tokens = p.toks[:end]
		return stmt, nil
	}
	if !p.done() {
		return nil, p.errorHere("unexpected %q after end of statement", p.cur().Literal)
	}
	return stmt, nil
}

func (p *parser) parseWithClause() error {
	p.pos++ // WITH
	if p.at(token.RECURSIVE) {
		p.pos++
	}
	for {
		if !p.atName() {
			return p.errorHere("expected common table expression name")
		}
		p.pos++
		if p.at(token.LPAREN) {
			p.pos++
			for {
				if !p.atName() {
					return p.errorHere("expected column name in common table expression")
				}
				p.pos++
				if p.at(token.COMMA) {
					p.pos++
					continue
				}
				break
			}
			if !p.at(token.RPAREN) {
				return p.errorHere("expected ) after common table expression columns")
			}
			p.pos++
		}
		if !p.at(token.AS) {
			return p.errorHere("expected AS in common table expression")
		}
		p.pos++
		if !p.at(token.LPAREN) {
			return p.errorHere("expected ( after AS in common table expression")
		}
		p.pos++
		if err := p.parseNestedSelect(); err != nil {
			return err
		}
		if !p.at(token.RPAREN) {
			return p.errorHere("expected ) to close common table expression")
		}
		p.pos++
		if p.at(token.COMMA) {
			p.pos++
			continue
		}
		return nil
	}
}

// parseNestedSelect parses a parenthesized SELECT (with set-operation
// branches, an ORDER BY, and pagination of its own) up to, but not
// including, the closing parenthesis. Nested structure is validated but
// not recorded: the rewrite operations work on the outermost statement
// only.
func (p *parser) parseNestedSelect() error {
	if !p.at(token.SELECT) {
		return p.errorHere("expected SELECT")
	}
	if _, err := p.parseSelectBody(); err != nil {
		return err
	}
	for p.at(token.UNION) || p.at(token.INTERSECT) || p.at(token.EXCEPT) {
		p.pos++
		if p.at(token.ALL) || p.at(token.DISTINCT) {
			p.pos++
		}
		if !p.at(token.SELECT) {
			return p.errorHere("set operation requires a SELECT branch")
		}
		if _, err := p.parseSelectBody(); err != nil {
			return err
		}
	}
	if p.at(token.ORDER) {
		if _, err := p.parseOrderBy(); err != nil {
			return err
		}
	}
	if p.dialect == SQL && (p.at(token.LIMIT) || p.at(token.OFFSET) || p.at(token.FETCH)) {
		if _, err := p.parsePagination(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseSelectBody() (*SelectQuery, error) {
	q := &SelectQuery{
		Start:      p.pos,
		SelectIdx:  p.pos,
		FromIdx:    -1,
		WhereIdx:   -1,
		GroupByIdx: -1,
		HavingIdx:  -1,
	}
	p.pos++ // SELECT
	if p.at(token.DISTINCT) {
		q.Distinct = true
		p.pos++
	} else if p.at(token.ALL) {
		p.pos++
	}
	q.ItemsStart = p.pos

	stops := p.selectItemStops()
	for {
		itemStart := p.pos
		if err := p.consumeExpr(stops); err != nil {
			return nil, err
		}
		if p.pos == itemStart {
			return nil, p.errorHere("expected select expression")
		}
		span := Span{itemStart, p.pos}
		if p.at(token.AS) {
			p.pos++
			if !p.atAliasName() {
				return nil, p.errorHere("expected alias after AS")
			}
			p.pos++
			span.End = p.pos
		}
		q.Items = append(q.Items, SelectItem{Span: span})
		if p.at(token.COMMA) {
			p.pos++
			continue
		}
		break
	}
	if p.dialect == JPQL && len(q.Items) == 1 {
		q.Constructor = p.isConstructorItem(q.Items[0].Span)
	}

	if p.at(token.FROM) {
		q.FromIdx = p.pos
		p.pos++
		ref, err := p.parseTableRef(false)
		if err != nil {
			return nil, err
		}
		q.Tables = append(q.Tables, ref)
	loop:
		for {
			switch {
			case p.at(token.COMMA):
				p.pos++
				ref, err := p.parseTableRef(false)
				if err != nil {
					return nil, err
				}
				q.Tables = append(q.Tables, ref)
			case p.atJoinStart():
				refs, err := p.parseJoin()
				if err != nil {
					return nil, err
				}
				q.Tables = append(q.Tables, refs...)
			default:
				break loop
			}
		}
	} else if p.dialect == JPQL {
		return nil, p.errorHere("expected FROM clause")
	}

	clauseStops := p.clauseStops()
	if p.at(token.WHERE) {
		q.WhereIdx = p.pos
		p.pos++
		if err := p.consumeExprNonEmpty(clauseStops, "WHERE"); err != nil {
			return nil, err
		}
	}
	if p.at(token.GROUP) {
		q.GroupByIdx = p.pos
		p.pos++
		if !p.at(token.BY) {
			return nil, p.errorHere("expected BY after GROUP")
		}
		p.pos++
		if err := p.consumeExprNonEmpty(clauseStops, "GROUP BY"); err != nil {
			return nil, err
		}
	}
	if p.at(token.HAVING) {
		q.HavingIdx = p.pos
		p.pos++
		if err := p.consumeExprNonEmpty(clauseStops, "HAVING"); err != nil {
			return nil, err
		}
	}
	q.End = p.pos
	return q, nil
}

func (p *parser) atJoinStart() bool {
	if p.done() {
		return false
	}
	switch p.cur().Type {
	case token.JOIN, token.INNER, token.LEFT, token.RIGHT, token.FULL, token.CROSS:
		return true
	}
	return false
}

func (p *parser) parseJoin() ([]TableRef, error) {
	switch p.cur().Type {
	case token.LEFT, token.RIGHT, token.FULL:
		p.pos++
		if p.at(token.OUTER) {
			p.pos++
		}
		if !p.at(token.JOIN) {
			return nil, p.errorHere("expected JOIN")
		}
	case token.INNER, token.CROSS:
		p.pos++
		if !p.at(token.JOIN) {
			return nil, p.errorHere("expected JOIN")
		}
	}
	p.pos++ // JOIN
	if p.dialect == JPQL && p.at(token.FETCH) {
		p.pos++
	}
	ref, err := p.parseTableRef(true)
	if err != nil {
		return nil, err
	}
	if p.at(token.ON) {
		p.pos++
		if err := p.consumeExprNonEmpty(p.joinConditionStops(), "ON"); err != nil {
			return nil, err
		}
	}
	return []TableRef{ref}, nil
}

func (p *parser) parseTableRef(joined bool) (TableRef, error) {
	if p.at(token.LPAREN) && p.dialect == SQL {
		p.pos++
		if err := p.parseNestedSelect(); err != nil {
			return TableRef{}, err
		}
		if !p.at(token.RPAREN) {
			return TableRef{}, p.errorHere("expected ) to close derived table")
		}
		p.pos++
		return TableRef{Alias: p.parseOptionalAlias(), Joined: joined}, nil
	}
	if !p.atName() {
		return TableRef{}, p.errorHere("expected table or entity name")
	}
	target := p.cur().Literal
	p.pos++
	for p.at(token.DOT) {
		p.pos++
		if !p.atName() {
			return TableRef{}, p.errorHere("expected identifier after .")
		}
		target += "." + p.cur().Literal
		p.pos++
	}
	return TableRef{Target: target, Alias: p.parseOptionalAlias(), Joined: joined}, nil
}

// atName reports whether the current token can serve as a table or entity
// name. Reserved words are legal here: entities named Order, Group or Row
// are common, and no clause can begin where a name is required.
func (p *parser) atName() bool {
	if p.done() {
		return false
	}
	return isNameType(p.cur().Type)
}

func isNameType(typ token.Type) bool {
	return typ == token.IDENT || token.Keyword(typ)
}

// clauseHeads are keywords that open the clause following a table
// reference and therefore can never be a bare alias.
var clauseHeads = map[token.Type]bool{
	token.SELECT: true, token.FROM: true, token.WHERE: true,
	token.GROUP: true, token.HAVING: true, token.ORDER: true,
	token.UNION: true, token.INTERSECT: true, token.EXCEPT: true,
	token.LIMIT: true, token.OFFSET: true, token.FETCH: true,
	token.JOIN: true, token.INNER: true, token.LEFT: true,
	token.RIGHT: true, token.FULL: true, token.CROSS: true,
	token.OUTER: true, token.ON: true, token.AS: true,
}

func (p *parser) atAliasName() bool {
	if p.done() {
		return false
	}
	typ := p.cur().Type
	return isNameType(typ) && !clauseHeads[typ]
}

func (p *parser) parseOptionalAlias() string {
	if p.at(token.AS) {
		p.pos++
		if !p.atAliasName() {
			return ""
		}
		alias := p.cur().Literal
		p.pos++
		return alias
	}
	if p.atAliasName() {
		alias := p.cur().Literal
		p.pos++
		return alias
	}
	return ""
}

func (p *parser) parseOrderBy() (Span, error) {
	start := p.pos
	p.pos++ // ORDER
	if !p.at(token.BY) {
		return Span{}, p.errorHere("expected BY after ORDER")
	}
	p.pos++
	stops := p.orderItemStops()
	for {
		if err := p.consumeExprNonEmpty(stops, "ORDER BY"); err != nil {
			return Span{}, err
		}
		if p.at(token.ASC) || p.at(token.DESC) {
			p.pos++
		}
		if !p.done() && p.cur().IsKeyword("nulls") {
			p.pos++
			if p.at(token.FIRST) || (!p.done() && p.cur().IsKeyword("last")) {
				p.pos++
			} else {
				return Span{}, p.errorHere("expected FIRST or LAST after NULLS")
			}
		}
		if p.at(token.COMMA) {
			p.pos++
			continue
		}
		break
	}
	return Span{start, p.pos}, nil
}

func (p *parser) parsePagination() (Span, error) {
	start := p.pos
	stops := map[token.Type]bool{
		token.LIMIT: true, token.OFFSET: true, token.FETCH: true,
		token.ROW: true, token.ROWS: true, token.ONLY: true,
		token.SEMICOLON: true,
	}
	for !p.done() {
		switch p.cur().Type {
		case token.LIMIT:
			p.pos++
			if err := p.consumeExprNonEmpty(stops, "LIMIT"); err != nil {
				return Span{}, err
			}
		case token.OFFSET:
			p.pos++
			if err := p.consumeExprNonEmpty(stops, "OFFSET"); err != nil {
				return Span{}, err
			}
			if p.at(token.ROW) || p.at(token.ROWS) {
				p.pos++
			}
		case token.FETCH:
			p.pos++
			if !p.at(token.FIRST) && !p.at(token.NEXT) {
				return Span{}, p.errorHere("expected FIRST or NEXT after FETCH")
			}
			p.pos++
			if err := p.consumeExpr(stops); err != nil {
				return Span{}, err
			}
			if !p.at(token.ROW) && !p.at(token.ROWS) {
				return Span{}, p.errorHere("expected ROW or ROWS in FETCH clause")
			}
			p.pos++
			switch {
			case p.at(token.ONLY):
				p.pos++
			case p.at(token.WITH):
				p.pos++
				if p.done() || !p.cur().IsKeyword("ties") {
					return Span{}, p.errorHere("expected TIES after WITH")
				}
				p.pos++
			default:
				return Span{}, p.errorHere("expected ONLY or WITH TIES in FETCH clause")
			}
		default:
			return Span{start, p.pos}, nil
		}
	}
	return Span{start, p.pos}, nil
}

// isConstructorItem reports whether the select-list item at span is a
// constructor expression: NEW, a dot-qualified type name, and an argument
// list closing at the span end.
func (p *parser) isConstructorItem(span Span) bool {
	i := span.Start
	if p.toks[i].Type != token.NEW {
		return false
	}
	i++
	if i >= span.End || !isNameType(p.toks[i].Type) {
		return false
	}
	i++
	for i < span.End && p.toks[i].Type == token.DOT {
		i++
		if i >= span.End || !isNameType(p.toks[i].Type) {
			return false
		}
		i++
	}
	if i >= span.End || p.toks[i].Type != token.LPAREN {
		return false
	}
	return p.toks[span.End-1].Type == token.RPAREN
}

// consumeExpr advances tolerantly over an expression position: any token
// is accepted, parentheses are tracked, and the walk stops at a stop token
// or an unmatched closing parenthesis at level zero. Reaching the end of
// input with open parentheses is the unbalanced-parenthesis syntax error.
func (p *parser) consumeExpr(stops map[token.Type]bool) error {
	level := 0
	for !p.done() {
		t := p.cur()
		switch {
		case t.Type == token.ILLEGAL:
			return p.errorIllegal(t)
		case t.Type == token.LPAREN:
			level++
			p.pos++
		case t.Type == token.RPAREN:
			if level == 0 {
				return nil
			}
			level--
			p.pos++
		case level == 0 && stops[t.Type] && p.stopsClauseHere(t.Type):
			return nil
		default:
			p.pos++
		}
	}
	if level > 0 {
		return p.errorAtEnd("unbalanced parentheses")
	}
	return nil
}

// stopsClauseHere reports whether a stop-set match really begins the next
// clause. ORDER and GROUP open a clause only when BY follows; otherwise
// the word is a name inside the expression, as in "o.order" or "e.group".
func (p *parser) stopsClauseHere(typ token.Type) bool {
	if typ != token.ORDER && typ != token.GROUP {
		return true
	}
	return p.pos+1 < len(p.toks) && p.toks[p.pos+1].Type == token.BY
}

func (p *parser) consumeExprNonEmpty(stops map[token.Type]bool, clause string) error {
	start := p.pos
	if err := p.consumeExpr(stops); err != nil {
		return err
	}
	if p.pos == start {
		return p.errorHere("expected expression after %s", clause)
	}
	return nil
}

// selectItemStops terminates a select-list item at the next clause
// boundary. AS is a stop so item aliases can be captured; the AS inside a
// parenthesized CAST never reaches level zero.
func (p *parser) selectItemStops() map[token.Type]bool {
	stops := map[token.Type]bool{
		token.COMMA: true, token.AS: true, token.FROM: true,
		token.WHERE: true, token.GROUP: true, token.HAVING: true,
		token.ORDER: true, token.SEMICOLON: true,
	}
	if p.dialect == SQL {
		stops[token.UNION] = true
		stops[token.INTERSECT] = true
		stops[token.EXCEPT] = true
		stops[token.LIMIT] = true
		stops[token.OFFSET] = true
		stops[token.FETCH] = true
	}
	return stops
}

func (p *parser) clauseStops() map[token.Type]bool {
	stops := map[token.Type]bool{
		token.FROM: true, token.WHERE: true, token.GROUP: true,
		token.HAVING: true, token.ORDER: true, token.SEMICOLON: true,
	}
	if p.dialect == SQL {
		stops[token.UNION] = true
		stops[token.INTERSECT] = true
		stops[token.EXCEPT] = true
		stops[token.LIMIT] = true
		stops[token.OFFSET] = true
		stops[token.FETCH] = true
	}
	return stops
}

func (p *parser) joinConditionStops() map[token.Type]bool {
	stops := p.clauseStops()
	stops[token.COMMA] = true
	stops[token.JOIN] = true
	stops[token.INNER] = true
	stops[token.LEFT] = true
	stops[token.RIGHT] = true
	stops[token.FULL] = true
	stops[token.CROSS] = true
	return stops
}

func (p *parser) orderItemStops() map[token.Type]bool {
	stops := map[token.Type]bool{
		token.COMMA: true, token.ASC: true, token.DESC: true,
		token.SEMICOLON: true,
	}
	if p.dialect == SQL {
		stops[token.UNION] = true
		stops[token.INTERSECT] = true
		stops[token.EXCEPT] = true
		stops[token.LIMIT] = true
		stops[token.OFFSET] = true
		stops[token.FETCH] = true
	}
	return stops
}

func (p *parser) errorHere(format string, args ...interface{}) error {
	if p.done() {
		return p.errorAtEnd(format, args...)
	}
	return p.errorAt(p.cur(), format, args...)
}

func (p *parser) errorAt(t token.Token, format string, args ...interface{}) error {
	return &ParseError{
		Line:    t.Line,
		Column:  t.Column,
		Message: fmt.Sprintf(format, args...),
		Query:   p.query,
	}
}

func (p *parser) errorAtEnd(format string, args ...interface{}) error {
	line, column := 1, 1
	if n := len(p.toks); n > 0 {
		line = p.toks[n-1].Line
		column = p.toks[n-1].Column + len(p.toks[n-1].Literal)
	}
	return &ParseError{
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(format, args...) + " at end of query",
		Query:   p.query,
	}
}

func (p *parser) errorIllegal(t token.Token) error {
	if t.Literal != "" && t.Literal[0] == '\'' {
		return p.errorAt(t, "unterminated string literal")
	}
	if len(t.Literal) > 1 && (t.Literal[0] == '"' || t.Literal[0] == '`') {
		return p.errorAt(t, "unterminated quoted identifier")
	}
	return p.errorAt(t, "unexpected input %q", t.Literal)
}
