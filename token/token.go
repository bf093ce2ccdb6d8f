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

// Package token defines the lexical token model shared by the query lexer,
// parser, and rewriters. A query is represented as an ordered Stream of
// tokens; rewrite operations splice the stream and render it back to text
// without re-parsing.
package token

import "strings"

// Type identifies the lexical class of a token.
type Type string

// Token is one lexical unit of a query. Literal holds the exact source
// text. SpaceAfter records whether whitespace followed the token in the
// source; rendering emits a single space after tokens with the flag set,
// which reproduces the original query up to whitespace normalization.
type Token struct {
	Type       Type
	Literal    string
	Line       int
	Column     int
	SpaceAfter bool
}

// Token types recognized by the lexer.
const (
	ILLEGAL Type = "ILLEGAL"

	IDENT  Type = "IDENT"
	NUMBER Type = "NUMBER"
	STRING Type = "STRING"
	PARAM  Type = "PARAM" // :name, ?1, $1 or bare ?

	COMMA     Type = ","
	DOT       Type = "."
	SEMICOLON Type = ";"
	LPAREN    Type = "("
	RPAREN    Type = ")"
	STAR      Type = "*"
	PLUS      Type = "+"
	MINUS     Type = "-"
	SLASH     Type = "/"
	PERCENT   Type = "%"
	CONCAT    Type = "||"
	DCOLON    Type = "::"
	EQ        Type = "="
	NEQ       Type = "NEQ"
	LT        Type = "<"
	LTE       Type = "<="
	GT        Type = ">"
	GTE       Type = ">="

	SELECT    Type = "SELECT"
	DISTINCT  Type = "DISTINCT"
	NEW       Type = "NEW"
	FROM      Type = "FROM"
	WHERE     Type = "WHERE"
	GROUP     Type = "GROUP"
	BY        Type = "BY"
	HAVING    Type = "HAVING"
	ORDER     Type = "ORDER"
	ASC       Type = "ASC"
	DESC      Type = "DESC"
	LIMIT     Type = "LIMIT"
	OFFSET    Type = "OFFSET"
	FETCH     Type = "FETCH"
	FIRST     Type = "FIRST"
	NEXT      Type = "NEXT"
	ROW       Type = "ROW"
	ROWS      Type = "ROWS"
	ONLY      Type = "ONLY"
	UNION     Type = "UNION"
	INTERSECT Type = "INTERSECT"
	EXCEPT    Type = "EXCEPT"
	ALL       Type = "ALL"
	AS        Type = "AS"
	JOIN      Type = "JOIN"
	INNER     Type = "INNER"
	LEFT      Type = "LEFT"
	RIGHT     Type = "RIGHT"
	FULL      Type = "FULL"
	OUTER     Type = "OUTER"
	CROSS     Type = "CROSS"
	ON        Type = "ON"
	WITH      Type = "WITH"
	RECURSIVE Type = "RECURSIVE"
	AND       Type = "AND"
	OR        Type = "OR"
	NOT       Type = "NOT"
	IN        Type = "IN"
	IS        Type = "IS"
	NULL      Type = "NULL"
	LIKE      Type = "LIKE"
	BETWEEN   Type = "BETWEEN"
	ESCAPE    Type = "ESCAPE"
	EXISTS    Type = "EXISTS"
	TRUE      Type = "TRUE"
	FALSE     Type = "FALSE"
)

var keywords = map[string]Type{
	"SELECT":    SELECT,
	"DISTINCT":  DISTINCT,
	"NEW":       NEW,
	"FROM":      FROM,
	"WHERE":     WHERE,
	"GROUP":     GROUP,
	"BY":        BY,
	"HAVING":    HAVING,
	"ORDER":     ORDER,
	"ASC":       ASC,
	"DESC":      DESC,
	"LIMIT":     LIMIT,
	"OFFSET":    OFFSET,
	"FETCH":     FETCH,
	"FIRST":     FIRST,
	"NEXT":      NEXT,
	"ROW":       ROW,
	"ROWS":      ROWS,
	"ONLY":      ONLY,
	"UNION":     UNION,
	"INTERSECT": INTERSECT,
	"EXCEPT":    EXCEPT,
	"ALL":       ALL,
	"AS":        AS,
	"JOIN":      JOIN,
	"INNER":     INNER,
	"LEFT":      LEFT,
	"RIGHT":     RIGHT,
	"FULL":      FULL,
	"OUTER":     OUTER,
	"CROSS":     CROSS,
	"ON":        ON,
	"WITH":      WITH,
	"RECURSIVE": RECURSIVE,
	"AND":       AND,
	"OR":        OR,
	"NOT":       NOT,
	"IN":        IN,
	"IS":        IS,
	"NULL":      NULL,
	"LIKE":      LIKE,
	"BETWEEN":   BETWEEN,
	"ESCAPE":    ESCAPE,
	"EXISTS":    EXISTS,
	"TRUE":      TRUE,
	"FALSE":     FALSE,
}

// Lookup returns the keyword type for the given identifier, or IDENT if it
// is not a reserved word. Matching is case-insensitive.
func Lookup(ident string) Type {
	if tok, ok := keywords[strings.ToUpper(ident)]; ok {
		return tok
	}
	return IDENT
}

// Keyword reports whether typ is a reserved-word token type.
func Keyword(typ Type) bool {
	_, ok := keywords[string(typ)]
	return ok
}

// Is reports whether the token has the given type.
func (t Token) Is(typ Type) bool {
	return t.Type == typ
}

// IsKeyword reports whether the token's literal matches the given word
// case-insensitively.
func (t Token) IsKeyword(word string) bool {
	return strings.EqualFold(t.Literal, word)
}

// New builds a synthesized token with a trailing space. Synthesized tokens
// carry no source position.
func New(literal string) Token {
	return Token{Type: Lookup(literal), Literal: literal, SpaceAfter: true}
}

// NewNoSpace builds a synthesized token without a trailing space, for
// tokens that must abut the following one, such as "count(".
func NewNoSpace(literal string) Token {
	return Token{Type: Lookup(literal), Literal: literal}
}
