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

// Package lexer converts raw query text into a token stream. Literals keep
// their exact source spelling (quotes included) and every token records
// whether whitespace followed it, so the stream can be rendered back to the
// original text up to whitespace normalization.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/rulego/querykit/token"
)

// Lexer scans a query string rune by rune with 1-based line/column
// tracking.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
	line         int
	column       int

	typedSuffixes bool
	quotedIdents  bool
	dollarParams  bool
}

// Option configures lexer behavior for a query dialect.
type Option func(*Lexer)

// WithTypedNumericSuffixes makes the lexer keep typed numeric literal
// suffixes (1234L, 3.14e32D, 0.5F) as part of the number token instead of
// splitting them into a separate identifier.
func WithTypedNumericSuffixes() Option {
	return func(l *Lexer) {
		l.typedSuffixes = true
	}
}

// WithQuotedIdentifiers enables double-quoted and backquoted identifiers.
// Without it a quote character lexes as an ILLEGAL token; only native SQL
// grammars quote identifiers this way.
func WithQuotedIdentifiers() Option {
	return func(l *Lexer) {
		l.quotedIdents = true
	}
}

// WithDollarPlaceholders enables $n bind markers alongside ?n.
func WithDollarPlaceholders() Option {
	return func(l *Lexer) {
		l.dollarParams = true
	}
}

// New creates a lexer over the given input.
func New(input string, opts ...Option) *Lexer {
	l := &Lexer{input: input, line: 1}
	for _, opt := range opts {
		opt(l)
	}
	l.readRune()
	return l
}

// Tokenize scans the whole input and returns the token stream. Lexical
// failures (unterminated strings, stray characters) surface as ILLEGAL
// tokens; the parser converts the first one into a typed parse error.
func (l *Lexer) Tokenize() token.Stream {
	var out token.Stream
	for {
		tok, ok := l.next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

func (l *Lexer) next() (token.Token, bool) {
	l.skipWhitespaceAndComments()
	if l.ch == 0 {
		return token.Token{}, false
	}

	line, column := l.line, l.column
	var tok token.Token

	switch l.ch {
	case ',':
		tok = l.simple(token.COMMA)
	case ';':
		tok = l.simple(token.SEMICOLON)
	case '(':
		tok = l.simple(token.LPAREN)
	case ')':
		tok = l.simple(token.RPAREN)
	case '.':
		tok = l.simple(token.DOT)
	case '*':
		tok = l.simple(token.STAR)
	case '+':
		tok = l.simple(token.PLUS)
	case '-':
		tok = l.simple(token.MINUS)
	case '/':
		tok = l.simple(token.SLASH)
	case '%':
		tok = l.simple(token.PERCENT)
	case '=':
		tok = l.simple(token.EQ)
	case '|':
		if l.peekRune() == '|' {
			tok = l.pair(token.CONCAT)
		} else {
			tok = l.simple(token.ILLEGAL)
		}
	case '!':
		if l.peekRune() == '=' {
			tok = l.pair(token.NEQ)
		} else {
			tok = l.simple(token.ILLEGAL)
		}
	case '<':
		switch l.peekRune() {
		case '=':
			tok = l.pair(token.LTE)
		case '>':
			tok = l.pair(token.NEQ)
		default:
			tok = l.simple(token.LT)
		}
	case '>':
		if l.peekRune() == '=' {
			tok = l.pair(token.GTE)
		} else {
			tok = l.simple(token.GT)
		}
	case ':':
		tok = l.readColon()
	case '?':
		tok = l.readPlaceholder()
	case '$':
		if l.dollarParams {
			tok = l.readPlaceholder()
		} else {
			tok = l.simple(token.ILLEGAL)
		}
	case '\'':
		tok = l.readString()
	case '"', '`':
		if l.quotedIdents {
			tok = l.readQuotedIdentifier(l.ch)
		} else {
			tok = l.simple(token.ILLEGAL)
		}
	default:
		switch {
		case isIdentStart(l.ch):
			tok = token.Token{Type: token.IDENT, Literal: l.readIdentifier()}
			tok.Type = token.Lookup(tok.Literal)
		case unicode.IsDigit(l.ch):
			tok = token.Token{Type: token.NUMBER, Literal: l.readNumber()}
		default:
			tok = l.simple(token.ILLEGAL)
		}
	}

	tok.Line = line
	tok.Column = column
	tok.SpaceAfter = l.atSeparator()
	return tok, true
}

// simple consumes the current rune as a single-character token.
func (l *Lexer) simple(t token.Type) token.Token {
	tok := token.Token{Type: t, Literal: string(l.ch)}
	l.readRune()
	return tok
}

// pair consumes the current and next rune as a two-character token.
func (l *Lexer) pair(t token.Type) token.Token {
	lit := string(l.ch)
	l.readRune()
	lit += string(l.ch)
	l.readRune()
	return token.Token{Type: t, Literal: lit}
}

func (l *Lexer) readColon() token.Token {
	if l.peekRune() == ':' {
		return l.pair(token.DCOLON)
	}
	start := l.position
	l.readRune()
	if !isIdentStart(l.ch) {
		return token.Token{Type: token.ILLEGAL, Literal: l.input[start:l.position]}
	}
	l.readIdentifier()
	return token.Token{Type: token.PARAM, Literal: l.input[start:l.position]}
}

func (l *Lexer) readPlaceholder() token.Token {
	start := l.position
	l.readRune()
	for unicode.IsDigit(l.ch) {
		l.readRune()
	}
	return token.Token{Type: token.PARAM, Literal: l.input[start:l.position]}
}

func (l *Lexer) readString() token.Token {
	start := l.position
	for {
		l.readRune()
		switch l.ch {
		case '\'':
			if l.peekRune() == '\'' {
				l.readRune()
				continue
			}
			l.readRune()
			return token.Token{Type: token.STRING, Literal: l.input[start:l.position]}
		case 0:
			return token.Token{Type: token.ILLEGAL, Literal: l.input[start:l.position]}
		}
	}
}

func (l *Lexer) readQuotedIdentifier(quote rune) token.Token {
	start := l.position
	for {
		l.readRune()
		switch l.ch {
		case quote:
			if l.peekRune() == quote {
				l.readRune()
				continue
			}
			l.readRune()
			return token.Token{Type: token.IDENT, Literal: l.input[start:l.position]}
		case 0:
			return token.Token{Type: token.ILLEGAL, Literal: l.input[start:l.position]}
		}
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isIdentPart(l.ch) {
		l.readRune()
	}
	return l.input[start:l.position]
}

// readNumber scans an integer or decimal literal with an optional exponent
// and, when enabled, a single typed suffix letter (L, D, F). The suffix is
// only taken when no further identifier character follows, so "1234L" stays
// one token but "12abc" does not swallow the identifier.
func (l *Lexer) readNumber() string {
	start := l.position
	for unicode.IsDigit(l.ch) {
		l.readRune()
	}
	if l.ch == '.' && unicode.IsDigit(l.peekRune()) {
		l.readRune()
		for unicode.IsDigit(l.ch) {
			l.readRune()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		if next := l.peekRune(); unicode.IsDigit(next) || next == '+' || next == '-' {
			l.readRune()
			if l.ch == '+' || l.ch == '-' {
				l.readRune()
			}
			for unicode.IsDigit(l.ch) {
				l.readRune()
			}
		}
	}
	if l.typedSuffixes && isTypedSuffix(l.ch) && !isIdentPart(l.peekRune()) {
		l.readRune()
	}
	return l.input[start:l.position]
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for unicode.IsSpace(l.ch) {
			l.readRune()
		}
		switch {
		case l.ch == '-' && l.peekRune() == '-':
			for l.ch != '\n' && l.ch != 0 {
				l.readRune()
			}
		case l.ch == '/' && l.peekRune() == '*':
			l.readRune()
			l.readRune()
			for l.ch != 0 && !(l.ch == '*' && l.peekRune() == '/') {
				l.readRune()
			}
			if l.ch != 0 {
				l.readRune()
				l.readRune()
			}
		default:
			return
		}
	}
}

// atSeparator reports whether the rune following the just-scanned token is
// whitespace or the start of a comment, i.e. whether the token carried
// trailing whitespace in the source.
func (l *Lexer) atSeparator() bool {
	if unicode.IsSpace(l.ch) {
		return true
	}
	if l.ch == '-' && l.peekRune() == '-' {
		return true
	}
	if l.ch == '/' && l.peekRune() == '*' {
		return true
	}
	return false
}

func (l *Lexer) readRune() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.position = l.readPosition
	l.readPosition += size
	l.ch = r
	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) peekRune() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isTypedSuffix(r rune) bool {
	switch r {
	case 'l', 'L', 'd', 'D', 'f', 'F':
		return true
	}
	return false
}
