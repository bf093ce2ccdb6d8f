package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rulego/querykit/token"
)

func TestTokenizeBasicSelect(t *testing.T) {
	toks := New("SELECT e FROM Employee e").Tokenize()
	types := make([]token.Type, 0, len(toks))
	lits := make([]string, 0, len(toks))
	for _, tok := range toks {
		types = append(types, tok.Type)
		lits = append(lits, tok.Literal)
	}
	assert.Equal(t, []token.Type{token.SELECT, token.IDENT, token.FROM, token.IDENT, token.IDENT}, types)
	assert.Equal(t, []string{"SELECT", "e", "FROM", "Employee", "e"}, lits)
}

func TestTokenizeRoundTrip(t *testing.T) {
	tests := []struct {
		input    string
		rendered string
	}{
		{"SELECT e FROM Employee e", "SELECT e FROM Employee e"},
		{"select  u.name,u.age   from User u", "select u.name,u.age from User u"},
		{"SELECT * FROM users WHERE name = 'O''Brien'", "SELECT * FROM users WHERE name = 'O''Brien'"},
		{"SELECT a FROM t -- trailing\nWHERE a > 1", "SELECT a FROM t WHERE a > 1"},
		{"SELECT /* head */ a FROM t", "SELECT a FROM t"},
		{"SELECT a||b, c::text FROM t", "SELECT a||b, c::text FROM t"},
		{"SELECT a FROM t WHERE x <> 1 AND y != 2 AND z <= 3", "SELECT a FROM t WHERE x <> 1 AND y != 2 AND z <= 3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.rendered, New(tt.input).Tokenize().Render(), "input: %s", tt.input)
	}
}

func TestTokenizeParameters(t *testing.T) {
	toks := New("WHERE a = :name AND b = ?1 AND c = ? AND d = $2", WithDollarPlaceholders()).Tokenize()
	var params []string
	for _, tok := range toks {
		if tok.Type == token.PARAM {
			params = append(params, tok.Literal)
		}
	}
	assert.Equal(t, []string{":name", "?1", "?", "$2"}, params)
}

func TestTokenizeQuotedIdentifiers(t *testing.T) {
	toks := New("SELECT \"user id\", `raw col` FROM t", WithQuotedIdentifiers()).Tokenize()
	assert.Equal(t, token.IDENT, toks[1].Type)
	assert.Equal(t, "\"user id\"", toks[1].Literal)
	assert.Equal(t, token.IDENT, toks[3].Type)
	assert.Equal(t, "`raw col`", toks[3].Literal)
	assert.Equal(t, "SELECT \"user id\", `raw col` FROM t", toks.Render())
}

func TestTokenizeNativeMarkersOffByDefault(t *testing.T) {
	toks := New("SELECT \"x\" FROM t").Tokenize()
	assert.Equal(t, token.ILLEGAL, toks[1].Type)

	toks = New("WHERE id = $1").Tokenize()
	assert.Equal(t, token.ILLEGAL, toks[len(toks)-2].Type)
}

func TestTokenizeCastOperatorIsNotParam(t *testing.T) {
	toks := New("SELECT a::text FROM t").Tokenize()
	assert.Equal(t, token.DCOLON, toks[2].Type)
	assert.Equal(t, "::", toks[2].Literal)
}

func TestTokenizeTypedNumericSuffixes(t *testing.T) {
	toks := New("WHERE a = 1234L AND b = 3.14e32D AND c = 0.5F", WithTypedNumericSuffixes()).Tokenize()
	var numbers []string
	for _, tok := range toks {
		if tok.Type == token.NUMBER {
			numbers = append(numbers, tok.Literal)
		}
	}
	assert.Equal(t, []string{"1234L", "3.14e32D", "0.5F"}, numbers)
}

func TestTokenizeSuffixesOffByDefault(t *testing.T) {
	toks := New("WHERE a = 1234L").Tokenize()
	assert.Equal(t, token.NUMBER, toks[3].Type)
	assert.Equal(t, "1234", toks[3].Literal)
	assert.Equal(t, token.IDENT, toks[4].Type)
	assert.Equal(t, "L", toks[4].Literal)
}

func TestTokenizeNumberDoesNotSwallowIdentifier(t *testing.T) {
	toks := New("12abc", WithTypedNumericSuffixes()).Tokenize()
	assert.Equal(t, token.NUMBER, toks[0].Type)
	assert.Equal(t, "12", toks[0].Literal)
	assert.Equal(t, token.IDENT, toks[1].Type)
	assert.Equal(t, "abc", toks[1].Literal)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	toks := New("WHERE name = 'broken").Tokenize()
	last := toks[len(toks)-1]
	assert.Equal(t, token.ILLEGAL, last.Type)
	assert.Equal(t, "'broken", last.Literal)
}

func TestTokenizeLineColumn(t *testing.T) {
	toks := New("SELECT a\nFROM t").Tokenize()
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 1, toks[0].Column)
	assert.Equal(t, 2, toks[2].Line)
	assert.Equal(t, 1, toks[2].Column)
	assert.Equal(t, "FROM", toks[2].Literal)
}

func TestTokenizeSpaceAfter(t *testing.T) {
	toks := New("a, b,c").Tokenize()
	assert.False(t, toks[0].SpaceAfter) // "a" glued to ","
	assert.True(t, toks[1].SpaceAfter)  // "," followed by space
	assert.False(t, toks[3].SpaceAfter) // second "," glued to "c"
	assert.False(t, toks[len(toks)-1].SpaceAfter)
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, New("").Tokenize())
	assert.Empty(t, New("   \n\t ").Tokenize())
	assert.Empty(t, New("-- only a comment").Tokenize())
}
