package enhancer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rulego/querykit/parser"
	"github.com/rulego/querykit/types"
)

func TestJPQLRenderSortedQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		sort     types.Sort
		expected string
	}{
		{
			name:     "append new order by with alias qualification",
			query:    "SELECT e FROM Employee e WHERE e.active = true",
			sort:     types.By("lastName"),
			expected: "SELECT e FROM Employee e WHERE e.active = true order by e.lastName asc",
		},
		{
			name:     "multiple properties",
			query:    "SELECT e FROM Employee e",
			sort:     types.By("lastName", "firstName"),
			expected: "SELECT e FROM Employee e order by e.lastName asc, e.firstName asc",
		},
		{
			name:     "descending",
			query:    "SELECT e FROM Employee e",
			sort:     types.By("salary").Descending(),
			expected: "SELECT e FROM Employee e order by e.salary desc",
		},
		{
			name:     "existing order by gets a continuation",
			query:    "SELECT e FROM Employee e ORDER BY e.name ASC",
			sort:     types.By("age"),
			expected: "SELECT e FROM Employee e ORDER BY e.name ASC, e.age asc",
		},
		{
			name:     "qualified property is not requalified",
			query:    "SELECT e FROM Employee e",
			sort:     types.By("e.name"),
			expected: "SELECT e FROM Employee e order by e.name asc",
		},
		{
			name:     "function call is not qualified",
			query:    "SELECT e FROM Employee e",
			sort:     types.By("LENGTH(name)"),
			expected: "SELECT e FROM Employee e order by LENGTH(name) asc",
		},
		{
			name:     "empty sort returns query unchanged",
			query:    "SELECT e FROM Employee e",
			sort:     types.Sort{},
			expected: "SELECT e FROM Employee e",
		},
		{
			name:     "no alias leaves property bare",
			query:    "SELECT count(e) FROM Employee",
			sort:     types.By("name"),
			expected: "SELECT count(e) FROM Employee order by name asc",
		},
		{
			name:     "entity named after a reserved word",
			query:    "SELECT o FROM Order o",
			sort:     types.By("status"),
			expected: "SELECT o FROM Order o order by o.status asc",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewJPQL(types.NewJpqlQuery(tt.query))
			got, err := q.RenderSortedQuery(tt.sort)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestJPQLRenderSortedQueryIdempotentSource(t *testing.T) {
	q := NewJPQL(types.NewJpqlQuery("SELECT e FROM Employee e"))
	first, err := q.RenderSortedQuery(types.By("name"))
	assert.NoError(t, err)
	second, err := q.RenderSortedQuery(types.By("age"))
	assert.NoError(t, err)
	assert.Equal(t, "SELECT e FROM Employee e order by e.name asc", first)
	assert.Equal(t, "SELECT e FROM Employee e order by e.age asc", second)
}

func TestJPQLRenderSortedQueryUnsafeProperty(t *testing.T) {
	q := NewJPQL(types.NewJpqlQuery("SELECT e FROM Employee e"))
	for _, prop := range []string{
		"name; DROP TABLE employees",
		"name, (select 1)",
		"name--",
		"a b",
	} {
		_, err := q.RenderSortedQuery(types.By(prop))
		assert.Error(t, err, prop)
		var sortErr *InvalidSortError
		assert.ErrorAs(t, err, &sortErr, prop)
	}
}

func TestJPQLCreateCountQuery(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		projection string
		expected   string
	}{
		{
			name:     "counts the alias",
			query:    "SELECT e FROM Employee e WHERE e.active = true",
			expected: "select count(e) FROM Employee e WHERE e.active = true",
		},
		{
			name:     "strips order by",
			query:    "SELECT e FROM Employee e ORDER BY e.name ASC",
			expected: "select count(e) FROM Employee e",
		},
		{
			name:     "distinct counts the projected path",
			query:    "SELECT DISTINCT e.name FROM Employee e",
			expected: "select count(distinct e.name) FROM Employee e",
		},
		{
			name:     "distinct without simple path counts the alias",
			query:    "SELECT DISTINCT e.name, e.age FROM Employee e",
			expected: "select count(distinct e) FROM Employee e",
		},
		{
			name:       "explicit projection wins",
			query:      "SELECT e FROM Employee e",
			projection: "e.id",
			expected:   "select count(e.id) FROM Employee e",
		},
		{
			name:       "explicit projection keeps distinct",
			query:      "SELECT DISTINCT e FROM Employee e",
			projection: "e.id",
			expected:   "select count(distinct e.id) FROM Employee e",
		},
		{
			name:     "no alias falls back to star",
			query:    "SELECT count(x) FROM Employee",
			expected: "select count(*) FROM Employee",
		},
		{
			name:     "joins survive",
			query:    "SELECT o FROM Order o LEFT JOIN FETCH o.items i WHERE o.status = :s",
			expected: "select count(o) FROM Order o LEFT JOIN FETCH o.items i WHERE o.status = :s",
		},
		{
			name:     "constructor expression counts the alias",
			query:    "SELECT new com.example.Dto(e.name) FROM Employee e GROUP BY e.name",
			expected: "select count(e) FROM Employee e GROUP BY e.name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewJPQL(types.NewJpqlQuery(tt.query))
			got, err := q.CreateCountQuery(tt.projection)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestJPQLProjection(t *testing.T) {
	tests := []struct {
		query      string
		projection string
	}{
		{"SELECT e FROM Employee e", "e"},
		{"SELECT e.name, e.age FROM Employee e", "e.name, e.age"},
		{"SELECT DISTINCT e.name FROM Employee e", "e.name"},
		{"SELECT new com.example.Dto(e.name, e.age) FROM Employee e", "new com.example.Dto(e.name, e.age)"},
		{"SELECT count(e) FROM Employee e", "count(e)"},
	}
	for _, tt := range tests {
		q := NewJPQL(types.NewJpqlQuery(tt.query))
		assert.Equal(t, tt.projection, q.Projection(), tt.query)
	}
}

func TestJPQLFindAlias(t *testing.T) {
	tests := []struct {
		query string
		alias string
	}{
		{"SELECT e FROM Employee e", "e"},
		{"SELECT e FROM Employee AS e", "e"},
		{"SELECT e FROM Employee e, MailingAddress a", "e"},
		{"SELECT count(x) FROM Employee", ""},
	}
	for _, tt := range tests {
		q := NewJPQL(types.NewJpqlQuery(tt.query))
		assert.Equal(t, tt.alias, q.FindAlias(), tt.query)
	}
}

func TestJPQLHasConstructorExpression(t *testing.T) {
	assert.True(t, NewJPQL(types.NewJpqlQuery(
		"SELECT new com.example.Dto(e.name) FROM Employee e")).HasConstructorExpression())
	assert.False(t, NewJPQL(types.NewJpqlQuery(
		"SELECT e FROM Employee e")).HasConstructorExpression())
}

func TestJPQLMalformedQueryPolicy(t *testing.T) {
	q := NewJPQL(types.NewJpqlQuery("SELECT e FROM"))

	// Rewriting operations fail loudly.
	_, err := q.RenderSortedQuery(types.By("name"))
	assert.Error(t, err)
	var invalidErr *InvalidQueryError
	assert.ErrorAs(t, err, &invalidErr)
	var parseErr *parser.ParseError
	assert.ErrorAs(t, err, &parseErr)

	_, countErr := q.CreateCountQuery("")
	assert.Error(t, countErr)

	// Introspections degrade to zero values.
	assert.Equal(t, "", q.Projection())
	assert.Equal(t, "", q.FindAlias())
	assert.False(t, q.HasConstructorExpression())

	// The parse ran once; both failures carry the same cached error.
	var second *parser.ParseError
	assert.ErrorAs(t, countErr, &second)
	assert.Same(t, parseErr, second)
}

func TestJPQLTypedNumericLiteralsRoundTrip(t *testing.T) {
	q := NewJPQL(types.NewJpqlQuery("SELECT e FROM Employee e WHERE e.salary > 1234L AND e.rate > 3.14e32D"))
	got, err := q.RenderSortedQuery(types.By("name"))
	assert.NoError(t, err)
	assert.Equal(t, "SELECT e FROM Employee e WHERE e.salary > 1234L AND e.rate > 3.14e32D order by e.name asc", got)
}

func TestJPQLQueryAccessor(t *testing.T) {
	declared := types.NewJpqlQuery("SELECT e FROM Employee e")
	q := NewJPQL(declared)
	assert.Equal(t, declared, q.Query())
	assert.False(t, q.Query().IsNative())
}

func TestJPQLParameterMarkersPreserved(t *testing.T) {
	q := NewJPQL(types.NewJpqlQuery("SELECT e FROM Employee e WHERE e.name = :name AND e.age > ?1"))
	got, err := q.CreateCountQuery("")
	assert.NoError(t, err)
	assert.Equal(t, "select count(e) FROM Employee e WHERE e.name = :name AND e.age > ?1", got)
}
