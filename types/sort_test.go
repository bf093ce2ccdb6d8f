package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortBy(t *testing.T) {
	s := By("name", "age")
	orders := s.Orders()
	assert.Len(t, orders, 2)
	assert.Equal(t, "name", orders[0].Property)
	assert.Equal(t, Asc, orders[0].Direction)
	assert.False(t, s.IsEmpty())
}

func TestSortDescending(t *testing.T) {
	s := By("name", "age").Descending()
	for _, o := range s.Orders() {
		assert.Equal(t, Desc, o.Direction)
	}
}

func TestSortAnd(t *testing.T) {
	s := By("name").And(By("age").Descending())
	orders := s.Orders()
	assert.Len(t, orders, 2)
	assert.Equal(t, Asc, orders[0].Direction)
	assert.Equal(t, Desc, orders[1].Direction)
}

func TestSortString(t *testing.T) {
	assert.Equal(t, "name asc, age desc", By("name").And(By("age").Descending()).String())
	assert.Equal(t, "", Sort{}.String())
	assert.True(t, Sort{}.IsEmpty())
}

func TestOrdersCopy(t *testing.T) {
	s := By("name")
	orders := s.Orders()
	orders[0].Property = "changed"
	assert.Equal(t, "name", s.Orders()[0].Property)
}

func TestDeclaredQuery(t *testing.T) {
	j := NewJpqlQuery("SELECT e FROM Employee e")
	assert.False(t, j.IsNative())
	assert.Equal(t, "SELECT e FROM Employee e", j.Query())

	n := NewNativeQuery("select 1")
	assert.True(t, n.IsNative())
}
