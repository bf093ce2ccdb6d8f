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

package types

import "strings"

// Direction is the ordering direction of one sort property. The zero
// value is ascending, so an unspecified direction sorts ascending.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// String returns the lower-case SQL keyword for the direction.
func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// Order pairs a property name with a direction.
type Order struct {
	Property  string
	Direction Direction
}

// Sort is an ordered list of property/direction pairs. The zero value is
// the unsorted specification.
type Sort struct {
	orders []Order
}

// NewSort builds a sort from explicit orders.
func NewSort(orders ...Order) Sort {
	return Sort{orders: orders}
}

// By builds an ascending sort over the given properties.
func By(properties ...string) Sort {
	orders := make([]Order, 0, len(properties))
	for _, p := range properties {
		orders = append(orders, Order{Property: p})
	}
	return Sort{orders: orders}
}

// Descending returns a copy of the sort with every direction flipped to
// descending.
func (s Sort) Descending() Sort {
	orders := make([]Order, len(s.orders))
	for i, o := range s.orders {
		orders[i] = Order{Property: o.Property, Direction: Desc}
	}
	return Sort{orders: orders}
}

// And concatenates two sort specifications.
func (s Sort) And(other Sort) Sort {
	orders := make([]Order, 0, len(s.orders)+len(other.orders))
	orders = append(orders, s.orders...)
	orders = append(orders, other.orders...)
	return Sort{orders: orders}
}

// Orders returns a copy of the orders in declaration sequence.
func (s Sort) Orders() []Order {
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// IsEmpty reports whether the sort specifies no ordering.
func (s Sort) IsEmpty() bool {
	return len(s.orders) == 0
}

// String renders the specification for diagnostics, e.g.
// "name asc, age desc".
func (s Sort) String() string {
	parts := make([]string, 0, len(s.orders))
	for _, o := range s.orders {
		parts = append(parts, o.Property+" "+o.Direction.String())
	}
	return strings.Join(parts, ", ")
}
