/*
Package sparse stores the cells of an LL(1) parse table.

A parse table has one row per non-terminal and one column per lookahead, but
only a small fraction of its cells is ever filled. IntMatrix keeps the filled
cells in a slice ordered by (row, column). Each cell holds a primary value and,
for tables with conflicts, a secondary value naming the first competitor.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// IntMatrix is a sparse m x n matrix of int32 cells.
//
//     M := NewIntMatrix(10, 10, -1)
//     M.Add(2, 3, 7)      // M(2,3) = 7
//     M.Add(2, 3, 8)      // M(2,3) = 7, secondary value 8
//     M.Value(5, 5)       // -1
//
// Cells cannot be removed.
type IntMatrix struct {
	cells []cell
	m, n  int
	null  int32
}

type cell struct {
	i, j               int
	primary, secondary int32
}

func compareCells(c, d cell) int {
	switch {
	case c.i != d.i:
		return c.i - d.i
	default:
		return c.j - d.j
	}
}

// NewIntMatrix creates an empty m x n matrix. Empty cells report nullValue.
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{m: m, n: n, null: nullValue}
}

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.m
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.n
}

// NullValue returns the value of empty cells.
func (m *IntMatrix) NullValue() int32 {
	return m.null
}

// ValueCount returns the number of non-empty cells.
func (m *IntMatrix) ValueCount() int {
	return len(m.cells)
}

// Value returns the primary value at (i,j).
func (m *IntMatrix) Value(i, j int) int32 {
	a, _ := m.Values(i, j)
	return a
}

// Values returns the primary and secondary value at (i,j).
func (m *IntMatrix) Values(i, j int) (int32, int32) {
	if k, found := m.find(i, j); found {
		return m.cells[k].primary, m.cells[k].secondary
	}
	return m.null, m.null
}

// Set stores value as the primary value at (i,j) and clears the secondary one.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	k, found := m.locate(i, j)
	if !found {
		m.cells = slices.Insert(m.cells, k, cell{i: i, j: j})
	}
	m.cells[k].primary, m.cells[k].secondary = value, m.null
	return m
}

// Add stores value at (i,j) without overwriting: it becomes the primary value
// of an empty cell, or else the secondary value if that is still empty.
func (m *IntMatrix) Add(i, j int, value int32) *IntMatrix {
	k, found := m.locate(i, j)
	if !found {
		m.cells = slices.Insert(m.cells, k, cell{i: i, j: j, primary: value, secondary: m.null})
	} else if m.cells[k].secondary == m.null {
		m.cells[k].secondary = value
	}
	return m
}

// Each calls f for every non-empty cell in row-major order.
func (m *IntMatrix) Each(f func(i, j int, a, b int32)) {
	for _, c := range m.cells {
		f(c.i, c.j, c.primary, c.secondary)
	}
}

func (m *IntMatrix) locate(i, j int) (int, bool) {
	if i < 0 || j < 0 || i >= m.m || j >= m.n {
		panic(fmt.Sprintf("sparse.IntMatrix: index (%d,%d) out of range %dx%d", i, j, m.m, m.n))
	}
	return m.find(i, j)
}

func (m *IntMatrix) find(i, j int) (int, bool) {
	return slices.BinarySearchFunc(m.cells, cell{i: i, j: j}, compareCells)
}
