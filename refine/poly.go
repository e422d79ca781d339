// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package refine implements polygonal refinement: given a set of
// marked cells, it splits each marked edge at its midpoint, then
// splits each marked cell by connecting the new edge-midpoints to the
// cell barycenter. The algorithm is staged as filter -> allocate ->
// link -> compact phases so that later phases can read a stable
// pre-split view while writing the post-split one.
package refine

import (
	"github.com/blevesearch/geo/r2"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/halfmesh/mesh"
	"github.com/cpmech/halfmesh/topo"
)

// Poly runs one pass of polygonal refinement over m. marked must have
// length CellCount()+1 with the last (sentinel) slot false. An
// all-false marked is a silent no-op. When edgeOnly is true, Poly
// stops after subdividing edges without cutting marked cells, which
// builds a conforming interface without changing the cell count.
//
// data, if non-nil, maps an attribute name to a per-node array of the
// current node count; refinement extends each array in place with
// (i) edge-midpoint values (mean of the two endpoints) and (ii)
// barycenter values (mean of a marked cell's old vertex values). This
// is the only place refinement touches caller data.
func Poly(m *mesh.Mesh, marked []bool, data map[string][]float64, edgeOnly bool) error {
	nc := m.CellCount()
	if len(marked) != nc+1 {
		return chk.Err("ShapeMismatch: marked has length %d, want %d\n", len(marked), nc+1)
	}
	if marked[nc] {
		return chk.Err("ShapeMismatch: marked[NC] (the sentinel slot) must be false\n")
	}
	anyMarked := false
	for _, v := range marked[:nc] {
		if v {
			anyMarked = true
			break
		}
	}
	if !anyMarked {
		return nil // nothing marked, nothing to refine
	}
	for key, values := range data {
		if len(values) != m.NodeCount() {
			return chk.Err("ShapeMismatch: data %q has length %d, want %d\n", key, len(values), m.NodeCount())
		}
	}

	nn0 := m.NodeCount()
	bc := topo.CellBarycenter(m)
	st := newState(m)

	midpointCoords, _ := st.selectAndSplitEdges(marked, data)
	ne1 := len(midpointCoords)

	if edgeOnly {
		newNode := append(append([]r2.Point{}, m.Node...), midpointCoords...)
		m.Node = newNode
		m.FixedNode = append(m.FixedNode, make([]bool, ne1)...)
		m.HalfedgeLevel = st.hlevel
		m.Reinit(len(newNode), nc, st.halfedge)
		return nil
	}

	wedgeCoords := st.splitMarkedCells(marked, bc, nn0, ne1)

	newNode := append(append([]r2.Point{}, m.Node...), midpointCoords...)
	newNode = append(newNode, wedgeCoords...)
	m.Node = newNode
	m.FixedNode = append(m.FixedNode, make([]bool, ne1+len(wedgeCoords))...)
	propagateCellData(data, marked, nc, st.orig, wedgeCoords)

	finalHalfedge, finalCLevel, finalSubdom, finalHLevel, ncFinal := st.compact()
	m.CellLevel = finalCLevel
	m.Subdomain = finalSubdom
	m.HalfedgeLevel = finalHLevel
	m.Reinit(len(newNode), ncFinal, finalHalfedge)
	return nil
}

// propagateCellData extends every node-data array with one new value
// per new barycenter node: the mean of its cell's old vertex values.
func propagateCellData(data map[string][]float64, marked []bool, nc int, orig []mesh.HalfEdge, wedgeCoords []r2.Point) {
	if len(wedgeCoords) == 0 {
		return
	}
	for key, values := range data {
		sum := make(map[int]float64)
		cnt := make(map[int]int)
		for _, he := range orig {
			if he.Cell < nc && marked[he.Cell] {
				sum[he.Cell] += values[he.To]
				cnt[he.Cell]++
			}
		}
		var extended []float64
		for c := 0; c < nc; c++ {
			if marked[c] {
				extended = append(extended, sum[c]/float64(cnt[c]))
			}
		}
		data[key] = append(values, extended...)
	}
}
