// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"github.com/blevesearch/geo/r2"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/halfmesh/mesh"
)

// cross2 is the shoelace term (xi*yj - xj*yi) for the directed edge
// p -> q, reused by both CellArea and CellBarycenter.
func cross2(p, q r2.Point) float64 { return p.X*q.Y - q.X*p.Y }

// CellArea computes the signed area of every non-sentinel cell in one
// sweep over all half-edges, accumulating into a size NC+1 array
// (slot NC is the sentinel) before dropping that slot.
func CellArea(m *mesh.Mesh) []float64 {
	acc := make([]float64, m.CellCount()+1)
	for _, he := range m.Halfedge {
		p := m.Node[m.Halfedge[he.Prev].To]
		q := m.Node[he.To]
		acc[he.Cell] += cross2(p, q)
	}
	for c := range acc {
		acc[c] /= 2
	}
	return acc[:m.CellCount()]
}

// CellBarycenter computes the signed-area-weighted centroid of every
// non-sentinel cell, accumulating area and first-moment terms into
// size NC+1 arrays before dropping the sentinel slot.
func CellBarycenter(m *mesh.Mesh) []r2.Point {
	nc := m.CellCount()
	area := make([]float64, nc+1)
	mom := make([]r2.Point, nc+1)
	for _, he := range m.Halfedge {
		p := m.Node[m.Halfedge[he.Prev].To]
		q := m.Node[he.To]
		a := cross2(p, q)
		area[he.Cell] += a
		mom[he.Cell] = mom[he.Cell].Add(p.Add(q).Mul(a))
	}
	bc := make([]r2.Point, nc)
	for c := 0; c < nc; c++ {
		bc[c] = mom[c].Mul(1 / (3 * area[c]))
	}
	return bc
}

// EntityBarycenter returns the barycenter of every entity of the
// given kind: cell centroids, edge midpoints, or the nodes
// themselves. Half-edges have no barycenter of their own.
func EntityBarycenter(m *mesh.Mesh, kind mesh.Kind) ([]r2.Point, error) {
	switch kind {
	case mesh.KindCell:
		return CellBarycenter(m), nil
	case mesh.KindEdge:
		mid := make([]r2.Point, m.EdgeCount())
		for e, nodes := range EdgeToNodes(m) {
			mid[e] = m.Node[nodes[0]].Add(m.Node[nodes[1]]).Mul(0.5)
		}
		return mid, nil
	case mesh.KindNode:
		return append([]r2.Point(nil), m.Node...), nil
	}
	return nil, chk.Err("BadEntityKind: no barycenter for kind %v\n", kind)
}
