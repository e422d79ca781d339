// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package meshimport builds an initial half-edge mesh from one of the
// two conforming input forms: a triangular mesh with fixed-width
// connectivity, or a flat polygonal mesh in cell-node-ragged-array
// form. Both produce a fully linked half-edge table, with every
// unpaired directed edge twinned against the sentinel outer cell, and
// all level attributes zero.
package meshimport

import (
	"github.com/blevesearch/geo/r2"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/halfmesh/mesh"
)

// TriangleMesh is the fixed-width input form: every cell has exactly
// three vertices, listed counter-clockwise.
type TriangleMesh struct {
	Node      []r2.Point // node coordinates
	Cell      [][3]int    // cell-to-node connectivity, CCW
	Subdomain []int       // optional per-cell tag (nil => all interior, tag 1)
	FixedNode []bool      // optional per-node pinned flag (nil => all free)
}

// PolygonMesh is the ragged input form: cell c's vertices are
// Cell[Location[c]:Location[c+1]], listed counter-clockwise.
type PolygonMesh struct {
	Node      []r2.Point
	Cell      []int  // flat vertex indices
	Location  []int  // offsets, length NC+1
	Subdomain []int  // optional per-cell tag (nil => all interior, tag 1)
	FixedNode []bool // optional per-node pinned flag (nil => all free)
}

// FromTriangleMesh builds a half-edge mesh from a conforming triangle
// mesh by flattening it into ragged form.
func FromTriangleMesh(tm *TriangleMesh) (*mesh.Mesh, error) {
	nc := len(tm.Cell)
	pm := &PolygonMesh{
		Node:      tm.Node,
		Cell:      make([]int, 0, 3*nc),
		Location:  make([]int, nc+1),
		Subdomain: tm.Subdomain,
		FixedNode: tm.FixedNode,
	}
	for c, verts := range tm.Cell {
		pm.Cell = append(pm.Cell, verts[0], verts[1], verts[2])
		pm.Location[c+1] = 3 * (c + 1)
	}
	return FromPolygonMesh(pm)
}

// FromPolygonMesh builds a half-edge mesh from a conforming polygonal
// mesh. One half-edge is created per directed cell edge; twins are
// paired through their undirected node pair, and each directed edge
// left unpaired lies on the domain boundary and gets a twin owned by
// the sentinel outer cell. Sentinel half-edges are chained into
// boundary cycles by matching heads to tails, which handles domains
// with holes (several disjoint sentinel cycles) without special cases.
func FromPolygonMesh(pm *PolygonMesh) (*mesh.Mesh, error) {
	nc := len(pm.Location) - 1
	if nc < 1 {
		return nil, chk.Err("ShapeMismatch: polygon mesh must have at least one cell\n")
	}
	if pm.Location[nc] != len(pm.Cell) {
		return nil, chk.Err("ShapeMismatch: location[%d]=%d does not close the cell array (len=%d)\n", nc, pm.Location[nc], len(pm.Cell))
	}
	if pm.Subdomain != nil && len(pm.Subdomain) != nc {
		return nil, chk.Err("ShapeMismatch: subdomain has length %d, want %d\n", len(pm.Subdomain), nc)
	}
	if pm.FixedNode != nil && len(pm.FixedNode) != len(pm.Node) {
		return nil, chk.Err("ShapeMismatch: fixednode has length %d, want %d\n", len(pm.FixedNode), len(pm.Node))
	}

	// one half-edge per directed cell edge, linked within its cell
	halfedge := make([]mesh.HalfEdge, 0, 2*len(pm.Cell))
	for c := 0; c < nc; c++ {
		lo, hi := pm.Location[c], pm.Location[c+1]
		k := hi - lo
		if k < 3 {
			return nil, chk.Err("ShapeMismatch: cell %d has %d vertices, need at least 3\n", c, k)
		}
		base := len(halfedge)
		for i := 0; i < k; i++ {
			halfedge = append(halfedge, mesh.HalfEdge{
				To:   pm.Cell[lo+(i+1)%k],
				Cell: c,
				Next: base + (i+1)%k,
				Prev: base + (i+k-1)%k,
				Opp:  -1,
			})
		}
	}

	// pair twins through the undirected node pair
	type nodePair struct{ a, b int }
	pair := make(map[nodePair]int, len(halfedge))
	for h := range halfedge {
		tail := halfedge[halfedge[h].Prev].To
		head := halfedge[h].To
		key := nodePair{tail, head}
		if key.a > key.b {
			key.a, key.b = key.b, key.a
		}
		if g, ok := pair[key]; ok {
			if halfedge[g].Opp != -1 {
				return nil, chk.Err("ShapeMismatch: edge (%d,%d) is shared by more than two cells\n", key.a, key.b)
			}
			halfedge[g].Opp = h
			halfedge[h].Opp = g
			halfedge[g].Main = 1
		} else {
			pair[key] = h
		}
	}

	// unpaired directed edges are boundary: twin them against the sentinel
	tail2bd := make(map[int]int)
	nInterior := len(halfedge)
	for h := 0; h < nInterior; h++ {
		if halfedge[h].Opp != -1 {
			continue
		}
		tail := halfedge[halfedge[h].Prev].To
		b := len(halfedge)
		halfedge = append(halfedge, mesh.HalfEdge{
			To:   tail,
			Cell: nc,
			Opp:  h,
		})
		halfedge[h].Opp = b
		halfedge[h].Main = 1
		tail2bd[halfedge[h].To] = b // the sentinel twin starts at h's head
	}

	// chain each sentinel cycle: the successor of a sentinel half-edge
	// is the one starting at its head
	for b := nInterior; b < len(halfedge); b++ {
		nxt, ok := tail2bd[halfedge[b].To]
		if !ok {
			return nil, chk.Err("ShapeMismatch: boundary is not closed at node %d\n", halfedge[b].To)
		}
		halfedge[b].Next = nxt
		halfedge[nxt].Prev = b
	}

	m := mesh.New(pm.Node, halfedge, nc)
	for c := 0; c < nc; c++ {
		if pm.Subdomain != nil {
			m.Subdomain[c] = pm.Subdomain[c]
		} else {
			m.Subdomain[c] = 1
		}
	}
	if pm.FixedNode != nil {
		copy(m.FixedNode, pm.FixedNode)
	}
	return m, nil
}
