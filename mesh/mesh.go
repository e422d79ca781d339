// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh implements the half-edge data structure used to
// represent general polygonal meshes: a node-coordinate table and a
// half-edge table, plus the per-entity level attributes that drive
// adaptive refinement and coarsening.
package mesh

import (
	"github.com/blevesearch/geo/r1"
	"github.com/blevesearch/geo/r2"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// HalfEdge holds the six integer fields of one half-edge.
type HalfEdge struct {
	To   int // index of the node this half-edge points to
	Cell int // index of the cell on its left (sentinel == NC if on the boundary)
	Next int // next half-edge around Cell, CCW
	Prev int // previous half-edge around Cell
	Opp  int // opposite half-edge (twin)
	Main int // 1 if this half-edge is the canonical representative of its edge, else 0
}

// Mesh owns the entire half-edge topology: the node table, the
// half-edge table, the per-entity level attributes and the
// attribute-data tables. Reinit is the only way to replace the
// half-edge table and the cell count: refinement and coarsening stage
// a fully consistent half-edge table and hand it to Reinit, after
// assigning the new node table and level/tag arrays to the exported
// fields directly.
type Mesh struct {

	// geometry
	Node   []r2.Point // node coordinates, indices 0..NN
	XRange r1.Interval // bounding box on x
	YRange r1.Interval // bounding box on y

	// topology
	Halfedge []HalfEdge // half-edges, indices 0..2*NE
	nc       int        // number of non-sentinel cells
	cell2he  []int      // [NC+1] any half-edge of each cell (sentinel included)

	// per-cell tags
	Subdomain []int  // subdomain tag: 0 outer/unreachable, +n interior n, -n hole n
	FixedNode []bool // per-node: true if pinned, never removed by coarsening

	// level bookkeeping, maintained by refinement/coarsening
	CellLevel     []int // [NC+1]
	HalfedgeLevel []int // [2*NE]
	NodeLevel     []int // [NN]

	// attribute tables, keyed on entity kind
	CellData     map[string][]float64
	EdgeData     map[string][]float64
	NodeData     map[string][]float64
	HalfedgeData map[string][]float64
	MeshData     map[string]float64

	// Verbose turns on opt-in diagnostic printing during refine/coarsen.
	Verbose bool
}

// New builds a Mesh from node coordinates and a fully-formed half-edge
// table. NC is the number of non-sentinel cells (cell id NC is the
// sentinel outer cell). Callers are the Importers (meshimport) or
// refine/coarsen, which must present an internally consistent table.
func New(node []r2.Point, halfedge []HalfEdge, nc int) *Mesh {
	m := &Mesh{
		Node:         node,
		Subdomain:    make([]int, nc+1),
		FixedNode:    make([]bool, len(node)),
		CellData:     make(map[string][]float64),
		EdgeData:     make(map[string][]float64),
		NodeData:     make(map[string][]float64),
		HalfedgeData: make(map[string][]float64),
		MeshData:     make(map[string]float64),
	}
	m.Reinit(len(node), nc, halfedge)
	m.CellLevel = make([]int, nc+1)
	m.HalfedgeLevel = make([]int, len(halfedge))
	m.NodeLevel = make([]int, len(node))
	return m
}

// NodeCount returns NN, the number of nodes.
func (m *Mesh) NodeCount() int { return len(m.Node) }

// EdgeCount returns NE == |half-edges|/2.
func (m *Mesh) EdgeCount() int { return len(m.Halfedge) / 2 }

// CellCount returns NC, excluding the sentinel outer cell.
func (m *Mesh) CellCount() int { return m.nc }

// SentinelCell returns the sentinel "outer cell" id, which equals NC.
func (m *Mesh) SentinelCell() int { return m.nc }

// CellToSomeHalfedge returns, for cell c (0..NC, sentinel included),
// the index of one half-edge with Cell==c. It is the starting point
// for walking a cell's boundary cycle.
func (m *Mesh) CellToSomeHalfedge(c int) int { return m.cell2he[c] }

// Reinit replaces the cell count and half-edge table. nn must equal
// the length of the node table, which the caller has already replaced;
// a mismatch panics (InvariantViolation). PR and PC stage fully
// consistent arrays (filter -> allocate -> link -> compact) and call
// Reinit once the new table obeys the invariants of the data model.
// Reinit rebuilds the cell-to-halfedge index in one linear pass
// and then verifies the topology invariants, panicking (InvariantViolation)
// if they do not hold, since the mesh would otherwise be unusable.
func (m *Mesh) Reinit(nn, nc int, halfedge []HalfEdge) {
	if nn != len(m.Node) {
		chk.Panic("InvariantViolation: reinit called with NN=%d but node table has %d entries\n", nn, len(m.Node))
	}
	m.nc = nc
	m.Halfedge = halfedge
	m.cell2he = make([]int, nc+1)
	for h, he := range halfedge {
		m.cell2he[he.Cell] = h
	}
	m.checkInvariants()
	m.reinitRanges()
	if m.Verbose {
		io.Pfgreen("reinit: NN=%d NC=%d NE=%d\n", nn, nc, len(halfedge)/2)
	}
}

// reinitRanges recomputes the XRange/YRange bounding box from Node.
func (m *Mesh) reinitRanges() {
	if len(m.Node) == 0 {
		m.XRange, m.YRange = r1.EmptyInterval(), r1.EmptyInterval()
		return
	}
	m.XRange = r1.IntervalFromPoint(m.Node[0].X)
	m.YRange = r1.IntervalFromPoint(m.Node[0].Y)
	for _, p := range m.Node[1:] {
		m.XRange.Lo = utl.Min(m.XRange.Lo, p.X)
		m.XRange.Hi = utl.Max(m.XRange.Hi, p.X)
		m.YRange.Lo = utl.Min(m.YRange.Lo, p.Y)
		m.YRange.Hi = utl.Max(m.YRange.Hi, p.Y)
	}
}

// checkInvariants verifies the topology invariants that must hold
// after every Reinit. A violation means the mesh is unusable and the
// process must not continue with it.
func (m *Mesh) checkInvariants() {
	for h, he := range m.Halfedge {
		if m.Halfedge[he.Opp].Opp != h || he.Opp == h {
			chk.Panic("InvariantViolation: opp[opp[%d]] != %d\n", h, h)
		}
		if m.Halfedge[he.Prev].Next != h || m.Halfedge[he.Next].Prev != h {
			chk.Panic("InvariantViolation: next/prev mismatch around half-edge %d\n", h)
		}
		if he.Cell != m.Halfedge[he.Next].Cell {
			chk.Panic("InvariantViolation: cell[%d] != cell[next[%d]]\n", h, h)
		}
		if he.Main+m.Halfedge[he.Opp].Main != 1 {
			chk.Panic("InvariantViolation: main[%d] + main[opp[%d]] != 1\n", h, h)
		}
	}
}
