// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package topo implements the topology queries: derived views
// computed on demand from a *mesh.Mesh. Every function here is a pure
// function of the mesh's current half-edge table; none of them
// mutate it.
package topo

import (
	"github.com/cpmech/halfmesh/mesh"
)

// VerticesPerCell returns the number of half-edges whose Cell==c, for
// every non-sentinel cell (length NC).
func VerticesPerCell(m *mesh.Mesh) []int {
	nv := make([]int, m.CellCount())
	for _, he := range m.Halfedge {
		if he.Cell != m.SentinelCell() {
			nv[he.Cell]++
		}
	}
	return nv
}

// CellToNodes walks the boundary cycle of every non-sentinel cell and
// returns the ragged array (indices, offsets) of its ordered node
// ring: cell c's nodes are indices[offsets[c]:offsets[c+1]].
func CellToNodes(m *mesh.Mesh) (indices []int, offsets []int) {
	nc := m.CellCount()
	nv := VerticesPerCell(m)
	offsets = make([]int, nc+1)
	for c := 0; c < nc; c++ {
		offsets[c+1] = offsets[c] + nv[c]
	}
	indices = make([]int, offsets[nc])
	for c := 0; c < nc; c++ {
		h := m.CellToSomeHalfedge(c)
		idx := offsets[c]
		for {
			indices[idx] = m.Halfedge[m.Halfedge[h].Prev].To
			idx++
			h = m.Halfedge[h].Next
			if h == m.CellToSomeHalfedge(c) {
				break
			}
		}
	}
	return
}

// EdgeToNodes returns, for each main half-edge (i.e. each undirected
// edge in canonical order), the pair (tail, head) == (to[opp[h]], to[h]).
func EdgeToNodes(m *mesh.Mesh) [][2]int {
	ne := m.EdgeCount()
	edge := make([][2]int, ne)
	j := mainIndex(m)
	for h, he := range m.Halfedge {
		if he.Main == 1 {
			edge[j[h]] = [2]int{m.Halfedge[he.Opp].To, he.To}
		}
	}
	return edge
}

// mainIndex maps every half-edge to the 0..NE-1 index of its
// undirected edge (both twins map to the same index).
func mainIndex(m *mesh.Mesh) []int {
	j := make([]int, len(m.Halfedge))
	next := 0
	for h, he := range m.Halfedge {
		if he.Main == 1 {
			j[h] = next
			j[he.Opp] = next
			next++
		}
	}
	return j
}

// EdgeToCells returns, for each undirected edge, (leftCell, rightCell,
// localIndexInLeft, localIndexInRight). When the right neighbor is the
// sentinel, both slots are set to the left cell and its local index.
func EdgeToCells(m *mesh.Mesh) [][4]int {
	ne := m.EdgeCount()
	res := make([][4]int, ne)
	j := mainIndex(m)

	// local index of every half-edge within its cell cycle; computed by
	// walking every non-sentinel cell once. Sentinel-side half-edges
	// never need theirs: the boundary convention below overwrites those
	// slots with the interior side's values. (The sentinel may own more
	// than one cycle when the domain has holes, so it cannot be walked
	// from a single starting half-edge anyway.)
	local := make([]int, len(m.Halfedge))
	for c := 0; c < m.CellCount(); c++ {
		h0 := m.CellToSomeHalfedge(c)
		h := h0
		li := 0
		for {
			local[h] = li
			li++
			h = m.Halfedge[h].Next
			if h == h0 {
				break
			}
		}
	}

	for h, he := range m.Halfedge {
		if he.Main != 1 {
			continue
		}
		e := j[h]
		opp := m.Halfedge[he.Opp]
		res[e][0] = he.Cell
		res[e][2] = local[h]
		res[e][1] = opp.Cell
		res[e][3] = local[he.Opp]
	}
	for e := range res {
		if res[e][1] == m.SentinelCell() {
			res[e][1] = res[e][0]
			res[e][3] = res[e][2]
		}
	}
	return res
}

// CellToCell returns the symmetric cell-adjacency lists built from
// EdgeToCells: adj[c] holds every non-sentinel cell sharing a rim edge
// with c (the sentinel itself is never reported as a neighbor).
func CellToCell(m *mesh.Mesh) [][]int {
	adj := make([][]int, m.CellCount())
	for _, e := range EdgeToCells(m) {
		l, r := e[0], e[1]
		if l == r {
			continue // boundary edge, no interior neighbor
		}
		adj[l] = append(adj[l], r)
		adj[r] = append(adj[r], l)
	}
	return adj
}

// BoundaryEdgeFlag reports, for each undirected edge, whether it lies
// on the domain boundary (left_cell == right_cell after the sentinel
// substitution of EdgeToCells).
func BoundaryEdgeFlag(m *mesh.Mesh) []bool {
	flag := make([]bool, m.EdgeCount())
	for e, ec := range EdgeToCells(m) {
		flag[e] = ec[0] == ec[1]
	}
	return flag
}

// BoundaryNodeFlag reports, for each node, whether it is an endpoint
// of a boundary edge.
func BoundaryNodeFlag(m *mesh.Mesh) []bool {
	flag := make([]bool, m.NodeCount())
	isBd := BoundaryEdgeFlag(m)
	for e, nodes := range EdgeToNodes(m) {
		if isBd[e] {
			flag[nodes[0]] = true
			flag[nodes[1]] = true
		}
	}
	return flag
}

// BoundaryCellFlag reports, for each cell, whether it touches the
// boundary through at least one of its rim edges.
func BoundaryCellFlag(m *mesh.Mesh) []bool {
	flag := make([]bool, m.CellCount())
	isBd := BoundaryEdgeFlag(m)
	for e, ec := range EdgeToCells(m) {
		if isBd[e] {
			flag[ec[0]] = true
		}
	}
	return flag
}

// NodeToNode returns, for each node, the set of nodes directly
// connected to it by an edge.
func NodeToNode(m *mesh.Mesh) [][]int {
	adj := make([][]int, m.NodeCount())
	for _, nodes := range EdgeToNodes(m) {
		a, b := nodes[0], nodes[1]
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	return adj
}

// NodeToCell returns, for each node, the set of non-sentinel cells
// incident to it.
func NodeToCell(m *mesh.Mesh) [][]int {
	adj := make([][]int, m.NodeCount())
	seen := make([]map[int]bool, m.NodeCount())
	for _, he := range m.Halfedge {
		if he.Cell == m.SentinelCell() {
			continue
		}
		if seen[he.To] == nil {
			seen[he.To] = make(map[int]bool)
		}
		if !seen[he.To][he.Cell] {
			seen[he.To][he.Cell] = true
			adj[he.To] = append(adj[he.To], he.Cell)
		}
	}
	return adj
}
