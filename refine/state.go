// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refine

import (
	"github.com/blevesearch/geo/r2"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/halfmesh/mesh"
)

// state is the working copy Poly mutates across the refinement
// phases: a plain half-edge slice plus its level arrays, grown in
// place by append as new half-edges are created. m and orig give the
// later phases a stable, un-mutated view of the pre-refinement mesh
// to read node coordinates and cell membership from.
type state struct {
	m        *mesh.Mesh
	orig     []mesh.HalfEdge
	halfedge []mesh.HalfEdge
	hlevel   []int
	clevel   []int
	subdom   []int
	nc       int
}

func newState(m *mesh.Mesh) *state {
	return &state{
		m:        m,
		orig:     append([]mesh.HalfEdge(nil), m.Halfedge...),
		halfedge: append([]mesh.HalfEdge(nil), m.Halfedge...),
		hlevel:   append([]int(nil), m.HalfedgeLevel...),
		clevel:   append([]int(nil), m.CellLevel...),
		subdom:   append([]int(nil), m.Subdomain...),
		nc:       m.CellCount(),
	}
}

// selectAndSplitEdges selects every splittable half-edge of a marked
// cell, closes the
// selection under opp so a split edge's two sides always agree,
// inserts one midpoint node per selected edge, and grafts in the new
// half-edge covering the near half of each split edge. It returns the
// new midpoint coordinates and the ascending list of selected main
// half-edges (one per new edge, in the order their midpoint node ids
// were assigned).
func (st *state) selectAndSplitEdges(marked []bool, data map[string][]float64) (coords []r2.Point, mainSel []int) {
	n0 := len(st.halfedge)

	orig := make([]bool, n0)
	for h := 0; h < n0; h++ {
		he := st.halfedge[h]
		if marked[he.Cell] && st.hlevel[h] <= st.clevel[he.Cell] && st.hlevel[he.Prev] <= st.clevel[he.Cell] {
			orig[h] = true
		}
	}
	selected := append([]bool(nil), orig...)
	for h := 0; h < n0; h++ {
		if !orig[h] && orig[st.halfedge[h].Opp] {
			selected[h] = true
		}
	}

	for h := 0; h < n0; h++ {
		if selected[h] && st.halfedge[h].Main == 1 {
			mainSel = append(mainSel, h)
		}
	}
	NE1 := len(mainSel)
	nn0 := st.m.NodeCount()

	coords = make([]r2.Point, NE1)
	nodeLevel := make([]int, NE1)
	midNode := utl.IntVals(n0, -1)
	for i, h := range mainSel {
		he := st.halfedge[h]
		opp := st.halfedge[he.Opp]
		p, q := st.m.Node[opp.To], st.m.Node[he.To]
		coords[i] = p.Add(q).Mul(0.5)
		mid := nn0 + i
		midNode[h] = mid
		midNode[he.Opp] = mid
		nodeLevel[i] = utl.Imax(st.hlevel[h], st.hlevel[he.Prev]) + 1
	}

	var selList []int
	for h := 0; h < n0; h++ {
		if selected[h] {
			selList = append(selList, h)
		}
	}
	newIdx := make(map[int]int, len(selList))
	for i, h := range selList {
		newIdx[h] = n0 + i
	}

	for _, h := range selList {
		he := st.halfedge[h]
		child := mesh.HalfEdge{
			To:   midNode[h],
			Cell: he.Cell,
			Prev: he.Prev,
			Next: h,
			Opp:  he.Opp,
			Main: he.Main,
		}
		st.halfedge = append(st.halfedge, child)
		st.hlevel = append(st.hlevel, utl.Imax(st.hlevel[h], st.hlevel[he.Prev])+1)
	}
	for _, h := range selList {
		oppOriginal := st.halfedge[h].Opp
		st.halfedge[h].Opp = newIdx[oppOriginal]
		st.halfedge[h].Prev = newIdx[h]
	}
	total := len(st.halfedge)
	for x := 0; x < total; x++ {
		p := st.halfedge[x].Prev
		st.halfedge[p].Next = x
	}

	for key, values := range data {
		extended := make([]float64, NE1)
		for i, h := range mainSel {
			he := st.orig[h] // pre-split view: Opp still points at the parent twin
			extended[i] = (values[st.orig[he.Opp].To] + values[he.To]) / 2
		}
		data[key] = append(values, extended...)
	}

	extendNodeLevel(st.m, nodeLevel)
	return coords, mainSel
}

// splitMarkedCells cuts every marked cell into one wedge per fresh
// rim half-edge, fanned out from a new barycenter node. nn0 and ne1
// are the node count before edge splitting and the number of
// midpoints it inserted, giving the absolute id to assign the first
// barycenter node.
func (st *state) splitMarkedCells(marked []bool, bc []r2.Point, nn0, ne1 int) (wedgeCoords []r2.Point) {
	n1 := len(st.halfedge)
	nc := st.nc
	sentinel := nc

	flag := make([]bool, n1)
	for h := 0; h < n1; h++ {
		he := st.halfedge[h]
		flag[h] = st.hlevel[h]-st.clevel[he.Cell] == 1
	}

	NV := make([]int, nc+1)
	for h := 0; h < n1; h++ {
		if flag[h] {
			NV[st.halfedge[h].Cell]++
		}
	}
	NHE := 0
	for c := 0; c < nc; c++ {
		if marked[c] {
			NHE += NV[c]
		}
	}
	if NHE == 0 {
		return nil
	}

	var idx0 []int
	for h := 0; h < n1; h++ {
		if flag[h] && marked[st.halfedge[h].Cell] {
			idx0 = append(idx0, h)
		}
	}
	nex0 := make([]int, len(idx0))
	for i, h := range idx0 {
		nex0[i] = st.halfedge[h].Next
	}

	for h := 0; h < n1; h++ {
		if st.halfedge[h].Cell == sentinel {
			st.halfedge[h].Cell = nc + NHE
		}
	}

	cellidx := make([]int, len(idx0))
	for i, h := range idx0 {
		cellidx[i] = st.halfedge[h].Cell
		st.halfedge[h].Cell = nc + i
	}
	for c := 0; c < nc; c++ {
		if marked[c] {
			st.clevel[c]++
		}
	}
	clevel1 := make([]int, len(idx0))
	for i := range idx0 {
		clevel1[i] = st.clevel[cellidx[i]]
	}

	idx1 := append([]int(nil), idx0...)
	for {
		pre := make([]int, len(idx1))
		more := false
		for i, h := range idx1 {
			pre[i] = st.halfedge[h].Prev
			if !flag[pre[i]] {
				more = true
			}
		}
		if !more {
			break
		}
		for i := range idx1 {
			if !flag[pre[i]] {
				idx1[i] = pre[i]
			}
		}
		for i := range idx1 {
			st.halfedge[idx1[i]].Cell = st.halfedge[idx0[i]].Cell
		}
	}
	pre1 := make([]int, len(idx1))
	for i, h := range idx1 {
		pre1[i] = st.halfedge[h].Prev
	}

	posOfIdx1 := make(map[int]int, len(idx1))
	posOfIdx0 := make(map[int]int, len(idx0))
	for i, h := range idx1 {
		posOfIdx1[h] = i
	}
	for i, h := range idx0 {
		posOfIdx0[h] = i
	}

	cell2newNode := make([]int, nc+1)
	nextNode := nn0 + ne1
	var markedOrder []int
	for c := 0; c < nc; c++ {
		if marked[c] {
			cell2newNode[c] = nextNode
			wedgeCoords = append(wedgeCoords, bc[c])
			markedOrder = append(markedOrder, c)
			nextNode++
		}
	}

	N := n1
	spokeOut := make([]int, len(idx0))
	spokeIn := make([]int, len(idx0))
	for i := range idx0 {
		spokeOut[i] = N + i
		spokeIn[i] = N + len(idx0) + i
		st.halfedge[idx0[i]].Next = spokeOut[i]
		st.halfedge[idx1[i]].Prev = spokeIn[i]
	}

	nodeLevel := make([]int, len(wedgeCoords))
	for pos, c := range markedOrder {
		nodeLevel[pos] = st.clevel[c]
	}

	newHE := make([]mesh.HalfEdge, 2*len(idx0))
	newLvl := make([]int, 2*len(idx0))
	for i := range idx0 {
		j := posOfIdx1[nex0[i]]
		newHE[i] = mesh.HalfEdge{
			To:   cell2newNode[cellidx[i]],
			Cell: st.halfedge[idx0[i]].Cell,
			Next: spokeIn[i],
			Prev: idx0[i],
			Opp:  spokeIn[j],
			Main: 1,
		}
		newLvl[i] = clevel1[i]
	}
	for i := range idx0 {
		k := posOfIdx0[pre1[i]]
		newHE[len(idx0)+i] = mesh.HalfEdge{
			To:   st.halfedge[pre1[i]].To,
			Cell: st.halfedge[idx1[i]].Cell,
			Next: idx1[i],
			Prev: spokeOut[i],
			Opp:  spokeOut[k],
			Main: 0,
		}
		newLvl[len(idx0)+i] = clevel1[i]
	}
	st.halfedge = append(st.halfedge, newHE...)
	st.hlevel = append(st.hlevel, newLvl...)

	newClevel := append(append([]int(nil), st.clevel[:nc]...), clevel1...)
	newClevel = append(newClevel, 0)
	st.clevel = newClevel

	// children inherit the parent's subdomain tag
	newSubdom := append([]int(nil), st.subdom[:nc]...)
	for i := range idx0 {
		newSubdom = append(newSubdom, st.subdom[cellidx[i]])
	}
	newSubdom = append(newSubdom, 0)
	st.subdom = newSubdom

	extendNodeLevel(st.m, nodeLevel)
	return wedgeCoords
}

// compact renumbers used cell ids (including the relocated sentinel)
// into a contiguous 0..NC range, in ascending order of their current
// id, the same way coarsening's own relabel step works.
func (st *state) compact() (finalHalfedge []mesh.HalfEdge, finalCLevel, finalSubdom []int, finalHLevel []int, ncFinal int) {
	maxCell := 0
	for _, he := range st.halfedge {
		if he.Cell > maxCell {
			maxCell = he.Cell
		}
	}
	used := make([]bool, maxCell+1)
	for _, he := range st.halfedge {
		used[he.Cell] = true
	}
	idxmap := utl.IntRange(maxCell + 1)
	next := 0
	for c := 0; c <= maxCell; c++ {
		if used[c] {
			idxmap[c] = next
			next++
		}
	}
	finalHalfedge = make([]mesh.HalfEdge, len(st.halfedge))
	for h, he := range st.halfedge {
		he.Cell = idxmap[he.Cell]
		finalHalfedge[h] = he
	}
	finalCLevel = make([]int, next)
	finalSubdom = make([]int, next)
	for c := 0; c <= maxCell; c++ {
		if used[c] {
			finalCLevel[idxmap[c]] = st.clevel[c]
			finalSubdom[idxmap[c]] = st.subdom[c]
		}
	}
	return finalHalfedge, finalCLevel, finalSubdom, st.hlevel, next - 1
}

// extendNodeLevel appends levels to m.NodeLevel directly; refine runs
// strictly additively on node ids so there is never a prior tail to
// rewrite, only a new one to grow.
func extendNodeLevel(m *mesh.Mesh, levels []int) {
	m.NodeLevel = append(m.NodeLevel, levels...)
}
