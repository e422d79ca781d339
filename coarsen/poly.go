// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package coarsen implements polygonal coarsening, the inverse of
// refine.Poly: nodes whose entire star sits inside marked cells at
// the same refinement depth are removed, splicing their incident
// wedges back into one larger cell, with a follow-up pass that also
// collapses the doubled edges the splicing leaves behind.
package coarsen

import (
	"github.com/blevesearch/geo/r2"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/halfmesh/mesh"
)

// Poly runs one pass of polygonal coarsening over m. marked must have
// length CellCount()+1 with the last (sentinel) slot false. When no
// node qualifies for removal, either because marked is all false or
// because the marked cells surround no removable node, m is left
// untouched.
func Poly(m *mesh.Mesh, marked []bool) error {
	nc := m.CellCount()
	if len(marked) != nc+1 {
		return chk.Err("ShapeMismatch: marked has length %d, want %d\n", len(marked), nc+1)
	}
	if marked[nc] {
		return chk.Err("ShapeMismatch: marked[NC] (the sentinel slot) must be false\n")
	}

	nn0 := m.NodeCount()
	halfedge := append([]mesh.HalfEdge(nil), m.Halfedge...)
	hlevel := append([]int(nil), m.HalfedgeLevel...)
	clevel := append([]int(nil), m.CellLevel...)

	// Step A: which nodes are eligible for removal: every incident
	// half-edge must sit at its cell's current level, agree in level
	// with its twin, and belong to a marked cell.
	isRNode := make([]bool, nn0)
	for i := range isRNode {
		isRNode[i] = true
	}
	for h, he := range halfedge {
		if hlevel[h] != clevel[he.Cell] {
			isRNode[he.To] = false
		}
	}
	for h, he := range halfedge {
		if hlevel[h] != hlevel[he.Opp] {
			isRNode[he.To] = false
		}
	}
	for _, he := range halfedge {
		if !marked[he.Cell] {
			isRNode[he.To] = false
		}
	}
	for n := range isRNode {
		if m.FixedNode[n] {
			isRNode[n] = false
		}
	}

	nn := 0
	for _, v := range isRNode {
		if v {
			nn++
		}
	}
	if nn == 0 {
		return nil // no node qualifies, nothing to coarsen
	}

	// Every half-edge touching a removable node (on either end) belongs
	// to a cell that is about to be merged away.
	removedOldCell := make([]bool, nc+nn+1)
	isMarkedHEdge := make([]bool, len(halfedge))
	for h, he := range halfedge {
		if isRNode[he.To] || isRNode[halfedge[he.Opp].To] {
			isMarkedHEdge[h] = true
			removedOldCell[he.Cell] = true
		}
	}

	// Temporary ids: each removable node gets its own merged-cell id
	// NC..NC+nn-1, and the sentinel is relocated out of that range.
	nidxmap := utl.IntRange(nn0)
	next := nc
	for n := 0; n < nn0; n++ {
		if isRNode[n] {
			nidxmap[n] = next
			next++
		}
	}
	cidxmap := utl.IntRange(nc + 1)
	cidxmap[nc] = nc + nn
	mergedTag := make([]int, nn)
	for _, he := range halfedge {
		if isRNode[he.To] {
			cidxmap[he.Cell] = nidxmap[he.To]
			mergedTag[nidxmap[he.To]-nc] = m.Subdomain[he.Cell]
		}
	}
	for h := range halfedge {
		halfedge[h].Cell = cidxmap[halfedge[h].Cell]
	}

	nlevel := make([]int, nn0)
	for h, he := range halfedge {
		nlevel[he.To] = hlevel[h]
	}
	level := make([]int, 0, nn)
	for n := 0; n < nn0; n++ {
		if isRNode[n] {
			lv := nlevel[n] - 1
			if lv < 0 {
				lv = 0
			}
			level = append(level, lv)
		}
	}
	clevel = append(append(append([]int(nil), clevel[:nc]...), level...), 0)
	subdom := append(append(append([]int(nil), m.Subdomain[:nc]...), mergedTag...), 0)

	// Step B: splice every removable node's spokes out of the rim.
	origNext := make([]int, len(halfedge))
	for h, he := range halfedge {
		origNext[h] = he.Next
	}
	flag := make([]bool, len(halfedge))
	for h := range halfedge {
		flag[h] = isRNode[halfedge[origNext[h]].To]
	}
	newNext := make([]int, len(halfedge))
	for h := range halfedge {
		if flag[h] {
			oppOfNext := halfedge[origNext[h]].Opp
			newNext[h] = halfedge[oppOfNext].Next
		}
	}
	for h := range halfedge {
		if flag[h] {
			halfedge[h].Next = newNext[h]
		}
	}
	for h := range halfedge {
		if flag[h] {
			halfedge[newNext[h]].Prev = h
		}
	}

	// Step C: a splice can leave two consecutive rim half-edges h and
	// next(h) bordering the same neighbor across a split edge
	// (opp(next(opp(next(h)))) == h); remove h, let next(h) span both
	// halves, and fold h's head node into the removal set.
	cascade := make([]bool, len(halfedge))
	for h, he := range halfedge {
		if isMarkedHEdge[h] {
			continue
		}
		n1 := he.Next
		o1 := halfedge[n1].Opp
		n2 := halfedge[o1].Next
		o2 := halfedge[n2].Opp
		if o2 == h && hlevel[h] > hlevel[he.Next] && hlevel[h] > hlevel[he.Prev] && !m.FixedNode[he.To] {
			cascade[h] = true
		}
	}
	cascadeNext := make([]int, len(halfedge))
	cascadePrev := make([]int, len(halfedge))
	cascadeOpp := make([]int, len(halfedge))
	for h, he := range halfedge {
		if cascade[h] {
			cascadeNext[h] = he.Next
			cascadePrev[h] = he.Prev
			cascadeOpp[h] = he.Opp
		}
	}
	for h := range halfedge {
		if cascade[h] {
			halfedge[cascadePrev[h]].Next = cascadeNext[h]
		}
	}
	for h := range halfedge {
		if cascade[h] {
			halfedge[cascadeNext[h]].Prev = cascadePrev[h]
		}
	}
	for h := range halfedge {
		if cascade[h] {
			halfedge[cascadeNext[h]].Opp = cascadeOpp[h]
		}
	}
	for h := range halfedge {
		if cascade[h] {
			isMarkedHEdge[h] = true
			isRNode[halfedge[h].To] = true
		}
	}

	// Step D: relabel/compact nodes, half-edges, then cells.
	nodeRemap := make([]int, nn0)
	cnt := 0
	for n := 0; n < nn0; n++ {
		if !isRNode[n] {
			nodeRemap[n] = cnt
			cnt++
		}
	}
	for h := range halfedge {
		halfedge[h].To = nodeRemap[halfedge[h].To]
	}

	edgeRemap := utl.IntRange(len(halfedge))
	cnt = 0
	for h := range halfedge {
		if !isMarkedHEdge[h] {
			edgeRemap[h] = cnt
			cnt++
		}
	}
	finalHalfedge := make([]mesh.HalfEdge, 0, cnt)
	finalHLevel := make([]int, 0, cnt)
	for h, he := range halfedge {
		if isMarkedHEdge[h] {
			continue
		}
		finalHalfedge = append(finalHalfedge, mesh.HalfEdge{
			To:   he.To,
			Cell: he.Cell,
			Next: edgeRemap[he.Next],
			Prev: edgeRemap[he.Prev],
			Opp:  edgeRemap[he.Opp],
			Main: he.Main,
		})
		finalHLevel = append(finalHLevel, hlevel[h])
	}

	isKeptCell := make([]bool, nc+nn+1)
	for _, he := range finalHalfedge {
		isKeptCell[he.Cell] = true
	}
	cellRemap := make([]int, nc+nn+1)
	cnt = 0
	for c := 0; c <= nc+nn; c++ {
		if isKeptCell[c] {
			cellRemap[c] = cnt
			cnt++
		}
	}
	ncFinal := cnt
	for i := range finalHalfedge {
		finalHalfedge[i].Cell = cellRemap[finalHalfedge[i].Cell]
	}

	finalCLevel := make([]int, 0, len(clevel))
	finalSubdom := make([]int, 0, len(subdom))
	for c, v := range clevel {
		if !removedOldCell[c] {
			finalCLevel = append(finalCLevel, v)
			finalSubdom = append(finalSubdom, subdom[c])
		}
	}

	newNode := make([]r2.Point, 0, nn0-nn)
	newNodeLevel := make([]int, 0, nn0-nn)
	newFixed := make([]bool, 0, nn0-nn)
	for n := 0; n < nn0; n++ {
		if !isRNode[n] {
			newNode = append(newNode, m.Node[n])
			newNodeLevel = append(newNodeLevel, m.NodeLevel[n])
			newFixed = append(newFixed, m.FixedNode[n])
		}
	}

	m.Node = newNode
	m.NodeLevel = newNodeLevel
	m.FixedNode = newFixed
	m.CellLevel = finalCLevel
	m.Subdomain = finalSubdom
	m.HalfedgeLevel = finalHLevel
	m.Reinit(len(newNode), ncFinal-1, finalHalfedge)
	return nil
}
