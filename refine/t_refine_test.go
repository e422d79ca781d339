// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refine

import (
	"math"
	"testing"

	"github.com/blevesearch/geo/r2"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/halfmesh/mesh"
	"github.com/cpmech/halfmesh/meshimport"
	"github.com/cpmech/halfmesh/topo"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// square5 is the 2x2 square cut into 5 polygonal cells.
func square5(tst *testing.T) *mesh.Mesh {
	pm := &meshimport.PolygonMesh{
		Node: []r2.Point{
			{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2},
			{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2},
			{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2},
		},
		Cell:     []int{0, 3, 4, 4, 1, 0, 1, 4, 5, 2, 3, 6, 7, 4, 4, 7, 8, 5},
		Location: []int{0, 3, 6, 10, 14, 18},
	}
	m, err := meshimport.FromPolygonMesh(pm)
	if err != nil {
		tst.Fatalf("cannot build mesh:\n%v", err)
	}
	return m
}

// markCells builds a marked vector of size NC+1 with the given cells set.
func markCells(m *mesh.Mesh, cells ...int) []bool {
	marked := make([]bool, m.CellCount()+1)
	for _, c := range cells {
		marked[c] = true
	}
	return marked
}

func totalArea(m *mesh.Mesh) (total float64) {
	for _, a := range topo.CellArea(m) {
		total += a
	}
	return
}

func Test_refine01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("refine01. one pass on the 5-cell square")

	m := square5(tst)
	err := Poly(m, markCells(m, 2), nil, false)
	if err != nil {
		tst.Errorf("refine failed:\n%v", err)
		return
	}
	mesh.CheckConsistency(tst, m, chk.Verbose)

	// cell 2 had 4 splittable rim edges => 4 children
	chk.IntAssert(m.CellCount(), 8)
	chk.IntAssert(m.NodeCount(), 14)         // 9 + 4 midpoints + 1 barycenter
	chk.IntAssert(m.EdgeCount(), 21)         // 13 + 4 split + 4 spokes
	chk.Float64(tst, "area", 1e-15, totalArea(m), 4.0)

	// the barycenter node of the old cell 2 shows up at (0.5, 1.5)
	found := -1
	for n, p := range m.Node {
		if math.Abs(p.X-0.5) < 1e-15 && math.Abs(p.Y-1.5) < 1e-15 {
			found = n
		}
	}
	if found < 0 {
		tst.Errorf("barycenter node (0.5,1.5) is missing\n")
		return
	}

	// exactly 4 cells touch the new barycenter node, all at level 1
	// with 4 vertices each, and they inherit the parent's subdomain
	nv := topo.VerticesPerCell(m)
	star := 0
	for _, cells := range topo.NodeToCell(m)[found : found+1] {
		for _, c := range cells {
			star++
			chk.IntAssert(m.CellLevel[c], 1)
			chk.IntAssert(nv[c], 4)
			chk.IntAssert(m.Subdomain[c], 1)
		}
	}
	chk.IntAssert(star, 4)

	// untouched cells remain at level 0
	nzero := 0
	for c := 0; c < m.CellCount(); c++ {
		if m.CellLevel[c] == 0 {
			nzero++
		}
	}
	chk.IntAssert(nzero, 4)
}

func Test_refine02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("refine02. successive refinement passes")

	m := square5(tst)
	chk.Ints(tst, "initial sentinel cycle", mesh.SentinelCycleLengths(m), []int{8})

	sequence := [][]int{{2}, {6}, {3}, {1, 5}, {1, 12}, {0, 21}}
	for pass, cells := range sequence {
		for _, c := range cells {
			if c >= m.CellCount() {
				tst.Fatalf("pass %d marks cell %d but NC=%d\n", pass, c, m.CellCount())
			}
		}
		err := Poly(m, markCells(m, cells...), nil, false)
		if err != nil {
			tst.Errorf("pass %d failed:\n%v", pass, err)
			return
		}
		mesh.CheckConsistency(tst, m, chk.Verbose)
		chk.Float64(tst, io.Sf("area after pass %d", pass), 1e-14, totalArea(m), 4.0)

		// no two half-edges may share the same (prev, next) pair
		type link struct{ p, n int }
		seen := make(map[link]int)
		for h, he := range m.Halfedge {
			key := link{he.Prev, he.Next}
			if g, ok := seen[key]; ok {
				tst.Errorf("half-edges %d and %d share (prev,next)\n", g, h)
				return
			}
			seen[key] = h
		}

		// the boundary stays one single closed cycle
		cycles := mesh.SentinelCycleLengths(m)
		chk.IntAssert(len(cycles), 1)

		if chk.Verbose {
			io.Pfcyan("pass %d: NN=%d NE=%d NC=%d boundary=%d\n", pass,
				m.NodeCount(), m.EdgeCount(), m.CellCount(), cycles[0])
		}
	}
}

func Test_refine03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("refine03. edge-only mode")

	m := square5(tst)
	err := Poly(m, markCells(m, 2), nil, true)
	if err != nil {
		tst.Errorf("refine failed:\n%v", err)
		return
	}
	mesh.CheckConsistency(tst, m, chk.Verbose)

	// midpoints appear on the rim of cell 2, but no cell is cut
	chk.IntAssert(m.CellCount(), 5)
	chk.IntAssert(m.NodeCount(), 13) // 9 + 4 midpoints
	chk.IntAssert(m.EdgeCount(), 17) // 13 + 4 split halves
	chk.Float64(tst, "area", 1e-15, totalArea(m), 4.0)
}

func Test_refine04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("refine04. node data propagation")

	m := square5(tst)

	// a linear field sampled at the 9 nodes: f(x,y) = x + 10*y
	f := make([]float64, m.NodeCount())
	for n, p := range m.Node {
		f[n] = p.X + 10*p.Y
	}
	data := map[string][]float64{"f": f}

	err := Poly(m, markCells(m, 2), data, false)
	if err != nil {
		tst.Errorf("refine failed:\n%v", err)
		return
	}

	// the array grew to the new node count, and, the field being
	// linear, midpoint and barycenter values interpolate it exactly
	chk.IntAssert(len(data["f"]), m.NodeCount())
	for n, p := range m.Node {
		chk.Float64(tst, io.Sf("f[%d]", n), 1e-14, data["f"][n], p.X+10*p.Y)
	}
}

func Test_refine05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("refine05. empty and malformed marks")

	m := square5(tst)

	// empty mark: silent no-op
	err := Poly(m, make([]bool, m.CellCount()+1), nil, false)
	if err != nil {
		tst.Errorf("empty mark must be a no-op, not an error:\n%v", err)
		return
	}
	chk.IntAssert(m.CellCount(), 5)
	chk.IntAssert(m.NodeCount(), 9)

	// wrong length
	if err := Poly(m, make([]bool, 3), nil, false); err == nil {
		tst.Errorf("wrong marked length must fail\n")
	}

	// sentinel slot must stay false
	bad := make([]bool, m.CellCount()+1)
	bad[m.CellCount()] = true
	if err := Poly(m, bad, nil, false); err == nil {
		tst.Errorf("marked sentinel slot must fail\n")
	}

	// the unsupported triangle/quad entry points report failure
	if err := Tri(m, make([]bool, m.CellCount()+1)); err == nil {
		tst.Errorf("Tri must report unsupported\n")
	}
	if err := Quad(m, make([]bool, m.CellCount()+1)); err == nil {
		tst.Errorf("Quad must report unsupported\n")
	}
}
