// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/blevesearch/geo/r2"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// unitSquare returns a single square cell with its four boundary
// twins owned by the sentinel cell (id 1).
func unitSquare() *Mesh {
	node := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	halfedge := []HalfEdge{
		{To: 1, Cell: 0, Next: 1, Prev: 3, Opp: 4, Main: 1},
		{To: 2, Cell: 0, Next: 2, Prev: 0, Opp: 5, Main: 1},
		{To: 3, Cell: 0, Next: 3, Prev: 1, Opp: 6, Main: 1},
		{To: 0, Cell: 0, Next: 0, Prev: 2, Opp: 7, Main: 1},
		{To: 0, Cell: 1, Next: 7, Prev: 5, Opp: 0, Main: 0},
		{To: 1, Cell: 1, Next: 4, Prev: 6, Opp: 1, Main: 0},
		{To: 2, Cell: 1, Next: 5, Prev: 7, Opp: 2, Main: 0},
		{To: 3, Cell: 1, Next: 6, Prev: 4, Opp: 3, Main: 0},
	}
	return New(node, halfedge, 1)
}

func Test_mesh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh01. half-edge store")

	m := unitSquare()
	chk.IntAssert(m.NodeCount(), 4)
	chk.IntAssert(m.EdgeCount(), 4)
	chk.IntAssert(m.CellCount(), 1)
	chk.IntAssert(m.SentinelCell(), 1)
	CheckConsistency(tst, m, chk.Verbose)

	// the cell-to-halfedge index points into the right cycle
	h := m.CellToSomeHalfedge(0)
	if m.Halfedge[h].Cell != 0 {
		tst.Errorf("cell2halfedge points at the wrong cell\n")
		return
	}

	// bounding box
	chk.Float64(tst, "XRange.Lo", 1e-17, m.XRange.Lo, 0)
	chk.Float64(tst, "XRange.Hi", 1e-17, m.XRange.Hi, 1)
	chk.Float64(tst, "YRange.Hi", 1e-17, m.YRange.Hi, 1)

	// one boundary cycle of length 4
	chk.Ints(tst, "sentinel cycles", SentinelCycleLengths(m), []int{4})
}

func Test_mesh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh02. data tables")

	m := unitSquare()

	// node data
	err := m.SetData("temperature", []float64{1, 2, 3, 4}, KindNode)
	if err != nil {
		tst.Errorf("SetData failed:\n%v", err)
		return
	}
	v, err := m.GetData(KindNode, "temperature")
	if err != nil {
		tst.Errorf("GetData failed:\n%v", err)
		return
	}
	chk.Array(tst, "temperature", 1e-17, v, []float64{1, 2, 3, 4})

	// cell data is sized NC+1 and truncated to NC on read
	err = m.SetData("subdomain", []float64{1, 0}, KindCell)
	if err != nil {
		tst.Errorf("SetData failed:\n%v", err)
		return
	}
	v, err = m.GetData(KindCell, "subdomain")
	if err != nil {
		tst.Errorf("GetData failed:\n%v", err)
		return
	}
	chk.IntAssert(len(v), 1)

	// mesh scalar
	err = m.SetData("time", []float64{0.5}, KindMesh)
	if err != nil {
		tst.Errorf("SetData failed:\n%v", err)
		return
	}
	v, err = m.GetData(KindMesh, "time")
	if err != nil {
		tst.Errorf("GetData failed:\n%v", err)
		return
	}
	chk.Float64(tst, "time", 1e-17, v[0], 0.5)

	// shape mismatch
	if err := m.SetData("bad", []float64{1, 2}, KindNode); err == nil {
		tst.Errorf("SetData with wrong length must fail\n")
	}

	// unknown name
	if _, err := m.GetData(KindEdge, "nope"); err == nil {
		tst.Errorf("GetData with unknown name must fail\n")
	}
}

func Test_mesh03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesh03. entity kinds")

	k, err := ParseKind("halfedge")
	if err != nil {
		tst.Errorf("ParseKind failed:\n%v", err)
		return
	}
	chk.IntAssert(int(k), int(KindHalfedge))

	// "face" is an alias for edge
	k, err = ParseKind("face")
	if err != nil {
		tst.Errorf("ParseKind failed:\n%v", err)
		return
	}
	chk.IntAssert(int(k), int(KindEdge))

	if _, err := ParseKind("tetrahedron"); err == nil {
		tst.Errorf("ParseKind must reject unknown kinds\n")
	}

	m := unitSquare()
	ent, err := m.Entity(KindNode)
	if err != nil {
		tst.Errorf("Entity failed:\n%v", err)
		return
	}
	if nodes, ok := ent.([]r2.Point); !ok || len(nodes) != 4 {
		tst.Errorf("Entity(node) must return the coordinate table\n")
	}
}
