// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01. reading polygonal mesh")

	msh, err := ReadMsh("data", "square5.msh")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	io.Pfcyan("%d verts, %d cells\n", len(msh.Verts), len(msh.Cells))
	chk.IntAssert(len(msh.Verts), 9)
	chk.IntAssert(len(msh.Cells), 5)
	chk.Float64(tst, "Xmin", 1e-17, msh.Xmin, 0)
	chk.Float64(tst, "Xmax", 1e-17, msh.Xmax, 2)
	chk.Float64(tst, "Ymin", 1e-17, msh.Ymin, 0)
	chk.Float64(tst, "Ymax", 1e-17, msh.Ymax, 2)
	chk.IntAssert(len(msh.VertTag2verts[-100]), 4)
	chk.IntAssert(len(msh.CellTag2cells[1]), 5)

	pm := msh.PolygonMesh()
	chk.Ints(tst, "location", pm.Location, []int{0, 3, 6, 10, 14, 18})
	chk.Ints(tst, "cell", pm.Cell[:6], []int{0, 3, 4, 4, 1, 0})
	chk.Ints(tst, "subdomain", pm.Subdomain, []int{1, 1, 1, 1, 1})
	if !pm.FixedNode[0] || pm.FixedNode[1] {
		tst.Errorf("fixed-node flags from vertex tags are wrong\n")
	}
}

func Test_msh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh02. error conditions")

	if _, err := ReadMsh("data", "nonexistent.msh"); err == nil {
		tst.Errorf("reading a missing file must fail\n")
	}
}
