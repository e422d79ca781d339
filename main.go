// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/halfmesh/coarsen"
	"github.com/cpmech/halfmesh/inp"
	"github.com/cpmech/halfmesh/marker"
	"github.com/cpmech/halfmesh/meshimport"
	"github.com/cpmech/halfmesh/refine"
	"github.com/cpmech/halfmesh/topo"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "square5", ".msh", true)
	verbose := io.ArgToBool(1, true)
	npasses := io.ArgToInt(2, 3)
	theta := io.ArgToFloat(3, 0.5)
	dorfler := io.ArgToBool(4, false)

	// message
	if verbose {
		io.PfWhite("\nHalfmesh -- adaptive half-edge polygonal meshes\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"number of adaptive passes", "npasses", npasses,
			"marking threshold", "theta", theta,
			"use Dorfler (L2) marking", "dorfler", dorfler,
		))
	}

	// read mesh
	msh, err := inp.ReadMsh(filepath.Dir(fnamepath), filepath.Base(fnamepath))
	if err != nil {
		chk.Panic("cannot read mesh %q:\n%v", fnamepath, err)
	}

	// build half-edge structure
	m, err := meshimport.FromPolygonMesh(msh.PolygonMesh())
	if err != nil {
		chk.Panic("cannot build half-edge mesh:\n%v", err)
	}
	m.Verbose = verbose

	method := marker.MAX
	if dorfler {
		method = marker.L2
	}

	// adaptive refinement driven by cell areas: big cells first, the
	// stand-in for an external error estimator
	for pass := 0; pass < npasses; pass++ {
		area := topo.CellArea(m)
		isMarkedCell, err := marker.Mark(area, theta, method)
		if err != nil {
			chk.Panic("marking failed:\n%v", err)
		}
		err = refine.Poly(m, isMarkedCell, nil, false)
		if err != nil {
			chk.Panic("refinement pass %d failed:\n%v", pass, err)
		}
		if verbose {
			io.Pfcyan("pass %d: NN=%d NE=%d NC=%d\n", pass, m.NodeCount(), m.EdgeCount(), m.CellCount())
		}
	}

	// coarsen everything back as far as the level discipline allows
	for {
		nc := m.CellCount()
		isMarkedCell := make([]bool, nc+1)
		for c := 0; c < nc; c++ {
			isMarkedCell[c] = m.CellLevel[c] > 0
		}
		err = coarsen.Poly(m, isMarkedCell)
		if err != nil {
			chk.Panic("coarsening failed:\n%v", err)
		}
		if m.CellCount() == nc {
			break
		}
		if verbose {
			io.Pforan("coarsen: NN=%d NE=%d NC=%d\n", m.NodeCount(), m.EdgeCount(), m.CellCount())
		}
	}

	// summary
	if verbose {
		area := topo.CellArea(m)
		total := 0.0
		for _, a := range area {
			total += a
		}
		io.Pf("\nfinal mesh %q: NN=%d NE=%d NC=%d  total area = %g\n",
			fnkey, m.NodeCount(), m.EdgeCount(), m.CellCount(), total)
	}
}
