// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/io"
)

// CheckConsistency verifies the universal half-edge invariants that
// must hold after every public mutation: twin involution, next/prev
// inverse links, cell-cycle closure within the cell's valence, and
// the main-flag partition of each twin pair.
func CheckConsistency(tst *testing.T, m *Mesh, verbose bool) {

	// valence of each cell, sentinel included
	nv := make([]int, m.CellCount()+1)
	for _, he := range m.Halfedge {
		nv[he.Cell]++
	}

	for h, he := range m.Halfedge {

		// twin involution
		if m.Halfedge[he.Opp].Opp != h || he.Opp == h {
			tst.Errorf("opp[opp[%d]] != %d\n", h, h)
			return
		}

		// next/prev are inverse
		if m.Halfedge[he.Next].Prev != h || m.Halfedge[he.Prev].Next != h {
			tst.Errorf("next/prev around half-edge %d are not inverse\n", h)
			return
		}

		// same cell along the cycle
		if he.Cell != m.Halfedge[he.Next].Cell {
			tst.Errorf("cell changes along the cycle at half-edge %d\n", h)
			return
		}

		// main-flag partition
		if he.Main+m.Halfedge[he.Opp].Main != 1 {
			tst.Errorf("main[%d] + main[opp[%d]] != 1\n", h, h)
			return
		}

		// cycle closes within the valence
		steps := 0
		for x := m.Halfedge[h].Next; x != h; x = m.Halfedge[x].Next {
			steps++
			if steps > nv[he.Cell] {
				tst.Errorf("walking next from %d does not close within %d steps\n", h, nv[he.Cell])
				return
			}
		}
	}

	// every non-sentinel cell owns at least one half-edge
	for c := 0; c < m.CellCount(); c++ {
		if nv[c] == 0 {
			tst.Errorf("cell %d has no half-edges\n", c)
			return
		}
	}

	if verbose {
		io.Pfgrey("consistency ok: NN=%d NE=%d NC=%d\n", m.NodeCount(), m.EdgeCount(), m.CellCount())
	}
}

// SentinelCycleLengths walks the sentinel half-edges and returns the
// length of each disjoint boundary cycle. A simply connected domain
// has exactly one; each hole adds another.
func SentinelCycleLengths(m *Mesh) (lengths []int) {
	seen := make(map[int]bool)
	for h, he := range m.Halfedge {
		if he.Cell != m.SentinelCell() || seen[h] {
			continue
		}
		n := 0
		for x := h; !seen[x]; x = m.Halfedge[x].Next {
			seen[x] = true
			n++
		}
		lengths = append(lengths, n)
	}
	return
}
