// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/halfmesh/mesh"
)

// CellToNodeIncidence builds the NC x NN sparse cell-node incidence
// matrix, the matrix-shaped alternative to the ragged (indices,
// offsets) form of CellToNodes.
func CellToNodeIncidence(m *mesh.Mesh) *la.Triplet {
	nc, nn := m.CellCount(), m.NodeCount()
	t := new(la.Triplet)
	t.Init(nc, nn, len(m.Halfedge))
	for _, he := range m.Halfedge {
		if he.Cell != m.SentinelCell() {
			t.Put(he.Cell, he.To, 1.0)
		}
	}
	return t
}
