// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coarsen

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/halfmesh/mesh"
)

// Tri is the entry point for triangle-specific coarsening. Not
// implemented: it reports failure rather than guessing at an inverse
// of the unfinished triangle refinement.
func Tri(m *mesh.Mesh, marked []bool) error {
	return chk.Err("triangle coarsening is not implemented; use Poly instead\n")
}

// Quad is the entry point for quadrilateral-specific coarsening.
// Not implemented, for the same reason as Tri.
func Quad(m *mesh.Mesh, marked []bool) error {
	return chk.Err("quadrilateral coarsening is not implemented; use Poly instead\n")
}
