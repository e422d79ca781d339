// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refine

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/halfmesh/mesh"
)

// Tri is the entry point for triangle-specific refinement (marked
// triangles cut into four). Not implemented: it reports failure
// rather than producing an inconsistent mesh. Poly on a mesh imported
// with meshimport.FromTriangleMesh covers the general case.
func Tri(m *mesh.Mesh, marked []bool) error {
	return chk.Err("triangle refinement is not implemented; use Poly instead\n")
}

// Quad is the entry point for quadrilateral-specific refinement.
// Not implemented, for the same reason as Tri.
func Quad(m *mesh.Mesh, marked []bool) error {
	return chk.Err("quadrilateral refinement is not implemented; use Poly instead\n")
}
