// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input-file layer: reading a polygonal
// mesh description from a JSON .msh file and handing it to
// meshimport. Mesh state is otherwise supplied in memory by the
// caller; there is no on-disk format for the half-edge tables.
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/blevesearch/geo/r2"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/halfmesh/meshimport"
)

// Vert holds vertex data
type Vert struct {
	Id  int       // id
	Tag int       // tag; negative means the vertex is pinned (fixed node)
	C   []float64 // coordinates (size==2)
}

// Cell holds cell data
type Cell struct {
	Id    int   // id
	Tag   int   // subdomain tag: +n interior, -n hole, 0 unreachable
	Verts []int // vertices, counter-clockwise
}

// Mesh holds a polygonal mesh read from a JSON file
type Mesh struct {

	// from JSON
	Verts []*Vert // vertices
	Cells []*Cell // cells

	// derived
	FnamePath  string  // complete filename path
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate

	// derived: maps
	VertTag2verts map[int][]*Vert // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell // cell tag => set of cells
}

// ReadMsh reads a polygonal mesh from a JSON file for adaptive
// mesh analyses
//  Note: returns nil on errors
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// new mesh
	o = new(Mesh)

	// read file
	o.FnamePath = filepath.Join(dir, fn)
	b, err := io.ReadFile(o.FnamePath)
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, err
	}

	// check
	if len(o.Verts) < 3 {
		return nil, chk.Err("mesh %q has too few vertices\n", o.FnamePath)
	}
	if len(o.Cells) < 1 {
		return nil, chk.Err("mesh %q has no cells\n", o.FnamePath)
	}

	// vertex related derived data
	o.Xmin = o.Verts[0].C[0]
	o.Ymin = o.Verts[0].C[1]
	o.Xmax = o.Xmin
	o.Ymax = o.Ymin
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {

		// check vertex id
		if v.Id != i {
			return nil, chk.Err("vertices ids must coincide with order in \"verts\" list. %d != %d\n", v.Id, i)
		}
		if len(v.C) != 2 {
			return nil, chk.Err("vertex %d must have 2 coordinates, not %d\n", v.Id, len(v.C))
		}

		// tags
		if v.Tag != 0 {
			o.VertTag2verts[v.Tag] = append(o.VertTag2verts[v.Tag], v)
		}

		// limits
		o.Xmin = utl.Min(o.Xmin, v.C[0])
		o.Xmax = utl.Max(o.Xmax, v.C[0])
		o.Ymin = utl.Min(o.Ymin, v.C[1])
		o.Ymax = utl.Max(o.Ymax, v.C[1])
	}

	// cell related derived data
	o.CellTag2cells = make(map[int][]*Cell)
	for i, c := range o.Cells {
		if c.Id != i {
			return nil, chk.Err("cells ids must coincide with order in \"cells\" list. %d != %d\n", c.Id, i)
		}
		if len(c.Verts) < 3 {
			return nil, chk.Err("cell %d must have at least 3 vertices, not %d\n", c.Id, len(c.Verts))
		}
		for _, n := range c.Verts {
			if n < 0 || n >= len(o.Verts) {
				return nil, chk.Err("cell %d refers to unknown vertex %d\n", c.Id, n)
			}
		}
		o.CellTag2cells[c.Tag] = append(o.CellTag2cells[c.Tag], c)
	}
	return
}

// PolygonMesh flattens the mesh into the ragged cell-node form
// consumed by meshimport.FromPolygonMesh. Cell tags become subdomain
// tags (zero tags are promoted to interior subdomain 1); vertices
// with a negative tag become fixed nodes.
func (o *Mesh) PolygonMesh() *meshimport.PolygonMesh {
	pm := &meshimport.PolygonMesh{
		Node:      make([]r2.Point, len(o.Verts)),
		Location:  make([]int, len(o.Cells)+1),
		Subdomain: make([]int, len(o.Cells)),
		FixedNode: make([]bool, len(o.Verts)),
	}
	for i, v := range o.Verts {
		pm.Node[i] = r2.Point{X: v.C[0], Y: v.C[1]}
		pm.FixedNode[i] = v.Tag < 0
	}
	for i, c := range o.Cells {
		pm.Cell = append(pm.Cell, c.Verts...)
		pm.Location[i+1] = len(pm.Cell)
		if c.Tag == 0 {
			pm.Subdomain[i] = 1
		} else {
			pm.Subdomain[i] = c.Tag
		}
	}
	return pm
}
