// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/gosl/chk"

// Kind identifies one of the five entity families addressed by
// SetData/GetData and Entity/EntityBarycenter.
type Kind int

// entity kinds
const (
	KindNode Kind = iota
	KindEdge
	KindCell
	KindHalfedge
	KindMesh
)

// ParseKind maps the external string spelling of a kind ("node",
// "edge"/"face", "cell", "halfedge", "mesh") to a Kind. Anything else
// is an error.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "node":
		return KindNode, nil
	case "edge", "face":
		return KindEdge, nil
	case "cell":
		return KindCell, nil
	case "halfedge":
		return KindHalfedge, nil
	case "mesh":
		return KindMesh, nil
	default:
		return 0, chk.Err("BadEntityKind: %q is not a recognized entity kind\n", s)
	}
}

// SetData stores values for a node/edge/cell/half-edge/mesh-scalar
// attribute named name, keyed on kind. For kind==KindMesh values must
// have length 1; cell arrays carry the extra sentinel slot. An error
// is returned when values has the wrong length for the requested kind.
func (m *Mesh) SetData(name string, values []float64, kind Kind) error {
	switch kind {
	case KindNode:
		if len(values) != m.NodeCount() {
			return chk.Err("ShapeMismatch: node data %q has length %d, want %d\n", name, len(values), m.NodeCount())
		}
		m.NodeData[name] = values
	case KindEdge:
		if len(values) != m.EdgeCount() {
			return chk.Err("ShapeMismatch: edge data %q has length %d, want %d\n", name, len(values), m.EdgeCount())
		}
		m.EdgeData[name] = values
	case KindCell:
		if len(values) != m.CellCount()+1 {
			return chk.Err("ShapeMismatch: cell data %q has length %d, want %d\n", name, len(values), m.CellCount()+1)
		}
		m.CellData[name] = values
	case KindHalfedge:
		if len(values) != len(m.Halfedge) {
			return chk.Err("ShapeMismatch: half-edge data %q has length %d, want %d\n", name, len(values), len(m.Halfedge))
		}
		m.HalfedgeData[name] = values
	case KindMesh:
		if len(values) != 1 {
			return chk.Err("ShapeMismatch: mesh data %q must have exactly one value\n", name)
		}
		m.MeshData[name] = values[0]
	default:
		return chk.Err("BadEntityKind: kind %v is not recognized\n", kind)
	}
	return nil
}

// GetData returns the stored values for name under kind. Cell data is
// truncated to the live (non-sentinel) cell count.
func (m *Mesh) GetData(kind Kind, name string) ([]float64, error) {
	switch kind {
	case KindNode:
		v, ok := m.NodeData[name]
		if !ok {
			return nil, chk.Err("no node data named %q\n", name)
		}
		return v, nil
	case KindEdge:
		v, ok := m.EdgeData[name]
		if !ok {
			return nil, chk.Err("no edge data named %q\n", name)
		}
		return v, nil
	case KindCell:
		v, ok := m.CellData[name]
		if !ok {
			return nil, chk.Err("no cell data named %q\n", name)
		}
		return v[:m.CellCount()], nil
	case KindHalfedge:
		v, ok := m.HalfedgeData[name]
		if !ok {
			return nil, chk.Err("no half-edge data named %q\n", name)
		}
		return v, nil
	case KindMesh:
		v, ok := m.MeshData[name]
		if !ok {
			return nil, chk.Err("no mesh data named %q\n", name)
		}
		return []float64{v}, nil
	default:
		return nil, chk.Err("BadEntityKind: kind %v is not recognized\n", kind)
	}
}

// Entity returns the requested topological view. node returns the
// coordinate table itself; the ragged cell/edge views live in package
// topo since they are derived queries, not stored state.
func (m *Mesh) Entity(kind Kind) (interface{}, error) {
	switch kind {
	case KindNode:
		return m.Node, nil
	case KindHalfedge:
		return m.Halfedge, nil
	default:
		return nil, chk.Err("BadEntityKind: entity(%v) is handled by package topo, not mesh.Entity\n", kind)
	}
}
