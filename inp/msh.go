// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data for modal analyses: mesh structures,
// the structured box generator and the simulation configuration
package inp

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/quan4444/gomodal/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Ztol is the geometric tolerance to locate vertices on planes
const Ztol = 1e-7

// Vert holds vertex data
type Vert struct {
	Id  int       // id
	Tag int       // tag; negative on tagged (boundary) vertices
	C   []float64 // coordinates (size==3)
}

// Cell holds cell data
type Cell struct {

	// input data
	Id    int    // id
	Tag   int    // tag
	Type  string // geometry type; e.g. "hex8"
	Verts []int  // vertices
	FTags []int  // face tags; 0 means interior face

	// derived
	Shp *shp.Shape // shape structure
}

// CellFaceId holds a cell and one of its face ids
type CellFaceId struct {
	C   *Cell // cell
	Fid int   // face id
}

// Mesh holds a conforming hexahedral mesh for modal analyses
type Mesh struct {

	// from JSON
	Verts []*Vert // vertices
	Cells []*Cell // cells

	// derived
	FnamePath  string  // complete filename path
	Ndim       int     // space dimension
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate
	Zmin, Zmax float64 // min and max z-coordinate

	// derived: maps
	VertTag2verts map[int][]*Vert      // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell      // cell tag => set of cells
	FaceTag2cells map[int][]CellFaceId // face tag => set of cells
	FaceTag2verts map[int][]int        // face tag => vertices on tagged face
	Ctype2cells   map[string][]*Cell   // cell type => set of cells
}

// ReadMsh reads a mesh from a JSON file
func ReadMsh(dir, fn string) (msh *Mesh, err error) {

	// new mesh
	var o Mesh
	o.FnamePath = filepath.Join(dir, fn)

	// read file; gosl's reader panics on failure
	defer func() {
		if r := recover(); r != nil {
			msh, err = nil, chk.Err("cannot read mesh file %q:\n%v", o.FnamePath, r)
		}
	}()
	b := io.ReadFile(o.FnamePath)

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal mesh file %q:\n%v", o.FnamePath, err)
	}

	// derived data
	err = o.CalcDerived()
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// CalcDerived computes derived data and checks the mesh.
// It must be called whenever Verts or Cells change.
func (o *Mesh) CalcDerived() (err error) {

	// check
	if len(o.Verts) < 8 {
		return fmt.Errorf("%w: mesh must have at least 8 vertices; got %d", ErrInvalidGeometry, len(o.Verts))
	}
	if len(o.Cells) < 1 {
		return fmt.Errorf("%w: mesh must have at least 1 cell", ErrInvalidGeometry)
	}

	// vertex related derived data
	o.Ndim = 3
	o.Xmin, o.Ymin, o.Zmin = o.Verts[0].C[0], o.Verts[0].C[1], o.Verts[0].C[2]
	o.Xmax, o.Ymax, o.Zmax = o.Xmin, o.Ymin, o.Zmin
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {

		// check vertex id and dimension
		if v.Id != i {
			return fmt.Errorf("%w: vertex ids must coincide with position in list. %d != %d", ErrInvalidGeometry, v.Id, i)
		}
		if len(v.C) != 3 {
			return fmt.Errorf("%w: vertex %d must have 3 coordinates; got %d", ErrInvalidGeometry, v.Id, len(v.C))
		}

		// tags
		if v.Tag < 0 {
			o.VertTag2verts[v.Tag] = append(o.VertTag2verts[v.Tag], v)
		}

		// limits
		o.Xmin = utl.Min(o.Xmin, v.C[0])
		o.Xmax = utl.Max(o.Xmax, v.C[0])
		o.Ymin = utl.Min(o.Ymin, v.C[1])
		o.Ymax = utl.Max(o.Ymax, v.C[1])
		o.Zmin = utl.Min(o.Zmin, v.C[2])
		o.Zmax = utl.Max(o.Zmax, v.C[2])
	}

	// cell related derived data
	o.CellTag2cells = make(map[int][]*Cell)
	o.FaceTag2cells = make(map[int][]CellFaceId)
	o.FaceTag2verts = make(map[int][]int)
	o.Ctype2cells = make(map[string][]*Cell)
	for i, c := range o.Cells {

		// check id
		if c.Id != i {
			return fmt.Errorf("%w: cell ids must coincide with position in list. %d != %d", ErrInvalidGeometry, c.Id, i)
		}

		// get shape structure
		c.Shp = shp.Get(c.Type)
		if c.Shp == nil {
			return fmt.Errorf("%w: cannot find shape structure for cell type %q", ErrInvalidGeometry, c.Type)
		}

		// check vertices
		if len(c.Verts) != c.Shp.Nverts {
			return fmt.Errorf("%w: cell %d (%s) must have %d vertices; got %d", ErrInvalidGeometry, c.Id, c.Type, c.Shp.Nverts, len(c.Verts))
		}
		seen := make(map[int]bool)
		for _, v := range c.Verts {
			if v < 0 || v >= len(o.Verts) {
				return fmt.Errorf("%w: cell %d references invalid vertex %d", ErrInvalidGeometry, c.Id, v)
			}
			if seen[v] {
				return fmt.Errorf("%w: cell %d references vertex %d twice", ErrInvalidGeometry, c.Id, v)
			}
			seen[v] = true
		}

		// cell maps
		o.CellTag2cells[c.Tag] = append(o.CellTag2cells[c.Tag], c)
		o.Ctype2cells[c.Type] = append(o.Ctype2cells[c.Type], c)

		// face tags
		for fid, ftag := range c.FTags {
			if ftag < 0 {
				o.FaceTag2cells[ftag] = append(o.FaceTag2cells[ftag], CellFaceId{c, fid})
				for _, l := range c.Shp.FaceLocalVerts[fid] {
					o.FaceTag2verts[ftag] = append(o.FaceTag2verts[ftag], c.Verts[l])
				}
			}
		}
	}

	// remove duplicates
	for ftag, verts := range o.FaceTag2verts {
		o.FaceTag2verts[ftag] = utl.IntUnique(verts)
	}
	return
}

// Nnodes returns the number of vertices
func (o *Mesh) Nnodes() int { return len(o.Verts) }

// Ndofs returns the total number of degrees of freedom: 3 per vertex
func (o *Mesh) Ndofs() int { return 3 * len(o.Verts) }

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"tag\":%4d, \"c\":[", o.Id, o.Tag)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Cell
func (o *Cell) String() string {
	l := io.Sf("{\"id\":%d, \"tag\":%d, \"type\":%q, \"verts\":[", o.Id, o.Tag, o.Type)
	for i, x := range o.Verts {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "], \"ftags\":["
	for i, x := range o.FTags {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "] }"
	return l
}
