// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_genbox01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("genbox01. hex8 grid counts and bounds")

	geo := &Geometry{Lx: 1.0, Ly: 1.0, Lz: 0.5, Nx: 2}
	nx, ny, nz := geo.Subdivisions()
	chk.Ints(tst, "subdivisions", []int{nx, ny, nz}, []int{2, 3, 2})

	msh, err := GenBox(geo)
	if err != nil {
		tst.Errorf("GenBox failed:\n%v", err)
		return
	}
	chk.IntAssert(len(msh.Verts), 3*4*3)
	chk.IntAssert(len(msh.Cells), 2*3*2)
	chk.IntAssert(msh.Nnodes(), 36)
	chk.IntAssert(msh.Ndofs(), 108)
	chk.IntAssert(msh.Ndim, 3)

	// bounding box
	chk.Float64(tst, "Xmin", 1e-15, msh.Xmin, 0)
	chk.Float64(tst, "Xmax", 1e-15, msh.Xmax, 1.0)
	chk.Float64(tst, "Ymax", 1e-15, msh.Ymax, 1.0)
	chk.Float64(tst, "Zmax", 1e-15, msh.Zmax, 0.5)

	// all six boundary faces are tagged
	for _, tag := range BoxFaceTags {
		if len(msh.FaceTag2cells[tag]) == 0 {
			tst.Errorf("face tag %d has no cells\n", tag)
			return
		}
	}

	// every vertex on the four lateral faces carries the edge tag
	nedge := 0
	for _, v := range msh.Verts {
		onEdge := v.C[0] < Ztol || v.C[0] > 1.0-Ztol || v.C[1] < Ztol || v.C[1] > 1.0-Ztol
		if onEdge {
			nedge++
			chk.IntAssert(v.Tag, EdgeVertTag)
		} else {
			chk.IntAssert(v.Tag, 0)
		}
	}
	chk.IntAssert(nedge, len(msh.VertTag2verts[EdgeVertTag]))

	// shapes are bound
	for _, c := range msh.Cells {
		if c.Shp == nil {
			tst.Errorf("cell %d has no shape\n", c.Id)
			return
		}
		chk.IntAssert(c.Shp.Nverts, 8)
	}
}

func Test_genbox02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("genbox02. subdivision rule follows the aspect ratios")

	geo := &Geometry{Lx: 1.0, Ly: 1.2, Lz: 0.02, Nx: 10}
	nx, ny, nz := geo.Subdivisions()
	chk.Ints(tst, "subdivisions", []int{nx, ny, nz}, []int{10, 13, 1})

	geo.Nx = 100
	_, ny, nz = geo.Subdivisions()
	chk.Ints(tst, "subdivisions", []int{ny, nz}, []int{121, 3})
}

func Test_genbox03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("genbox03. hex20 grid")

	// a single hex20 cell has all 20 distinct vertices
	geo := &Geometry{Lx: 1.0, Ly: 0.4, Lz: 0.4, Nx: 1, O2: true}
	msh, err := GenBox(geo)
	if err != nil {
		tst.Errorf("GenBox failed:\n%v", err)
		return
	}
	chk.IntAssert(len(msh.Cells), 1)
	chk.IntAssert(len(msh.Verts), 20)
	chk.IntAssert(msh.Cells[0].Shp.VtkCode, 25)

	// corner/edge structure of a 2x2x2 grid: corners (2nx+1 even lattice)
	// plus one mid-edge point per fine-lattice edge
	geo = &Geometry{Lx: 1.0, Ly: 1.0, Lz: 1.0, Nx: 2}
	geo.O2 = true
	msh, err = GenBox(geo)
	if err != nil {
		tst.Errorf("GenBox failed:\n%v", err)
		return
	}
	nx, ny, nz := geo.Subdivisions()
	npx, npy, npz := nx+1, ny+1, nz+1
	ncorner := npx * npy * npz
	nedge := nx*npy*npz + npx*ny*npz + npx*npy*nz
	chk.IntAssert(len(msh.Cells), nx*ny*nz)
	chk.IntAssert(len(msh.Verts), ncorner+nedge)
	for _, c := range msh.Cells {
		chk.IntAssert(len(c.Verts), 20)
	}
}

func Test_genbox04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("genbox04. invalid geometry is rejected")

	for _, geo := range []*Geometry{
		{Lx: 0, Ly: 1, Lz: 1, Nx: 2},
		{Lx: 1, Ly: -1, Lz: 1, Nx: 2},
		{Lx: 1, Ly: 1, Lz: 0, Nx: 2},
		{Lx: 1, Ly: 1, Lz: 1, Nx: 0},
	} {
		_, err := GenBox(geo)
		if err == nil {
			tst.Errorf("invalid geometry %+v must be rejected\n", geo)
			return
		}
		if !errors.Is(err, ErrInvalidGeometry) {
			tst.Errorf("wrong error kind: %v\n", err)
			return
		}
	}
}
