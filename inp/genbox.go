// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"fmt"
	"math"
)

// boundary face tags of generated boxes, in the order
// x-min, x-max, y-min, y-max, z-min, z-max
var BoxFaceTags = []int{-10, -11, -20, -21, -30, -31}

// EdgeVertTag is the tag given to vertices on the four edge faces
// (x-min, x-max, y-min, y-max) of generated boxes
const EdgeVertTag = -100

// Geometry holds box dimensions and subdivision data
type Geometry struct {
	Lx float64 // x-dimension
	Ly float64 // y-dimension
	Lz float64 // z-dimension (plate thickness)
	Nx int     // number of subdivisions along x
	O2 bool    // use quadratic (hex20) cells
}

// Validate checks geometry data
func (o *Geometry) Validate() error {
	if o.Lx <= 0 || o.Ly <= 0 || o.Lz <= 0 {
		return fmt.Errorf("%w: box dimensions must be positive; got Lx=%g Ly=%g Lz=%g", ErrInvalidGeometry, o.Lx, o.Ly, o.Lz)
	}
	if o.Nx < 1 {
		return fmt.Errorf("%w: number of subdivisions along x must be at least 1; got Nx=%d", ErrInvalidGeometry, o.Nx)
	}
	return nil
}

// Subdivisions returns the number of subdivisions along each direction.
// Ny and Nz are derived from Nx and the aspect ratios so that cell edge
// lengths are approximately equal in all directions; overly anisotropic
// cells degrade the bending response.
func (o *Geometry) Subdivisions() (nx, ny, nz int) {
	nx = o.Nx
	ny = int(math.Round(float64(o.Nx)*o.Ly/o.Lx)) + 1
	nz = int(math.Round(float64(o.Nx)*o.Lz/o.Lx)) + 1
	return
}

// GenBox generates a structured hexahedral grid filling [0,Lx]×[0,Ly]×[0,Lz].
// Boundary faces carry BoxFaceTags and vertices on the four edge faces carry
// EdgeVertTag. With O2, hex20 cells are generated instead of hex8.
func GenBox(geo *Geometry) (*Mesh, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	nx, ny, nz := geo.Subdivisions()
	var o *Mesh
	if geo.O2 {
		o = genBoxHex20(geo, nx, ny, nz)
	} else {
		o = genBoxHex8(geo, nx, ny, nz)
	}
	if err := o.CalcDerived(); err != nil {
		return nil, err
	}
	return o, nil
}

// genBoxHex8 generates the trilinear grid
func genBoxHex8(geo *Geometry, nx, ny, nz int) *Mesh {

	// vertices
	o := new(Mesh)
	npx, npy, npz := nx+1, ny+1, nz+1
	o.Verts = make([]*Vert, 0, npx*npy*npz)
	for k := 0; k < npz; k++ {
		for j := 0; j < npy; j++ {
			for i := 0; i < npx; i++ {
				o.Verts = append(o.Verts, &Vert{
					Id:  len(o.Verts),
					Tag: boxVertTag(i, j, 2*nx, 2*ny, 2), // scale-free edge test
					C: []float64{
						geo.Lx * float64(i) / float64(nx),
						geo.Ly * float64(j) / float64(ny),
						geo.Lz * float64(k) / float64(nz),
					},
				})
			}
		}
	}

	// cells
	vid := func(i, j, k int) int { return (k*npy+j)*npx + i }
	o.Cells = make([]*Cell, 0, nx*ny*nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				o.Cells = append(o.Cells, &Cell{
					Id:   len(o.Cells),
					Tag:  -1,
					Type: "hex8",
					Verts: []int{
						vid(i, j, k), vid(i+1, j, k), vid(i+1, j+1, k), vid(i, j+1, k),
						vid(i, j, k+1), vid(i+1, j, k+1), vid(i+1, j+1, k+1), vid(i, j+1, k+1),
					},
					FTags: boxFaceTags(i, j, k, nx, ny, nz),
				})
			}
		}
	}
	return o
}

// genBoxHex20 generates the serendipity quadratic grid. Nodes live on a fine
// (2nx+1)×(2ny+1)×(2nz+1) lattice; only corners (all indices even) and
// mid-edge points (exactly one odd index) become vertices.
func genBoxHex20(geo *Geometry, nx, ny, nz int) *Mesh {

	// vertices
	o := new(Mesh)
	fpx, fpy := 2*nx+1, 2*ny+1
	fid := func(i, j, k int) int { return (k*fpy+j)*fpx + i }
	fid2vid := make(map[int]int)
	for k := 0; k <= 2*nz; k++ {
		for j := 0; j <= 2*ny; j++ {
			for i := 0; i <= 2*nx; i++ {
				nodd := i%2 + j%2 + k%2
				if nodd > 1 {
					continue
				}
				fid2vid[fid(i, j, k)] = len(o.Verts)
				o.Verts = append(o.Verts, &Vert{
					Id:  len(o.Verts),
					Tag: boxVertTag(i, j, 2*nx, 2*ny, 1),
					C: []float64{
						geo.Lx * float64(i) / float64(2*nx),
						geo.Ly * float64(j) / float64(2*ny),
						geo.Lz * float64(k) / float64(2*nz),
					},
				})
			}
		}
	}

	// local node offsets on the fine lattice, VTK hex20 ordering
	offs := [][]int{
		{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0},
		{0, 0, 2}, {2, 0, 2}, {2, 2, 2}, {0, 2, 2},
		{1, 0, 0}, {2, 1, 0}, {1, 2, 0}, {0, 1, 0},
		{1, 0, 2}, {2, 1, 2}, {1, 2, 2}, {0, 1, 2},
		{0, 0, 1}, {2, 0, 1}, {2, 2, 1}, {0, 2, 1},
	}

	// cells
	o.Cells = make([]*Cell, 0, nx*ny*nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				verts := make([]int, 20)
				for m, d := range offs {
					verts[m] = fid2vid[fid(2*i+d[0], 2*j+d[1], 2*k+d[2])]
				}
				o.Cells = append(o.Cells, &Cell{
					Id:    len(o.Cells),
					Tag:   -1,
					Type:  "hex20",
					Verts: verts,
					FTags: boxFaceTags(i, j, k, nx, ny, nz),
				})
			}
		}
	}
	return o
}

// boxVertTag tags vertices on the four edge faces. i and j are indices on a
// lattice with imax/jmax points per direction scaled by step
func boxVertTag(i, j, imax, jmax, step int) int {
	if i == 0 || step*i == imax || j == 0 || step*j == jmax {
		return EdgeVertTag
	}
	return 0
}

// boxFaceTags returns the face tags of cell (i,j,k)
func boxFaceTags(i, j, k, nx, ny, nz int) []int {
	t := make([]int, 6)
	if i == 0 {
		t[0] = BoxFaceTags[0]
	}
	if i == nx-1 {
		t[1] = BoxFaceTags[1]
	}
	if j == 0 {
		t[2] = BoxFaceTags[2]
	}
	if j == ny-1 {
		t[3] = BoxFaceTags[3]
	}
	if k == 0 {
		t[4] = BoxFaceTags[4]
	}
	if k == nz-1 {
		t[5] = BoxFaceTags[5]
	}
	return t
}
