// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"

	"github.com/cpmech/gosl/utl"

	"github.com/quan4444/gomodal/inp"
	"github.com/quan4444/gomodal/msolid"
	"github.com/quan4444/gomodal/shp"
)

// ElemElastodyn implements a solid element for elastodynamics. It computes
// the consistent stiffness and mass matrices
//
//	K = int_V B^T D B dV     M = int_V rho N^T N dV
//
// by Gauss quadrature over the cell
type ElemElastodyn struct {

	// basic data
	Cell *inp.Cell        // the cell
	X    [][]float64      // matrix of nodal coordinates [ndim][nnode]
	Shp  *shp.Shape       // shape structure (element-owned scratchpad)
	Ips  []shp.Ipoint     // integration points
	Mdl  *msolid.LinElast // material model
	Ndim int              // space dimension
	Nu   int              // total number of unknowns == ndim * nnode

	// assembly
	Umap []int // local-to-global equation map [Nu]

	// scratchpad: computed at each integration point
	B  [][]float64 // strain-displacement matrix [Nsig][Nu]
	D  [][]float64 // constitutive matrix [Nsig][Nsig]
	DB [][]float64 // D times B [Nsig][Nu]
	K  [][]float64 // stiffness matrix [Nu][Nu]
	M  [][]float64 // mass matrix [Nu][Nu]
}

// NewElemElastodyn returns a new element
func NewElemElastodyn(cell *inp.Cell, x [][]float64, umap []int, mdl *msolid.LinElast) (o *ElemElastodyn, err error) {
	o = new(ElemElastodyn)
	o.Cell = cell
	o.X = x
	o.Shp = cell.Shp
	o.Ips, err = shp.GetIps(cell.Type, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: cell %d: %v", ErrAssembly, cell.Id, err)
	}
	o.Mdl = mdl
	o.Ndim = len(x)
	o.Nu = o.Ndim * o.Shp.Nverts
	o.Umap = umap
	o.B = utl.Alloc(msolid.Nsig, o.Nu)
	o.D = utl.Alloc(msolid.Nsig, msolid.Nsig)
	o.DB = utl.Alloc(msolid.Nsig, o.Nu)
	o.K = utl.Alloc(o.Nu, o.Nu)
	o.M = utl.Alloc(o.Nu, o.Nu)
	mdl.CalcD(o.D)
	return
}

// CalcKM computes the element stiffness and mass matrices into o.K and o.M.
// Returns ErrAssembly (wrapped) if the Jacobian is degenerate at any
// integration point
func (o *ElemElastodyn) CalcKM() (err error) {

	// clear matrices
	for i := 0; i < o.Nu; i++ {
		for j := 0; j < o.Nu; j++ {
			o.K[i][j] = 0
			o.M[i][j] = 0
		}
	}

	// loop over integration points
	nverts := o.Shp.Nverts
	for idx, ip := range o.Ips {

		// shape functions and gradients w.r.t real coordinates
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return fmt.Errorf("%w: cell %d, ip %d: %v", ErrAssembly, o.Cell.Id, idx, err)
		}
		coef := o.Shp.J * ip.W
		S := o.Shp.S
		G := o.Shp.G

		// strain-displacement matrix
		ipBmatrix(o.B, G, nverts)

		// DB = D * B
		for i := 0; i < msolid.Nsig; i++ {
			for j := 0; j < o.Nu; j++ {
				o.DB[i][j] = 0
				for k := 0; k < msolid.Nsig; k++ {
					o.DB[i][j] += o.D[i][k] * o.B[k][j]
				}
			}
		}

		// K += coef * B^T * DB
		for i := 0; i < o.Nu; i++ {
			for j := 0; j < o.Nu; j++ {
				for k := 0; k < msolid.Nsig; k++ {
					o.K[i][j] += coef * o.B[k][i] * o.DB[k][j]
				}
			}
		}

		// M += coef * rho * N^T * N
		cr := coef * o.Mdl.Rho
		for m := 0; m < nverts; m++ {
			for n := 0; n < nverts; n++ {
				c := cr * S[m] * S[n]
				for i := 0; i < o.Ndim; i++ {
					o.M[o.Ndim*m+i][o.Ndim*n+i] += c
				}
			}
		}
	}
	return
}

// ipBmatrix assembles the 3D strain-displacement matrix with engineering
// shear strains and Voigt ordering {xx, yy, zz, xy, yz, zx}
func ipBmatrix(B [][]float64, G [][]float64, nverts int) {
	for m := 0; m < nverts; m++ {
		c := 3 * m
		B[0][c+0] = G[m][0]
		B[0][c+1] = 0
		B[0][c+2] = 0
		B[1][c+0] = 0
		B[1][c+1] = G[m][1]
		B[1][c+2] = 0
		B[2][c+0] = 0
		B[2][c+1] = 0
		B[2][c+2] = G[m][2]
		B[3][c+0] = G[m][1]
		B[3][c+1] = G[m][0]
		B[3][c+2] = 0
		B[4][c+0] = 0
		B[4][c+1] = G[m][2]
		B[4][c+2] = G[m][1]
		B[5][c+0] = G[m][2]
		B[5][c+1] = 0
		B[5][c+2] = G[m][0]
	}
}
