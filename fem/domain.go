// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem assembles and solves the generalized eigenproblem of
// elastodynamics: K x = lambda M x with lambda = omega^2
package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/quan4444/gomodal/inp"
	"github.com/quan4444/gomodal/msolid"
)

// Node holds a mesh vertex and its global equation numbers
type Node struct {
	Vert *inp.Vert // pointer to mesh vertex
	Eqs  []int     // equation numbers: one per space dimension (ux, uy, uz)
}

// Domain holds the discretized problem: nodes with equation numbers and
// elements ready to compute their matrices
type Domain struct {

	// input
	Msh *inp.Mesh        // the mesh
	Mdl *msolid.LinElast // material model shared by all elements

	// derived
	Nodes []*Node          // all nodes; indexed by vertex id
	Elems []*ElemElastodyn // all elements; indexed by cell id
	Ny    int              // total number of equations
}

// NewDomain returns a new domain with a contiguous equation numbering:
//
//	eq = ndim*vid + dim
//
// thus the three displacement unknowns of a vertex are adjacent and Ny is
// exactly ndim * nverts
func NewDomain(msh *inp.Mesh, mdl *msolid.LinElast) (o *Domain, err error) {

	// check
	if msh == nil || mdl == nil {
		return nil, chk.Err("mesh and material model must be both given")
	}

	// new domain
	o = new(Domain)
	o.Msh = msh
	o.Mdl = mdl
	ndim := msh.Ndim

	// nodes and equations
	o.Nodes = make([]*Node, len(msh.Verts))
	for _, v := range msh.Verts {
		nod := &Node{Vert: v, Eqs: make([]int, ndim)}
		for i := 0; i < ndim; i++ {
			nod.Eqs[i] = ndim*v.Id + i
		}
		o.Nodes[v.Id] = nod
	}
	o.Ny = ndim * len(msh.Verts)

	// elements
	o.Elems = make([]*ElemElastodyn, len(msh.Cells))
	for _, c := range msh.Cells {

		// coordinates matrix of element nodes
		x := utl.Alloc(ndim, len(c.Verts))
		for m, vid := range c.Verts {
			for i := 0; i < ndim; i++ {
				x[i][m] = msh.Verts[vid].C[i]
			}
		}

		// local-to-global map
		umap := make([]int, ndim*len(c.Verts))
		for m, vid := range c.Verts {
			for i := 0; i < ndim; i++ {
				umap[ndim*m+i] = o.Nodes[vid].Eqs[i]
			}
		}

		// new element
		e, err := NewElemElastodyn(c, x, umap, mdl)
		if err != nil {
			return nil, err
		}
		o.Elems[c.Id] = e
	}
	return
}
