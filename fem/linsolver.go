// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// SparseLU factorizes a sparse matrix once and solves repeatedly. It is the
// narrow interface the eigensolver needs from an external sparse package
type SparseLU interface {
	Fact(t *la.Triplet) error   // numeric factorization
	Solve(x, b la.Vector) error // solve A*x = b with the computed factors
	Free()                      // release external resources
}

// umfpackLU implements SparseLU on top of UMFPACK. The external solver
// panics on failure; panics are converted to errors here
type umfpackLU struct {
	solver la.SparseSolver
}

// NewSparseLU returns an UMFPACK-backed SparseLU
func NewSparseLU() SparseLU {
	return new(umfpackLU)
}

func (o *umfpackLU) Fact(t *la.Triplet) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("sparse factorization failed: %v", r)
		}
	}()
	o.Free()
	o.solver = la.NewSparseSolver("umfpack")
	o.solver.Init(t, la.NewSparseConfig())
	o.solver.Fact()
	return
}

func (o *umfpackLU) Solve(x, b la.Vector) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("sparse solve failed: %v", r)
		}
	}()
	if o.solver == nil {
		return chk.Err("matrix must be factorized before solving")
	}
	o.solver.Solve(x, b)
	return
}

func (o *umfpackLU) Free() {
	if o.solver != nil {
		o.solver.Free()
		o.solver = nil
	}
}
