// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"
	"runtime"
	"sync"

	"github.com/cpmech/gosl/la"
)

// Assembly builds the global stiffness and mass matrices in triplet
// (coordinate) format and freezes them into compressed-column form.
//
// Essential boundary conditions are enforced during the scatter: any entry
// whose row or column equation is prescribed is dropped, and the prescribed
// diagonals receive the sentinel values held by EssentialBcs. With the
// default sentinels the spurious eigenvalues land at KSentinel*MSentinel,
// far above the physical band.
//
// The shifted operator K - sigma*M is assembled at the same time into Ab,
// ready for factorization by the shift-invert eigensolver. Changing the
// shift requires a new call to Run
type Assembly struct {

	// input
	Dom   *Domain       // the domain
	Ebc   *EssentialBcs // essential boundary conditions
	Sigma float64       // spectral shift used to build Ab

	// triplet (mutable) form
	Kb *la.Triplet // global stiffness
	Mb *la.Triplet // global mass
	Ab *la.Triplet // shifted operator Kb - Sigma*Mb

	// frozen form
	K *la.CCMatrix // compressed-column stiffness
	M *la.CCMatrix // compressed-column mass
}

// NewAssembly allocates the triplets with capacity for all element
// contributions plus the sentinel diagonals
func NewAssembly(dom *Domain, ebc *EssentialBcs, sigma float64) (o *Assembly) {
	o = new(Assembly)
	o.Dom = dom
	o.Ebc = ebc
	o.Sigma = sigma
	nnz := dom.Ny
	for _, e := range dom.Elems {
		nnz += e.Nu * e.Nu
	}
	o.Kb = la.NewTriplet(dom.Ny, dom.Ny, nnz)
	o.Mb = la.NewTriplet(dom.Ny, dom.Ny, nnz)
	o.Ab = la.NewTriplet(dom.Ny, dom.Ny, nnz)
	return
}

// Run computes all element matrices and scatters them into the global
// triplets, using nworkers goroutines (nworkers < 1 means NumCPU). The
// element loop honours ctx cancellation. Run may be called again; the
// triplets are reset first
func (o *Assembly) Run(ctx context.Context, nworkers int) (err error) {

	// reset
	o.Kb.Start()
	o.Mb.Start()
	o.Ab.Start()
	o.K = nil
	o.M = nil

	// workers over element chunks
	if nworkers < 1 {
		nworkers = runtime.NumCPU()
	}
	nele := len(o.Dom.Elems)
	if nworkers > nele {
		nworkers = nele
	}
	chunk := (nele + nworkers - 1) / nworkers
	errs := make([]error, nworkers)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < nworkers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > nele {
			hi = nele
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			for _, e := range o.Dom.Elems[lo:hi] {
				select {
				case <-ctx.Done():
					errs[w] = ctx.Err()
					return
				default:
				}
				if err := e.CalcKM(); err != nil {
					errs[w] = err
					return
				}
				mu.Lock()
				o.scatter(e)
				mu.Unlock()
			}
		}(w, lo, hi)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return e
		}
	}

	// sentinel diagonals at prescribed equations
	for _, eq := range o.Ebc.Eqs {
		o.Kb.Put(eq, eq, o.Ebc.KSentinel)
		o.Mb.Put(eq, eq, o.Ebc.MSentinel)
		o.Ab.Put(eq, eq, o.Ebc.KSentinel-o.Sigma*o.Ebc.MSentinel)
	}

	// freeze
	o.K = o.Kb.ToMatrix(nil)
	o.M = o.Mb.ToMatrix(nil)
	return
}

// scatter adds one element's K and M into the global triplets, skipping
// entries on prescribed rows or columns. Callers must hold the lock
func (o *Assembly) scatter(e *ElemElastodyn) {
	fix := o.Ebc.Eq2fix
	for i, I := range e.Umap {
		if fix[I] {
			continue
		}
		for j, J := range e.Umap {
			if fix[J] {
				continue
			}
			o.Kb.Put(I, J, e.K[i][j])
			o.Mb.Put(I, J, e.M[i][j])
			o.Ab.Put(I, J, e.K[i][j]-o.Sigma*e.M[i][j])
		}
	}
}
