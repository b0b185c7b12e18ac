// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"sort"

	"github.com/quan4444/gomodal/inp"
)

// NodePredicate selects nodes by their real coordinates
type NodePredicate func(c []float64) bool

// OnPlane returns a predicate matching nodes on the plane x[idx] == val,
// within tolerance tol
func OnPlane(idx int, val, tol float64) NodePredicate {
	return func(c []float64) bool {
		return math.Abs(c[idx]-val) <= tol
	}
}

// ClampedEdgePreds returns the predicates selecting the four lateral faces
// of a box mesh: x == Xmin, x == Xmax, y == Ymin and y == Ymax. The top and
// bottom faces (z == const) remain free
func ClampedEdgePreds(msh *inp.Mesh) []NodePredicate {
	return []NodePredicate{
		OnPlane(0, msh.Xmin, inp.Ztol),
		OnPlane(0, msh.Xmax, inp.Ztol),
		OnPlane(1, msh.Ymin, inp.Ztol),
		OnPlane(1, msh.Ymax, inp.Ztol),
	}
}

// EssentialBcs holds the set of prescribed (zero displacement) equations.
// Prescribed rows and columns are dropped during assembly and replaced by
// sentinel diagonal entries; see Assembly
type EssentialBcs struct {
	KSentinel float64 // diagonal of K at prescribed equations
	MSentinel float64 // diagonal of M at prescribed equations
	Eq2fix    []bool  // prescribed flag per equation [ny]
	Eqs       []int   // sorted list of prescribed equations
}

// NewEssentialBcs returns a new structure with no prescribed equations
func NewEssentialBcs(ny int, ksentinel, msentinel float64) *EssentialBcs {
	return &EssentialBcs{
		KSentinel: ksentinel,
		MSentinel: msentinel,
		Eq2fix:    make([]bool, ny),
	}
}

// SetZero prescribes zero displacement on all DOFs of the nodes selected by
// any of the given predicates
func (o *EssentialBcs) SetZero(dom *Domain, preds ...NodePredicate) {
	for _, nod := range dom.Nodes {
		for _, pred := range preds {
			if pred(nod.Vert.C) {
				for _, eq := range nod.Eqs {
					if !o.Eq2fix[eq] {
						o.Eq2fix[eq] = true
						o.Eqs = append(o.Eqs, eq)
					}
				}
				break
			}
		}
	}
	sort.Ints(o.Eqs)
}

// Nfix returns the number of prescribed equations
func (o *EssentialBcs) Nfix() int { return len(o.Eqs) }
