// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/quan4444/gomodal/inp"
	"github.com/quan4444/gomodal/msolid"
)

func Test_plate01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plate01. clamped aluminium plate, quadratic cells")

	// 1.0 x 1.2 x 0.02 m plate; coarse grid, so frequencies are checked
	// against wide bands only. The fundamental of the converged model is
	// 156.8 Hz
	sim := inp.NewSimulation()
	sim.Geo.Nx = 6
	sim.Geo.O2 = true

	msh, err := inp.GenBox(&sim.Geo)
	if err != nil {
		tst.Fatalf("GenBox failed:\n%v", err)
	}
	mdl, err := msolid.NewLinElast(sim.Mat.E, sim.Mat.Nu, sim.Mat.Rho)
	if err != nil {
		tst.Fatalf("NewLinElast failed:\n%v", err)
	}
	dom, err := NewDomain(msh, mdl)
	if err != nil {
		tst.Fatalf("NewDomain failed:\n%v", err)
	}
	ebc := NewEssentialBcs(dom.Ny, sim.Eig.KSentinel, sim.Eig.MSentinel)
	ebc.SetZero(dom, ClampedEdgePreds(msh)...)
	asm := NewAssembly(dom, ebc, sim.Eig.Shift)
	if err = asm.Run(context.Background(), 0); err != nil {
		tst.Fatalf("assembly failed:\n%v", err)
	}

	res, err := NewEigenSolver(asm, &sim.Eig).Solve(context.Background())
	if err != nil {
		tst.Fatalf("solve failed:\n%v", err)
	}
	chk.IntAssert(res.Nconv, 6)

	freqs := make([]float64, len(res.Lambdas))
	for i, lam := range res.Lambdas {
		freqs[i] = math.Sqrt(lam) / (2 * math.Pi)
		io.Pf("f%d = %.2f Hz (resid %.2e)\n", i, freqs[i], res.Resids[i])
		if i > 0 && freqs[i] < freqs[i-1] {
			tst.Errorf("frequencies must be ascending\n")
			return
		}
		if res.Resids[i] > sim.Eig.Tol {
			tst.Errorf("residual %d too large: %g\n", i, res.Resids[i])
			return
		}
	}

	// fundamental in the right ballpark and all modes in the flexural band,
	// far below the sentinel pseudo-frequencies (~1e4 Hz)
	if freqs[0] < 100 || freqs[0] > 300 {
		tst.Errorf("fundamental frequency %g Hz is out of range\n", freqs[0])
		return
	}
	if freqs[5] > 6*freqs[0] {
		tst.Errorf("sixth mode %g Hz is too far above the fundamental\n", freqs[5])
	}
}
