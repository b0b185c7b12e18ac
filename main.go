// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gomodal computes the natural frequencies and mode shapes of a thin
// rectangular plate fully clamped on its four lateral edges. The plate is
// discretized with a structured hexahedral mesh and the generalized
// eigenproblem K x = lambda M x is solved by shift-invert Lanczos iteration
package main

import (
	"context"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/quan4444/gomodal/fem"
	"github.com/quan4444/gomodal/inp"
	"github.com/quan4444/gomodal/msolid"
	"github.com/quan4444/gomodal/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// input parameters
	simfn, fnkey := io.ArgToFilename(0, "", ".sim", false)
	nx := io.ArgToInt(1, 0)
	neigs := io.ArgToInt(2, 0)
	dirout := io.ArgToString(3, "")
	verbose := io.ArgToBool(4, true)
	writeVtu := io.ArgToBool(5, true)

	// message
	if verbose {
		io.PfWhite("\nGomodal -- modal analysis of clamped plates\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"simulation filename", "simfn", simfn,
			"number of divisions along x (0 = from file)", "nx", nx,
			"number of eigenvalues (0 = from file)", "neigs", neigs,
			"output directory (empty = from file)", "dirout", dirout,
			"show messages", "verbose", verbose,
			"write vtu file with mode shapes", "writeVtu", writeVtu,
		))
	}

	// simulation data
	var sim *inp.Simulation
	var err error
	if simfn == "" {
		sim = inp.NewSimulation()
	} else {
		sim, err = inp.ReadSim(simfn)
		if err != nil {
			chk.Panic("cannot load simulation:\n%v", err)
		}
		sim.Data.FnameKey = fnkey
	}
	if nx > 0 {
		sim.Geo.Nx = nx
	}
	if neigs > 0 {
		sim.Eig.Neigs = neigs
	}
	if dirout != "" {
		sim.Data.DirOut = dirout
	}
	if err = sim.Validate(); err != nil {
		chk.Panic("invalid simulation data:\n%v", err)
	}

	// mesh
	msh, err := inp.GenBox(&sim.Geo)
	if err != nil {
		chk.Panic("cannot generate mesh:\n%v", err)
	}
	if verbose {
		mnx, mny, mnz := sim.Geo.Subdivisions()
		io.Pf("mesh: %d x %d x %d divisions, %d vertices, %d cells, %d equations\n",
			mnx, mny, mnz, msh.Nnodes(), len(msh.Cells), msh.Ndofs())
	}

	// material
	mdl, err := msolid.NewLinElast(sim.Mat.E, sim.Mat.Nu, sim.Mat.Rho)
	if err != nil {
		chk.Panic("cannot initialize material:\n%v", err)
	}

	// domain and boundary conditions
	dom, err := fem.NewDomain(msh, mdl)
	if err != nil {
		chk.Panic("cannot create domain:\n%v", err)
	}
	ebc := fem.NewEssentialBcs(dom.Ny, sim.Eig.KSentinel, sim.Eig.MSentinel)
	ebc.SetZero(dom, fem.ClampedEdgePreds(msh)...)
	if verbose {
		io.Pf("boundary conditions: %d prescribed equations (clamped lateral edges)\n", ebc.Nfix())
	}

	// assembly
	asm := fem.NewAssembly(dom, ebc, sim.Eig.Shift)
	if err = asm.Run(context.Background(), 0); err != nil {
		chk.Panic("assembly failed:\n%v", err)
	}

	// eigensolve
	esv := fem.NewEigenSolver(asm, &sim.Eig)
	res, err := esv.Solve(context.Background())
	if err != nil {
		chk.Panic("eigensolver failed:\n%v", err)
	}

	// report
	rep, err := out.Report(sim, res)
	if err != nil {
		chk.Panic("cannot report results:\n%v", err)
	}
	io.Pf("\n%s\n", rep)

	// mode shapes
	if writeVtu {
		if err = out.WriteVtu(sim.Data.DirOut, sim.Data.FnameKey, msh, res); err != nil {
			chk.Panic("cannot write mode shapes:\n%v", err)
		}
		if verbose {
			io.Pf("file written: %s\n", io.Sf("%s/%s.vtu", sim.Data.DirOut, sim.Data.FnameKey))
		}
	}
}
