// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_linelast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast01. Lamé parameters and D matrix")

	mdl, err := NewLinElast(72e9, 0.3, 2800)
	if err != nil {
		tst.Errorf("NewLinElast failed:\n%v", err)
		return
	}
	chk.Float64(tst, "mu", 1e-3, mdl.Mu, 72e9/2.6)
	chk.Float64(tst, "lam", 1e-3, mdl.Lam, 72e9*0.3/(1.3*0.4))

	D := utl.Alloc(Nsig, Nsig)
	mdl.CalcD(D)

	// symmetry and block structure
	for i := 0; i < Nsig; i++ {
		for j := 0; j < Nsig; j++ {
			chk.Float64(tst, "D symmetry", 1e-15, D[i][j], D[j][i])
		}
	}
	for i := 0; i < 3; i++ {
		chk.Float64(tst, "D normal diag", 1e-3, D[i][i], mdl.Lam+2.0*mdl.Mu)
		chk.Float64(tst, "D shear diag", 1e-3, D[i+3][i+3], mdl.Mu)
		for j := 0; j < 3; j++ {
			if i != j {
				chk.Float64(tst, "D off-diag", 1e-3, D[i][j], mdl.Lam)
			}
		}
		for j := 3; j < Nsig; j++ {
			if i+3 != j {
				chk.Float64(tst, "D coupling", 1e-15, D[i][j], 0)
			}
		}
	}
}

func Test_linelast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast02. stress from strain")

	mdl, err := NewLinElast(1000.0, 0.25, 1.0)
	if err != nil {
		tst.Errorf("NewLinElast failed:\n%v", err)
		return
	}

	// hydrostatic strain gives hydrostatic stress with bulk modulus
	eps := []float64{0.001, 0.001, 0.001, 0, 0, 0}
	sig := make([]float64, Nsig)
	mdl.Stress(sig, eps)
	kbulk := mdl.Lam + 2.0*mdl.Mu/3.0
	for i := 0; i < 3; i++ {
		chk.Float64(tst, "hydrostatic sig", 1e-12, sig[i], 3.0*kbulk*0.001)
		chk.Float64(tst, "hydrostatic shear", 1e-15, sig[i+3], 0)
	}

	// pure shear maps through mu only
	eps = []float64{0, 0, 0, 0.002, 0, 0}
	mdl.Stress(sig, eps)
	chk.Float64(tst, "shear sig", 1e-12, sig[3], mdl.Mu*0.002)
	chk.Float64(tst, "shear sxx", 1e-15, sig[0], 0)

	// Stress agrees with CalcD contraction on a general strain
	eps = []float64{0.001, -0.002, 0.0005, 0.003, -0.001, 0.002}
	mdl.Stress(sig, eps)
	D := utl.Alloc(Nsig, Nsig)
	mdl.CalcD(D)
	for i := 0; i < Nsig; i++ {
		res := 0.0
		for j := 0; j < Nsig; j++ {
			res += D[i][j] * eps[j]
		}
		chk.Float64(tst, "sig = D:eps", 1e-12, sig[i], res)
	}
}

func Test_linelast03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast03. strain from displacement gradient")

	gradu := [][]float64{
		{0.001, 0.002, 0.001},
		{0.000, -0.001, 0.004},
		{0.002, 0.000, 0.003},
	}
	eps := make([]float64, Nsig)
	StrainFromGrad(eps, gradu)
	chk.Array(tst, "eps", 1e-15, eps, []float64{0.001, -0.001, 0.003, 0.002, 0.004, 0.003})
}

func Test_linelast04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast04. invalid constants are rejected")

	for _, c := range [][]float64{
		{0, 0.3, 2800},
		{-1, 0.3, 2800},
		{72e9, 0.5, 2800},
		{72e9, 0, 2800},
		{72e9, 0.3, 0},
	} {
		_, err := NewLinElast(c[0], c[1], c[2])
		if err == nil {
			tst.Errorf("constants %v must be rejected\n", c)
			return
		}
		if !errors.Is(err, ErrInvalidMaterial) {
			tst.Errorf("wrong error kind: %v\n", err)
			return
		}
	}
}
