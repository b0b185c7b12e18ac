// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements material models for solids
package msolid

import (
	"errors"
	"fmt"
)

// ErrInvalidMaterial indicates non-physical material constants
var ErrInvalidMaterial = errors.New("InvalidMaterial")

// Nsig is the number of stress/strain components in Voigt notation:
// xx, yy, zz, xy, yz, zx (engineering shear strains)
const Nsig = 6

// LinElast implements the isotropic linear elastic model
//  σ = 2με + λ·tr(ε)·I
type LinElast struct {

	// constants
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	Rho float64 // density

	// derived: Lamé parameters
	Mu  float64 // shear modulus μ = E/(2(1+ν))
	Lam float64 // first Lamé parameter λ = Eν/((1+ν)(1−2ν))
}

// NewLinElast returns a new linear elastic model after validating constants
func NewLinElast(e, nu, rho float64) (*LinElast, error) {
	if e <= 0 {
		return nil, fmt.Errorf("%w: Young's modulus must be positive; got E=%g", ErrInvalidMaterial, e)
	}
	if nu <= 0 || nu >= 0.5 {
		return nil, fmt.Errorf("%w: Poisson's coefficient must be within (0, 0.5); got ν=%g", ErrInvalidMaterial, nu)
	}
	if rho <= 0 {
		return nil, fmt.Errorf("%w: density must be positive; got ρ=%g", ErrInvalidMaterial, rho)
	}
	o := new(LinElast)
	o.E, o.Nu, o.Rho = e, nu, rho
	o.Mu = e / (2.0 * (1.0 + nu))
	o.Lam = e * nu / ((1.0 + nu) * (1.0 - 2.0*nu))
	return o, nil
}

// CalcD computes the 6×6 constitutive matrix in Voigt notation with
// engineering shear strains
func (o *LinElast) CalcD(D [][]float64) {
	for i := 0; i < Nsig; i++ {
		for j := 0; j < Nsig; j++ {
			D[i][j] = 0
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			D[i][j] = o.Lam
		}
		D[i][i] = o.Lam + 2.0*o.Mu
		D[i+3][i+3] = o.Mu
	}
}

// Stress computes σ = D·ε (Voigt, engineering shear)
func (o *LinElast) Stress(sig, eps []float64) {
	tr := eps[0] + eps[1] + eps[2]
	for i := 0; i < 3; i++ {
		sig[i] = 2.0*o.Mu*eps[i] + o.Lam*tr
		sig[i+3] = o.Mu * eps[i+3] // engineering γ already carries the factor 2
	}
}

// StrainFromGrad computes the Voigt strain from the displacement gradient
// gradu[i][j] = ∂u_i/∂x_j, using the exact symmetric part
func StrainFromGrad(eps []float64, gradu [][]float64) {
	eps[0] = gradu[0][0]
	eps[1] = gradu[1][1]
	eps[2] = gradu[2][2]
	eps[3] = gradu[0][1] + gradu[1][0]
	eps[4] = gradu[1][2] + gradu[2][1]
	eps[5] = gradu[2][0] + gradu[0][2]
}
