// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out post-processes eigensolutions: natural frequencies, mode
// tables and VTK files for visualization
package out

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/quan4444/gomodal/fem"
	"github.com/quan4444/gomodal/inp"
)

// ErrNonPhysicalMode indicates a negative eigenvalue, which has no real
// natural frequency. Use errors.Is to detect it
var ErrNonPhysicalMode = errors.New("NonPhysicalMode")

// Mode holds one natural vibration mode
type Mode struct {
	Idx    int     // mode number (0 is the fundamental)
	Lambda float64 // eigenvalue == omega squared
	Omega  float64 // angular frequency [rad/s]
	Freq   float64 // natural frequency [Hz]
	Resid  float64 // relative eigenpair residual
}

// Frequency converts an eigenvalue to a natural frequency in Hz. Any
// negative eigenvalue, however small, returns ErrNonPhysicalMode (wrapped);
// a clamped plate has no zero or negative modes, so the caller must decide
func Frequency(lambda float64) (float64, error) {
	if lambda < 0 {
		return 0, fmt.Errorf("%w: lambda=%g", ErrNonPhysicalMode, lambda)
	}
	return math.Sqrt(lambda) / (2 * math.Pi), nil
}

// DimensionlessFreq returns the plate frequency parameter
//
//	Omega = L * (rho*h*omega^2 / D)^(1/4)      D = E*h^3 / (12*(1-nu^2))
//
// with L the plate length, h its thickness and omega the angular frequency.
// This parameter is what plate vibration handbooks tabulate
func DimensionlessFreq(freq, length, thickness float64, mat *inp.MatData) float64 {
	omega := 2 * math.Pi * freq
	D := mat.E * math.Pow(thickness, 3) / (12 * (1 - mat.Nu*mat.Nu))
	return length * math.Pow(mat.Rho*thickness*omega*omega/D, 0.25)
}

// Modes converts eigensolver results into vibration modes, ascending by
// frequency
func Modes(res *fem.Results) ([]Mode, error) {
	modes := make([]Mode, len(res.Lambdas))
	for i, lam := range res.Lambdas {
		f, err := Frequency(lam)
		if err != nil {
			return nil, fmt.Errorf("mode %d: %w", i, err)
		}
		modes[i] = Mode{
			Idx:    i,
			Lambda: lam,
			Omega:  2 * math.Pi * f,
			Freq:   f,
			Resid:  res.Resids[i],
		}
	}
	return modes, nil
}

// Report formats a table of natural frequencies together with a convergence
// summary
func Report(sim *inp.Simulation, res *fem.Results) (string, error) {
	modes, err := Modes(res)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "mode\tlambda\tfreq [Hz]\tOmega\tresid\n")
	for _, m := range modes {
		W := DimensionlessFreq(m.Freq, sim.Geo.Lx, sim.Geo.Lz, &sim.Mat)
		fmt.Fprintf(tw, "%d\t%.6e\t%.4f\t%.4f\t%.2e\n", m.Idx, m.Lambda, m.Freq, W, m.Resid)
	}
	tw.Flush()
	fmt.Fprintf(&buf, "converged: %d of %d requested", res.Nconv, sim.Eig.Neigs)
	if res.Iters > 0 {
		fmt.Fprintf(&buf, " (%d iterations)", res.Iters)
	}
	fmt.Fprintf(&buf, "\n")
	if res.Partial {
		fmt.Fprintf(&buf, "WARNING: partial convergence; frequencies beyond mode %d are unreliable\n", res.Nconv-1)
	}
	return buf.String(), nil
}
