// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Ipoint holds the natural coordinates and weight of an integration point
type Ipoint struct {
	R []float64 // natural coordinates
	W float64   // weight
}

// GetIps returns the integration points of a hexahedron with nip points.
// nip==0 selects the default rule of the shape:
//  hex8  => 8  (2×2×2 Gauss-Legendre)
//  hex20 => 27 (3×3×3 Gauss-Legendre)
func GetIps(geoType string, nip int) (ips []Ipoint, err error) {
	s, ok := factory[geoType]
	if !ok {
		return nil, chk.Err("cannot get integration points: unknown shape type %q", geoType)
	}
	if nip == 0 {
		nip = s.NipDefault
	}
	switch nip {
	case 8:
		return gauss3d(ptsGauss2, wtsGauss2), nil
	case 27:
		return gauss3d(ptsGauss3, wtsGauss3), nil
	}
	return nil, chk.Err("cannot get integration points for %q with nip=%d", geoType, nip)
}

// 1D Gauss-Legendre rules
var (
	ptsGauss2 = []float64{-1.0 / math.Sqrt(3.0), 1.0 / math.Sqrt(3.0)}
	wtsGauss2 = []float64{1.0, 1.0}
	ptsGauss3 = []float64{-math.Sqrt(3.0 / 5.0), 0.0, math.Sqrt(3.0 / 5.0)}
	wtsGauss3 = []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
)

// gauss3d builds the tensor-product rule from a 1D rule
func gauss3d(pts, wts []float64) (ips []Ipoint) {
	n := len(pts)
	ips = make([]Ipoint, 0, n*n*n)
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				ips = append(ips, Ipoint{
					R: []float64{pts[i], pts[j], pts[k]},
					W: wts[i] * wts[j] * wts[k],
				})
			}
		}
	}
	return
}
