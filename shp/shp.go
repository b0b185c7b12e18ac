// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines for hexahedral cells
package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// MINDET is the minimum determinant allowed for dxdR
const MINDET = 1.0e-14

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data and a scratchpad for computations at one point.
// Get returns a fresh copy so that each cell owns its scratchpad and
// computations may run concurrently across cells.
type Shape struct {

	// geometry
	Type           string      // name; e.g. "hex8"
	Func           ShpFunc     // shape/derivs callback function
	Gndim          int         // geometry dimension
	Nverts         int         // number of vertices in cell
	VtkCode        int         // VTK code
	FaceLocalVerts [][]int     // face local vertices [nfaces][...]
	NatCoords      [][]float64 // natural coordinates [gndim][nverts]
	NipDefault     int         // default number of integration points

	// scratchpad: computed @ last CalcAtIp call
	S    []float64   // [nverts] shape functions
	G    [][]float64 // [nverts][gndim] G == dSdx. derivative of shape function
	J    float64     // Jacobian: determinant of dxdR
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [gndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx [][]float64 // [gndim][gndim] dRdx == inverse(dxdR)
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns a copy of an existent Shape structure
//  Note: returns nil if geoType is unknown
func Get(geoType string) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	return s.GetCopy()
}

// GetCopy returns a new copy of this shape structure with a fresh scratchpad
func (o *Shape) GetCopy() *Shape {
	p := new(Shape)
	p.Type = o.Type
	p.Func = o.Func
	p.Gndim = o.Gndim
	p.Nverts = o.Nverts
	p.VtkCode = o.VtkCode
	p.FaceLocalVerts = o.FaceLocalVerts
	p.NatCoords = o.NatCoords
	p.NipDefault = o.NipDefault
	p.initScratchpad()
	return p
}

// GetNverts returns the number of vertices of shape with given type
//  Note: returns -1 if geoType is unknown
func GetNverts(geoType string) int {
	s, ok := factory[geoType]
	if !ok {
		return -1
	}
	return s.Nverts
}

// IpRealCoords returns the real coordinates (y) of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip.R, false)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// CalcAtIp calculates volume data such as S and G at integration point ip
//  Input:
//   x[ndim][nverts] -- coordinates matrix of cell
//   ip              -- integration point
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {
	return o.CalcAtR(x, ip.R, derivs)
}

// CalcAtR calculates volume data such as S and G at natural coordinates r
func (o *Shape) CalcAtR(x [][]float64, r []float64, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, r, derivs)
	if !derivs {
		return
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < o.Gndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	// J = det(dxdR) and dRdx := inv(dxdR)
	a := o.DxdR
	o.J = a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
	if o.J < MINDET {
		return chk.Err("%s: cannot invert dxdR matrix: determinant is too small or negative = %g", o.Type, o.J)
	}
	b := o.DRdx
	b[0][0] = (a[1][1]*a[2][2] - a[1][2]*a[2][1]) / o.J
	b[0][1] = (a[0][2]*a[2][1] - a[0][1]*a[2][2]) / o.J
	b[0][2] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) / o.J
	b[1][0] = (a[1][2]*a[2][0] - a[1][0]*a[2][2]) / o.J
	b[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) / o.J
	b[1][2] = (a[0][2]*a[1][0] - a[0][0]*a[1][2]) / o.J
	b[2][0] = (a[1][0]*a[2][1] - a[1][1]*a[2][0]) / o.J
	b[2][1] = (a[0][1]*a[2][0] - a[0][0]*a[2][1]) / o.J
	b[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) / o.J

	// G == dSdx := dSdR * dRdx  =>  dS^m/dx_j := sum_i dS^m/dR_i * dR_i/dx_j
	for m := 0; m < o.Nverts; m++ {
		for j := 0; j < o.Gndim; j++ {
			o.G[m][j] = 0.0
			for i := 0; i < o.Gndim; i++ {
				o.G[m][j] += o.DSdR[m][i] * o.DRdx[i][j]
			}
		}
	}
	return
}

// initScratchpad initialises the scratchpad
func (o *Shape) initScratchpad() {
	o.S = make([]float64, o.Nverts)
	o.DSdR = utl.Alloc(o.Nverts, o.Gndim)
	o.DxdR = utl.Alloc(o.Gndim, o.Gndim)
	o.DRdx = utl.Alloc(o.Gndim, o.Gndim)
	o.G = utl.Alloc(o.Nverts, o.Gndim)
}
