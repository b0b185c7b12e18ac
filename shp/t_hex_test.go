// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// boxCoords returns the coordinates matrix of a cell mapping the natural
// cube [-1,1]^3 onto [0,a]x[0,b]x[0,c]
func boxCoords(o *Shape, a, b, c float64) (x [][]float64) {
	dims := []float64{a, b, c}
	x = utl.Alloc(3, o.Nverts)
	for m := 0; m < o.Nverts; m++ {
		for i := 0; i < 3; i++ {
			x[i][m] = dims[i] * (o.NatCoords[i][m] + 1.0) / 2.0
		}
	}
	return
}

func Test_hex01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hex01. partition of unity and Kronecker property")

	rnd := rand.New(rand.NewSource(111))
	for _, geoType := range []string{"hex8", "hex20"} {

		o := Get(geoType)
		if o == nil {
			tst.Errorf("cannot get %q shape\n", geoType)
			return
		}
		r := make([]float64, 3)

		// partition of unity and zero-sum of derivatives at random points
		for it := 0; it < 10; it++ {
			for i := 0; i < 3; i++ {
				r[i] = 2.0*rnd.Float64() - 1.0
			}
			o.Func(o.S, o.DSdR, r, true)
			sum := 0.0
			dsum := make([]float64, 3)
			for m := 0; m < o.Nverts; m++ {
				sum += o.S[m]
				for i := 0; i < 3; i++ {
					dsum[i] += o.DSdR[m][i]
				}
			}
			chk.Float64(tst, "Σ S", 1e-14, sum, 1.0)
			chk.Array(tst, "Σ dSdR", 1e-13, dsum, []float64{0, 0, 0})
		}

		// Kronecker property at nodes
		for n := 0; n < o.Nverts; n++ {
			for i := 0; i < 3; i++ {
				r[i] = o.NatCoords[i][n]
			}
			o.Func(o.S, o.DSdR, r, false)
			for m := 0; m < o.Nverts; m++ {
				want := 0.0
				if m == n {
					want = 1.0
				}
				chk.Float64(tst, "S(node)", 1e-14, o.S[m], want)
			}
		}
	}
}

func Test_hex02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hex02. derivatives versus finite differences")

	rnd := rand.New(rand.NewSource(222))
	h := 1e-6
	Splus := make([]float64, 20)
	Sminus := make([]float64, 20)
	dummy := utl.Alloc(20, 3)
	for _, geoType := range []string{"hex8", "hex20"} {
		o := Get(geoType)
		r := make([]float64, 3)
		for it := 0; it < 5; it++ {
			for i := 0; i < 3; i++ {
				r[i] = 1.8*rnd.Float64() - 0.9
			}
			o.Func(o.S, o.DSdR, r, true)
			for i := 0; i < 3; i++ {
				tmp := r[i]
				r[i] = tmp + h
				o.Func(Splus, dummy, r, false)
				r[i] = tmp - h
				o.Func(Sminus, dummy, r, false)
				r[i] = tmp
				for m := 0; m < o.Nverts; m++ {
					chk.Float64(tst, "dSdR", 1e-8, o.DSdR[m][i], (Splus[m]-Sminus[m])/(2.0*h))
				}
			}
		}
	}
}

func Test_hex03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hex03. Jacobian, quadrature weights and volume")

	a, b, c := 1.5, 0.8, 0.02
	for _, geoType := range []string{"hex8", "hex20"} {

		o := Get(geoType)
		x := boxCoords(o, a, b, c)
		ips, err := GetIps(geoType, 0)
		if err != nil {
			tst.Errorf("GetIps failed:\n%v", err)
			return
		}

		// weights add up to the volume of the natural cube
		wsum := 0.0
		for _, ip := range ips {
			wsum += ip.W
		}
		chk.Float64(tst, "Σ W", 1e-14, wsum, 8.0)

		// Jacobian is constant for an affine map and integrates the volume
		vol := 0.0
		for _, ip := range ips {
			err = o.CalcAtIp(x, ip, true)
			if err != nil {
				tst.Errorf("CalcAtIp failed:\n%v", err)
				return
			}
			chk.Float64(tst, "J", 1e-14, o.J, a*b*c/8.0)
			vol += o.J * ip.W
		}
		chk.Float64(tst, "volume", 1e-13, vol, a*b*c)
	}
}

func Test_hex04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hex04. degenerate cell is caught")

	o := Get("hex8")
	x := boxCoords(o, 1, 1, 1)
	for m := 0; m < o.Nverts; m++ {
		x[2][m] = 0 // collapse to zero thickness
	}
	ips, _ := GetIps("hex8", 0)
	err := o.CalcAtIp(x, ips[0], true)
	if err == nil {
		tst.Errorf("degenerate Jacobian must be detected\n")
	}
}
