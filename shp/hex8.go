// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// shape function and derivatives of hex8 (trilinear hexahedron)
//
//              4________________7
//            ,'|              ,'|
//          ,'  |            ,'  |
//        ,'    |          ,'    |
//      ,'      |        ,'      |
//    5'===============6'        |
//    |         |      |         |
//    |         |      |         |
//    |         0_____ | ________3
//    |       ,'       |       ,'
//    |     ,'         |     ,'
//    |   ,'           |   ,'
//    | ,'             | ,'
//    1________________2'
//
func hex8Func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	hex8 := factory["hex8"]
	nc := hex8.NatCoords
	for m := 0; m < 8; m++ {
		rm, sm, tm := nc[0][m], nc[1][m], nc[2][m]
		S[m] = (1.0 + r[0]*rm) * (1.0 + r[1]*sm) * (1.0 + r[2]*tm) / 8.0
		if derivs {
			dSdR[m][0] = rm * (1.0 + r[1]*sm) * (1.0 + r[2]*tm) / 8.0
			dSdR[m][1] = sm * (1.0 + r[0]*rm) * (1.0 + r[2]*tm) / 8.0
			dSdR[m][2] = tm * (1.0 + r[0]*rm) * (1.0 + r[1]*sm) / 8.0
		}
	}
}

func init() {
	factory["hex8"] = &Shape{
		Type:       "hex8",
		Func:       hex8Func,
		Gndim:      3,
		Nverts:     8,
		VtkCode:    12,
		NipDefault: 8,
		FaceLocalVerts: [][]int{
			{0, 4, 7, 3}, // x-min
			{1, 2, 6, 5}, // x-max
			{0, 1, 5, 4}, // y-min
			{2, 3, 7, 6}, // y-max
			{0, 3, 2, 1}, // z-min
			{4, 5, 6, 7}, // z-max
		},
		NatCoords: [][]float64{
			{-1, 1, 1, -1, -1, 1, 1, -1},
			{-1, -1, 1, 1, -1, -1, 1, 1},
			{-1, -1, -1, -1, 1, 1, 1, 1},
		},
	}
	factory["hex8"].initScratchpad()
}
