// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// shape function and derivatives of hex20 (serendipity quadratic hexahedron).
// Vertex ordering follows VTK: 8 corners as hex8, then mid-edge nodes
// 8..15 on the bottom/top rings and 16..19 on the vertical edges.
func hex20Func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	hex20 := factory["hex20"]
	nc := hex20.NatCoords
	for m := 0; m < 20; m++ {
		rm, sm, tm := nc[0][m], nc[1][m], nc[2][m]
		switch {
		case rm == 0: // mid-edge node along r
			S[m] = (1.0 - r[0]*r[0]) * (1.0 + r[1]*sm) * (1.0 + r[2]*tm) / 4.0
			if derivs {
				dSdR[m][0] = -2.0 * r[0] * (1.0 + r[1]*sm) * (1.0 + r[2]*tm) / 4.0
				dSdR[m][1] = sm * (1.0 - r[0]*r[0]) * (1.0 + r[2]*tm) / 4.0
				dSdR[m][2] = tm * (1.0 - r[0]*r[0]) * (1.0 + r[1]*sm) / 4.0
			}
		case sm == 0: // mid-edge node along s
			S[m] = (1.0 + r[0]*rm) * (1.0 - r[1]*r[1]) * (1.0 + r[2]*tm) / 4.0
			if derivs {
				dSdR[m][0] = rm * (1.0 - r[1]*r[1]) * (1.0 + r[2]*tm) / 4.0
				dSdR[m][1] = -2.0 * r[1] * (1.0 + r[0]*rm) * (1.0 + r[2]*tm) / 4.0
				dSdR[m][2] = tm * (1.0 + r[0]*rm) * (1.0 - r[1]*r[1]) / 4.0
			}
		case tm == 0: // mid-edge node along t
			S[m] = (1.0 + r[0]*rm) * (1.0 + r[1]*sm) * (1.0 - r[2]*r[2]) / 4.0
			if derivs {
				dSdR[m][0] = rm * (1.0 + r[1]*sm) * (1.0 - r[2]*r[2]) / 4.0
				dSdR[m][1] = sm * (1.0 + r[0]*rm) * (1.0 - r[2]*r[2]) / 4.0
				dSdR[m][2] = -2.0 * r[2] * (1.0 + r[0]*rm) * (1.0 + r[1]*sm) / 4.0
			}
		default: // corner node
			S[m] = (1.0 + r[0]*rm) * (1.0 + r[1]*sm) * (1.0 + r[2]*tm) * (r[0]*rm + r[1]*sm + r[2]*tm - 2.0) / 8.0
			if derivs {
				dSdR[m][0] = rm * (1.0 + r[1]*sm) * (1.0 + r[2]*tm) * (2.0*r[0]*rm + r[1]*sm + r[2]*tm - 1.0) / 8.0
				dSdR[m][1] = sm * (1.0 + r[0]*rm) * (1.0 + r[2]*tm) * (r[0]*rm + 2.0*r[1]*sm + r[2]*tm - 1.0) / 8.0
				dSdR[m][2] = tm * (1.0 + r[0]*rm) * (1.0 + r[1]*sm) * (r[0]*rm + r[1]*sm + 2.0*r[2]*tm - 1.0) / 8.0
			}
		}
	}
}

func init() {
	factory["hex20"] = &Shape{
		Type:       "hex20",
		Func:       hex20Func,
		Gndim:      3,
		Nverts:     20,
		VtkCode:    25,
		NipDefault: 27,
		FaceLocalVerts: [][]int{
			{0, 4, 7, 3, 16, 15, 19, 11}, // x-min
			{1, 2, 6, 5, 9, 18, 13, 17},  // x-max
			{0, 1, 5, 4, 8, 17, 12, 16},  // y-min
			{2, 3, 7, 6, 10, 19, 14, 18}, // y-max
			{0, 3, 2, 1, 11, 10, 9, 8},   // z-min
			{4, 5, 6, 7, 12, 13, 14, 15}, // z-max
		},
		NatCoords: [][]float64{
			{-1, 1, 1, -1, -1, 1, 1, -1, 0, 1, 0, -1, 0, 1, 0, -1, -1, 1, 1, -1},
			{-1, -1, 1, 1, -1, -1, 1, 1, -1, 0, 1, 0, -1, 0, 1, 0, -1, -1, 1, 1},
			{-1, -1, -1, -1, 1, 1, 1, 1, -1, -1, -1, -1, 1, 1, 1, 1, 0, 0, 0, 0},
		},
	}
	factory["hex20"].initScratchpad()
}
