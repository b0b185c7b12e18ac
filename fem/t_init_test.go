// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/quan4444/gomodal/inp"
	"github.com/quan4444/gomodal/msolid"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// testPlate builds a clamped-plate problem ready for solving. The material
// is soft and light so that matrix entries stay close to unity
func testPlate(geo *inp.Geometry, ksentinel, msentinel, sigma float64) (dom *Domain, ebc *EssentialBcs, asm *Assembly, err error) {
	msh, err := inp.GenBox(geo)
	if err != nil {
		return
	}
	mdl, err := msolid.NewLinElast(1000.0, 0.25, 1.0)
	if err != nil {
		return
	}
	dom, err = NewDomain(msh, mdl)
	if err != nil {
		return
	}
	ebc = NewEssentialBcs(dom.Ny, ksentinel, msentinel)
	ebc.SetZero(dom, ClampedEdgePreds(msh)...)
	asm = NewAssembly(dom, ebc, sigma)
	err = asm.Run(context.Background(), 0)
	return
}
