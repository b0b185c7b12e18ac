// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "errors"

// solver-stage errors. These are wrapped with diagnostic context; use
// errors.Is to branch on the kind.
var (

	// ErrAssembly indicates a degenerate element (e.g. non-positive Jacobian)
	// found during assembly; the mesh is corrupted
	ErrAssembly = errors.New("AssemblyError")

	// ErrEigensolverDivergence indicates that zero eigenpairs converged
	// within the iteration budget
	ErrEigensolverDivergence = errors.New("EigensolverDivergence")
)
