// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"

	"github.com/quan4444/gomodal/inp"
)

// lanczosSeed fixes the start vector so repeated solves of the same problem
// return identical results
const lanczosSeed = 1234

// Results holds the output of an eigensolve. Eigenvalues come in ascending
// order; eigenvectors have full equation length and unit M-norm. Physical
// eigenvectors carry only roundoff-level components at prescribed equations;
// sentinel pseudo-modes live entirely on them
type Results struct {
	Lambdas []float64   // eigenvalues lambda = omega^2 [nfound]
	Vecs    []la.Vector // eigenvectors [nfound][ny]
	Resids  []float64   // relative residuals |K*v - lambda*M*v| / |K*v|
	Nconv   int         // number of pairs with residual within tolerance
	Iters   int         // Lanczos steps taken (zero for the dense path)
	Partial bool        // fewer pairs converged than requested
}

// EigenSolver solves the generalized Hermitian eigenproblem
//
//	K x = lambda M x
//
// for the smallest eigenvalues, either by shift-invert Lanczos iteration
// backed by a sparse LU factorization of K - sigma*M, or by a dense
// reference path (Cholesky reduction to standard form) meant for small
// problems and cross-checking
type EigenSolver struct {
	Asm  *Assembly
	Prms *inp.EigPrms
}

// NewEigenSolver returns a solver operating on a completed assembly
func NewEigenSolver(asm *Assembly, prms *inp.EigPrms) *EigenSolver {
	return &EigenSolver{Asm: asm, Prms: prms}
}

// Solve runs the configured method. It returns ErrEigensolverDivergence
// (wrapped) if no eigenpair converges
func (o *EigenSolver) Solve(ctx context.Context) (*Results, error) {
	if o.Asm.K == nil {
		return nil, chk.Err("assembly must be run before solving")
	}
	if o.Prms.Solver == "dense" {
		return o.solveDense()
	}
	return o.solveLanczos(ctx)
}

// solveLanczos implements shift-invert Lanczos with full reorthogonalization
// in the M-inner product. The Krylov operator is
//
//	Op = (K - sigma*M)^{-1} M
//
// whose largest eigenvalues theta map to the eigenvalues closest to the
// shift through lambda = sigma + 1/theta
func (o *EigenSolver) solveLanczos(ctx context.Context) (*Results, error) {

	// factorize shifted operator
	ny := o.Asm.Dom.Ny
	lu := NewSparseLU()
	defer lu.Free()
	if err := lu.Fact(o.Asm.Ab); err != nil {
		return nil, fmt.Errorf("%w: shift=%g: %v", ErrEigensolverDivergence, o.Asm.Sigma, err)
	}

	// iteration budget
	neigs := o.Prms.Neigs
	m := o.Prms.MaxIt
	if m > ny {
		m = ny
	}
	if m < neigs+2 {
		return nil, chk.Err("iteration budget (%d) is too small for %d eigenvalues", o.Prms.MaxIt, neigs)
	}

	// start vector: random and deterministic, with components on all equations.
	// Prescribed equations carry the sentinel pseudo-modes; their operator
	// eigenvalue is MSentinel/(KSentinel - sigma*MSentinel), negligible for the
	// default sentinel pair but dominant when the sentinels are mis-set
	rnd := rand.New(rand.NewSource(lanczosSeed))
	q := la.NewVector(ny)
	for i := 0; i < ny; i++ {
		q[i] = rnd.Float64() - 0.5
	}
	z := la.NewVector(ny)
	la.SpMatVecMul(z, 1, o.Asm.M, q)
	nrm := math.Sqrt(vecDot(q, z))
	if nrm <= 0 {
		return nil, chk.Err("mass matrix is not positive definite")
	}
	vecScale(q, 1/nrm)
	vecScale(z, 1/nrm)

	// Lanczos loop. Q holds the M-orthonormal basis and Z = M*Q
	Q := []la.Vector{q}
	Z := []la.Vector{z}
	var alpha, beta []float64
	w := la.NewVector(ny)
	jdim := 0
	opscale := 0.0
	for j := 0; j < m; j++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// w = Op * q_j
		if err := lu.Solve(w, Z[j]); err != nil {
			return nil, fmt.Errorf("%w: shift=%g, iters=%d: %v", ErrEigensolverDivergence, o.Asm.Sigma, j, err)
		}

		// three-term recurrence
		a := vecDot(w, Z[j])
		alpha = append(alpha, a)
		vecAxpy(w, -a, Q[j])
		if j > 0 {
			vecAxpy(w, -beta[j-1], Q[j-1])
		}

		// full reorthogonalization against all previous vectors
		for i := 0; i <= j; i++ {
			vecAxpy(w, -vecDot(w, Z[i]), Q[i])
		}

		// next vector
		zn := la.NewVector(ny)
		la.SpMatVecMul(zn, 1, o.Asm.M, w)
		b := math.Sqrt(math.Max(vecDot(w, zn), 0))
		jdim = j + 1
		if math.Abs(a)+b > opscale {
			opscale = math.Abs(a) + b
		}
		if b <= 1e-10*opscale {
			break // invariant subspace found; the basis is complete
		}
		beta = append(beta, b)
		if jdim == m {
			break
		}
		qn := la.NewVector(ny)
		for i := 0; i < ny; i++ {
			qn[i] = w[i] / b
			zn[i] /= b
		}
		Q = append(Q, qn)
		Z = append(Z, zn)

		// cheap convergence estimate on the tridiagonal problem
		if jdim >= 2*neigs && jdim%10 == 0 {
			if lanczosNconv(alpha, beta, neigs, 0.01*o.Prms.Tol) >= neigs {
				break
			}
		}
	}

	// Ritz extraction from the tridiagonal matrix
	theta, Y, err := tridiagEigen(alpha[:jdim], beta)
	if err != nil {
		return nil, fmt.Errorf("%w: shift=%g, iters=%d: %v", ErrEigensolverDivergence, o.Asm.Sigma, jdim, err)
	}

	// largest positive theta give the eigenvalues closest above the shift,
	// in ascending lambda order
	res := &Results{Iters: jdim}
	for col := jdim - 1; col >= 0 && len(res.Lambdas) < neigs; col-- {
		if theta[col] <= 0 {
			break
		}
		v := la.NewVector(ny)
		for i := 0; i < jdim; i++ {
			vecAxpy(v, Y.At(i, col), Q[i])
		}
		res.Lambdas = append(res.Lambdas, o.Asm.Sigma+1/theta[col])
		res.Vecs = append(res.Vecs, v)
	}
	o.finish(res)
	if res.Nconv == 0 {
		return nil, fmt.Errorf("%w: shift=%g, iters=%d", ErrEigensolverDivergence, o.Asm.Sigma, jdim)
	}
	return res, nil
}

// solveDense reduces the problem to standard form with a dense Cholesky
// factorization M = L*L^T:
//
//	C = inv(L) * K * inv(L)^T      C y = lambda y      x = inv(L)^T y
//
// It computes the full spectrum and keeps the smallest Neigs eigenvalues
func (o *EigenSolver) solveDense() (*Results, error) {

	// symmetrized dense copies
	ny := o.Asm.Dom.Ny
	Kd := o.Asm.Kb.ToDense()
	Md := o.Asm.Mb.ToDense()
	Ksy := mat.NewSymDense(ny, nil)
	Msy := mat.NewSymDense(ny, nil)
	for i := 0; i < ny; i++ {
		for j := i; j < ny; j++ {
			Ksy.SetSym(i, j, 0.5*(Kd.Get(i, j)+Kd.Get(j, i)))
			Msy.SetSym(i, j, 0.5*(Md.Get(i, j)+Md.Get(j, i)))
		}
	}

	// M = L L^T
	var chol mat.Cholesky
	if !chol.Factorize(Msy) {
		return nil, chk.Err("mass matrix is not positive definite")
	}
	L := mat.NewTriDense(ny, mat.Lower, nil)
	chol.LTo(L)

	// C = inv(L) K inv(L)^T, symmetrized against roundoff
	var W, Ct mat.Dense
	if err := W.Solve(L, Ksy); err != nil {
		return nil, chk.Err("cannot reduce to standard form: %v", err)
	}
	if err := Ct.Solve(L, W.T()); err != nil {
		return nil, chk.Err("cannot reduce to standard form: %v", err)
	}
	Csy := mat.NewSymDense(ny, nil)
	for i := 0; i < ny; i++ {
		for j := i; j < ny; j++ {
			Csy.SetSym(i, j, 0.5*(Ct.At(i, j)+Ct.At(j, i)))
		}
	}

	// full spectrum, ascending
	var es mat.EigenSym
	if !es.Factorize(Csy, true) {
		return nil, fmt.Errorf("%w: dense eigendecomposition failed", ErrEigensolverDivergence)
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// back-substitute the lowest Neigs eigenvectors: x = inv(L)^T y
	neigs := o.Prms.Neigs
	if neigs > ny {
		neigs = ny
	}
	res := new(Results)
	y := mat.NewVecDense(ny, nil)
	for col := 0; col < neigs; col++ {
		for i := 0; i < ny; i++ {
			y.SetVec(i, vecs.At(i, col))
		}
		var x mat.VecDense
		if err := x.SolveVec(L.T(), y); err != nil {
			return nil, chk.Err("cannot recover eigenvector %d: %v", col, err)
		}
		v := la.NewVector(ny)
		for i := 0; i < ny; i++ {
			v[i] = x.AtVec(i)
		}
		res.Lambdas = append(res.Lambdas, vals[col])
		res.Vecs = append(res.Vecs, v)
	}
	o.finish(res)
	if res.Nconv == 0 {
		return nil, fmt.Errorf("%w: dense path produced no accurate pairs", ErrEigensolverDivergence)
	}
	return res, nil
}

// AllLambdas returns the complete eigenvalue spectrum, ascending, via the
// dense path. Useful to inspect the sentinel (spurious) band
func (o *EigenSolver) AllLambdas() ([]float64, error) {
	saved := o.Prms.Neigs
	o.Prms.Neigs = o.Asm.Dom.Ny
	defer func() { o.Prms.Neigs = saved }()
	res, err := o.solveDense()
	if err != nil {
		return nil, err
	}
	return res.Lambdas, nil
}

// finish sorts pairs by ascending eigenvalue, computes explicit residuals
// and counts the converged pairs
func (o *EigenSolver) finish(res *Results) {

	// insertion sort; the lists are nearly sorted already
	for i := 1; i < len(res.Lambdas); i++ {
		for j := i; j > 0 && res.Lambdas[j] < res.Lambdas[j-1]; j-- {
			res.Lambdas[j], res.Lambdas[j-1] = res.Lambdas[j-1], res.Lambdas[j]
			res.Vecs[j], res.Vecs[j-1] = res.Vecs[j-1], res.Vecs[j]
		}
	}

	// explicit residuals against the frozen sparse matrices
	ny := o.Asm.Dom.Ny
	kv := la.NewVector(ny)
	mv := la.NewVector(ny)
	res.Resids = make([]float64, len(res.Lambdas))
	for i, lam := range res.Lambdas {
		la.SpMatVecMul(kv, 1, o.Asm.K, res.Vecs[i])
		la.SpMatVecMul(mv, 1, o.Asm.M, res.Vecs[i])
		num, den := 0.0, 0.0
		for k := 0; k < ny; k++ {
			d := kv[k] - lam*mv[k]
			num += d * d
			den += kv[k] * kv[k]
		}
		if den > 0 {
			res.Resids[i] = math.Sqrt(num / den)
		} else {
			res.Resids[i] = math.Sqrt(num)
		}
		if res.Resids[i] <= o.Prms.Tol {
			res.Nconv++
		}
	}
	res.Partial = res.Nconv < o.Prms.Neigs
}

// lanczosNconv estimates how many of the wanted Ritz values have already
// converged, using the standard bound beta_j * |last component|
func lanczosNconv(alpha, beta []float64, neigs int, tol float64) (nconv int) {
	j := len(alpha)
	theta, Y, err := tridiagEigen(alpha, beta[:j-1])
	if err != nil {
		return 0
	}
	blast := beta[j-1]
	for col := j - 1; col >= j-neigs && col >= 0; col-- {
		if theta[col] <= 0 {
			break
		}
		if blast*math.Abs(Y.At(j-1, col)) <= tol*theta[col] {
			nconv++
		}
	}
	return
}

// tridiagEigen computes all eigenvalues (ascending) and eigenvectors of the
// symmetric tridiagonal matrix with the given diagonal and off-diagonal
func tridiagEigen(alpha, beta []float64) ([]float64, *mat.Dense, error) {
	n := len(alpha)
	T := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		T.SetSym(i, i, alpha[i])
		if i < n-1 {
			T.SetSym(i, i+1, beta[i])
		}
	}
	var es mat.EigenSym
	if !es.Factorize(T, true) {
		return nil, nil, chk.Err("tridiagonal eigendecomposition failed")
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	return vals, &vecs, nil
}

// small dense-vector kernels

func vecDot(u, v la.Vector) (res float64) {
	for i := 0; i < len(u); i++ {
		res += u[i] * v[i]
	}
	return
}

func vecAxpy(v la.Vector, a float64, u la.Vector) {
	for i := 0; i < len(v); i++ {
		v[i] += a * u[i]
	}
}

func vecScale(v la.Vector, a float64) {
	for i := 0; i < len(v); i++ {
		v[i] *= a
	}
}
