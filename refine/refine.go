// Package refine - iterative-refinement randomized SVD.
//
// Implementation notes:
//   - The basis lives in a fixed arena of rank+sample columns with an
//     index-based active count; merge sweeps never reallocate it.
//   - Column indices come from one uniform permutation consumed cyclically,
//     so every column of A is visited before any repeats.
//   - Orthonormalization drops near-dependent directions by comparing each
//     triangular-factor diagonal against eps·rows·|R₀₀|.
package refine

import (
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lowrank/restrict"
	"github.com/katalvlaran/lowrank/sampler"
)

// machEps is the double-precision unit roundoff.
const machEps = 0x1p-52

// RSVD computes a rank-≤`rank` approximate SVD of a tall matrix a by
// iterative column sampling.
//
// Starting from `rank` random columns of a, each sweep draws opts.Sample
// fresh columns, removes their component along the current basis, merges
// the remainder in through QR with dependence dropping, restricts B = XᵀA
// and re-solves the small problem in the requested mode. The loop stops
// when the leading singular value estimate grows by less than a factor
// 1/(1−ε), when opts.MaxIter sweeps have run (soft: warning on the logger,
// best-effort result returned), or when a sweep leaves no usable
// directions (degenerate: the last valid estimate is returned, possibly
// with fewer than `rank` components).
//
// A zero input matrix yields an empty decomposition (no components), not
// an error.
//
// Errors: ErrNilMatrix, ErrWideNotSupported, ErrBadRank, ErrBadSample,
// ErrBadEpsilon, ErrBadMode, ErrFactorization.
func RSVD(a mat.Matrix, rank int, mode Mode, opts Options) (*restrict.SVD, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if mode != ModeEig && mode != ModeSVD {
		return nil, ErrBadMode
	}

	m, n := a.Dims()
	if m < n {
		return nil, ErrWideNotSupported
	}
	if rank < 1 || rank > n {
		return nil, ErrBadRank
	}

	l := opts.Sample
	if l == 0 {
		l = rank
	}
	if l < 1 || l > rank {
		return nil, ErrBadSample
	}

	maxIter := opts.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}

	eps := opts.Epsilon
	if eps == 0 {
		eps = float64(m) * float64(n) * machEps
	}
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return nil, ErrBadEpsilon
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	rng := sampler.Stream(opts.Seed)
	perm, err := sampler.Perm(rng, n)
	if err != nil {
		return nil, err
	}

	// Cyclic cursor over the column permutation.
	next := 0
	draw := func(count int) []int {
		idx := make([]int, count)
		for i := range idx {
			idx[i] = perm[next]
			next++
			if next == n {
				next = 0
			}
		}

		return idx
	}

	// Arenas: basis and merge scratch of rank+l columns, projection scratch.
	basis := mat.NewDense(m, rank+l, nil)
	merged := mat.NewDense(m, rank+l, nil)
	projArena := make([]float64, rank*l)
	corrArena := make([]float64, m*l)
	colBuf := make([]float64, m)

	copyCols := func(dst *mat.Dense, start int, idx []int) {
		for j, c := range idx {
			mat.Col(colBuf, c, a)
			dst.SetCol(start+j, colBuf)
		}
	}

	// Initialize from rank random columns; drop dependent directions.
	copyCols(merged, 0, draw(rank))
	active := orthoKeep(basis, merged.Slice(0, m, 0, rank).(*mat.Dense), eps)
	if active == 0 {
		return emptyResult(), nil
	}

	var best *restrict.SVD
	prev := 0.0
	converged := false

	for iter := 0; iter < maxIter && !converged; iter++ {
		// Candidate count is capped so the merged block stays factorizable.
		take := l
		if room := m - active; take > room {
			take = room
		}

		live := basis.Slice(0, m, 0, active).(*mat.Dense)
		if take > 0 {
			copyCols(merged, active, draw(take))
			cand := merged.Slice(0, m, active, active+take).(*mat.Dense)

			// Project out what the basis already captures: C ← C − X·(XᵀC).
			proj := mat.NewDense(active, take, projArena[:active*take])
			proj.Mul(live.T(), cand)
			corr := mat.NewDense(m, take, corrArena[:m*take])
			corr.Mul(live, proj)
			cand.Sub(cand, corr)
		}

		// Merge and re-orthonormalize into the basis arena.
		for j := 0; j < active; j++ {
			mat.Col(colBuf, j, live)
			merged.SetCol(j, colBuf)
		}
		kept := orthoKeep(basis, merged.Slice(0, m, 0, active+take).(*mat.Dense), eps)
		if kept == 0 {
			// Degenerate sweep: every direction collapsed at once.
			break
		}
		active = kept

		res, err := solveRestricted(a, basis.Slice(0, m, 0, active).(*mat.Dense), rank, mode)
		if err != nil {
			return nil, err
		}
		if len(res.Values) == 0 {
			break
		}

		// The lifted left factor becomes the next basis.
		active = len(res.Values)
		for j := 0; j < active; j++ {
			mat.Col(colBuf, j, res.U)
			basis.SetCol(j, colBuf)
		}
		best = res

		if res.Values[0]*(1-eps) <= prev {
			converged = true
		}
		prev = res.Values[0]
	}

	if best == nil {
		// Every sweep degenerated before a solve; factorize what survived.
		res, err := solveRestricted(a, basis.Slice(0, m, 0, active).(*mat.Dense), rank, mode)
		if err != nil {
			return nil, err
		}
		if len(res.Values) == 0 {
			return emptyResult(), nil
		}

		return res, nil
	}

	if !converged {
		logger.WithFields(logrus.Fields{
			"sweeps": maxIter,
			"rank":   len(best.Values),
		}).Warn("refine: sweep cap reached before convergence")
	}

	return best, nil
}

// emptyResult is the zero-component decomposition returned for degenerate
// input (e.g. the zero matrix).
func emptyResult() *restrict.SVD {
	return &restrict.SVD{Values: []float64{}}
}

// orthoKeep QR-factorizes x and writes into dst's leading columns the Q
// columns whose R diagonal magnitude reaches eps·rows·|R₀₀|. Returns the
// number of columns kept. dst and x must not alias.
func orthoKeep(dst *mat.Dense, x *mat.Dense, eps float64) int {
	m, c := x.Dims()

	var qr mat.QR
	qr.Factorize(x)
	var r, full mat.Dense
	qr.RTo(&r)
	qr.QTo(&full)

	lead := math.Abs(r.At(0, 0))
	if lead == 0 {
		return 0
	}
	limit := eps * float64(m) * lead

	keep := 0
	col := make([]float64, m)
	for j := 0; j < c; j++ {
		if math.Abs(r.At(j, j)) < limit {
			continue
		}
		mat.Col(col, j, &full)
		dst.SetCol(keep, col)
		keep++
	}

	return keep
}

// solveRestricted restricts a to span(x), factorizes B = XᵀA in the
// requested mode and lifts back at most `rank` components.
func solveRestricted(a mat.Matrix, x *mat.Dense, rank int, mode Mode) (*restrict.SVD, error) {
	_, k := x.Dims()
	_, n := a.Dims()

	b := mat.NewDense(k, n, nil)
	b.Mul(x.T(), a)

	if mode == ModeEig {
		return solveGram(x, b, rank)
	}

	return solveDirect(x, b, rank)
}

// solveGram recovers singular pairs from the eigendecomposition of the
// small Gram matrix B·Bᵀ. Squares the conditioning, halves the cost.
func solveGram(x, b *mat.Dense, rank int) (*restrict.SVD, error) {
	m, k := x.Dims()
	_, n := b.Dims()

	g := mat.NewDense(k, k, nil)
	g.Mul(b, b.T())
	sym := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			sym.SetSym(i, j, 0.5*(g.At(i, j)+g.At(j, i)))
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return nil, ErrFactorization
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	want := rank
	if want > k {
		want = k
	}

	// Eigenvalues come back ascending; walk down from the top, discarding
	// the non-positive tail of the Gram spectrum.
	values := make([]float64, 0, want)
	cols := make([]int, 0, want)
	for j := k - 1; j >= 0 && len(values) < want; j-- {
		if vals[j] <= 0 {
			break
		}
		values = append(values, math.Sqrt(vals[j]))
		cols = append(cols, j)
	}
	if len(values) == 0 {
		return emptyResult(), nil
	}
	r := len(values)

	w := mat.NewDense(k, r, nil)
	colBuf := make([]float64, k)
	for i, j := range cols {
		mat.Col(colBuf, j, &vecs)
		w.SetCol(i, colBuf)
	}

	u := mat.NewDense(m, r, nil)
	u.Mul(x, w)

	// Right singular directions, rescaled by 1/σ.
	vt := mat.NewDense(r, n, nil)
	vt.Mul(w.T(), b)
	for i := 0; i < r; i++ {
		row := vt.RawRowView(i)
		s := 1 / values[i]
		for j := range row {
			row[j] *= s
		}
	}

	return &restrict.SVD{U: u, Values: values, Vt: vt}, nil
}

// solveDirect recovers singular pairs from a thin SVD of B.
func solveDirect(x, b *mat.Dense, rank int) (*restrict.SVD, error) {
	m, k := x.Dims()
	_, n := b.Dims()

	var svd mat.SVD
	if !svd.Factorize(b, mat.SVDThin) {
		return nil, ErrFactorization
	}
	vals := svd.Values(nil)
	var ub, v mat.Dense
	svd.UTo(&ub)
	svd.VTo(&v)

	r := rank
	if r > len(vals) {
		r = len(vals)
	}
	for r > 0 && vals[r-1] <= 0 {
		r--
	}
	if r == 0 {
		return emptyResult(), nil
	}

	u := mat.NewDense(m, r, nil)
	u.Mul(x, ub.Slice(0, k, 0, r))
	vt := mat.NewDense(r, n, nil)
	vt.Copy(v.Slice(0, n, 0, r).T())

	return &restrict.SVD{U: u, Values: append([]float64(nil), vals[:r]...), Vt: vt}, nil
}
