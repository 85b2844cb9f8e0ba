// Package interpolative computes randomized interpolative decompositions:
// A ≈ B·P where B is literally a subset of A's own columns and P is a small
// coefficient matrix carrying an exact identity block at the selected
// columns.
//
// Unlike an SVD, the skeleton B inherits any structure of A (sparsity,
// non-negativity, interpretability of columns), which makes the
// decomposition useful on its own and as the row-selection engine behind
// the row-extraction solvers in package restrict.
//
// Algorithm: a compact Gaussian probe reduces A to a small projection,
// column-pivoted QR of the projection picks the skeleton columns, and the
// coefficients are recovered by least squares against the skeleton. The
// pivot order approximates — rather than reproduces — classical
// column-pivoted QR on A itself; that is the documented accuracy/cost
// trade-off of the randomized variant.
//
// Error bound: ‖B·P − A‖ is on the order of σ_{k+1}(A) with high
// probability, improving with the probe surplus l−k.
package interpolative
