// Package restrict turns an approximate range basis into an exact small
// factorization and lifts it back to full size.
//
// Every solver here takes a matrix A together with a slim orthonormal basis
// Q (usually from package rangefinder) or a random sample, restricts A to
// the span of Q, factorizes the small restricted operator exactly with
// gonum's dense routines, and maps the factors back through Q. The solvers
// assume Q already captures the range of A with adequate rank; they never
// verify convergence themselves.
//
// Solvers:
//   - SVDFromBasis / SingularValues — projection B = QᵀA plus exact SVD;
//     the accuracy reference point.
//   - SVDRowExtraction — selects representative rows of A via an
//     interpolative decomposition of Q instead of projecting through QᵀA;
//     one full multiply cheaper, somewhat less accurate.
//   - EigenFromBasis — Hermitian restriction B = QᵀAQ plus exact
//     eigendecomposition.
//   - EigenRowExtraction — the row-extraction shortcut for Hermitian A.
//   - EigenNystrom — positive-semidefinite A only; Cholesky-based, more
//     accurate than the generic restriction, fails cleanly when the
//     restricted operator is not positive-definite.
//   - EigenOnePass / EigenOnePassNonsym — build basis and restriction from
//     a single traversal of A, trading accuracy for access cost.
//
// All results are freshly allocated immutable values holding no reference
// to the inputs.
package restrict
