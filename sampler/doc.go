// Package sampler produces the random test matrices consumed by every
// randomized algorithm in lowrank: dense Gaussian samples, structured
// random trigonometric (SRFT-style) samples, raw Gaussian probe vectors,
// and uniform permutations.
//
// Determinism policy:
//   - Every sampling function takes an explicit *rand.Rand stream; there is
//     no hidden global random state anywhere in the module.
//   - Stream(seed) builds a deterministic stream (seed==0 maps to a fixed
//     default seed so the zero value stays reproducible).
//   - Derive(base, id) spawns statistically independent substreams for
//     concurrent or multi-start callers via a SplitMix64 mix.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share one stream across
//     goroutines; derive one stream per goroutine instead.
//
// Sample kinds:
//   - Gaussian(rng, m, n): i.i.d. N(0,1) entries — the workhorse sample for
//     range finding and restriction.
//   - SRFT(rng, n, l): random ±1 signs × trigonometric transform rows ×
//     uniformly drawn column frequencies, scaled by 1/√l. Same logical
//     shape as Gaussian(rng, n, l) with more evenly spread energy.
//   - GaussianVec(rng, n): a single unnormalized N(0,1) probe vector, used
//     by the probabilistic estimators.
//   - Perm(rng, n): uniform permutation of {0..n-1}, used for column/row
//     sampling and SRFT frequency selection.
package sampler
