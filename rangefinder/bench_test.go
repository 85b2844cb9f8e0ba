package rangefinder_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lowrank/rangefinder"
	"github.com/katalvlaran/lowrank/sampler"
)

// benchMatrix builds an m×n Gaussian benchmark matrix once per benchmark.
func benchMatrix(b *testing.B, m, n int) *mat.Dense {
	b.Helper()

	a, err := sampler.Gaussian(sampler.Stream(1), m, n)
	if err != nil {
		b.Fatalf("sample failed: %v", err)
	}

	return a
}

// BenchmarkBasic_Small benchmarks the basic range finder on 200×100.
func BenchmarkBasic_Small(b *testing.B) {
	a := benchMatrix(b, 200, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rangefinder.Basic(a, 20, sampler.Stream(int64(i)+1)); err != nil {
			b.Fatalf("Basic failed: %v", err)
		}
	}
}

// BenchmarkBasic_Medium benchmarks the basic range finder on 1000×400.
func BenchmarkBasic_Medium(b *testing.B) {
	a := benchMatrix(b, 1000, 400)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rangefinder.Basic(a, 40, sampler.Stream(int64(i)+1)); err != nil {
			b.Fatalf("Basic failed: %v", err)
		}
	}
}

// BenchmarkSubspace_TwoPower benchmarks two power iterations on 500×250.
func BenchmarkSubspace_TwoPower(b *testing.B) {
	a := benchMatrix(b, 500, 250)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rangefinder.Subspace(a, 25, 2, sampler.Stream(int64(i)+1)); err != nil {
			b.Fatalf("Subspace failed: %v", err)
		}
	}
}

// BenchmarkStructured_SRFT benchmarks the SRFT sample path on 500×250.
func BenchmarkStructured_SRFT(b *testing.B) {
	a := benchMatrix(b, 500, 250)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rangefinder.Structured(a, 25, sampler.Stream(int64(i)+1)); err != nil {
			b.Fatalf("Structured failed: %v", err)
		}
	}
}
