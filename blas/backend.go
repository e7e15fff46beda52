// Copyright 2025 blasbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package blas

import "gonum.org/v1/gonum/blas"

// Backend is a named BLAS implementation with layout conversion at the
// boundary. The zero value is not usable; obtain one from Lookup or New.
type Backend struct {
	name string
	f64  Float64
	f32  Float32
}

// New wraps the given implementations. f32 may be nil, in which case the
// single-precision methods fall back to the native kernels.
func New(name string, f64 Float64, f32 Float32) *Backend {
	if f64 == nil {
		panic("blas: nil Float64 implementation")
	}
	if f32 == nil {
		f32 = Native{}
	}
	return &Backend{name: name, f64: f64, f32: f32}
}

// Name returns the name the backend was registered under.
func (b *Backend) Name() string {
	return b.name
}

// flip swaps NoTrans and Trans. Conjugation is meaningless for real types.
func flip(t blas.Transpose) blas.Transpose {
	if t == blas.NoTrans {
		return blas.Trans
	}
	return blas.NoTrans
}

// Dger performs the rank-1 update A += alpha * x * y^T where A is m x n.
func (b *Backend) Dger(layout Layout, m, n int, alpha float64, x []float64, incX int, y []float64, incY int, a []float64, lda int) {
	if layout == ColMajor {
		b.f64.Dger(n, m, alpha, y, incY, x, incX, a, lda)
		return
	}
	b.f64.Dger(m, n, alpha, x, incX, y, incY, a, lda)
}

// Dgemv computes y = alpha * op(A) * x + beta * y where A is m x n.
func (b *Backend) Dgemv(layout Layout, tA Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	if layout == ColMajor {
		b.f64.Dgemv(flip(tA), n, m, alpha, a, lda, x, incX, beta, y, incY)
		return
	}
	b.f64.Dgemv(tA, m, n, alpha, a, lda, x, incX, beta, y, incY)
}

// Dgemm computes C = alpha * op(A) * op(B) + beta * C where C is m x n and
// the shared dimension is k.
func (b *Backend) Dgemm(layout Layout, tA, tB Transpose, m, n, k int, alpha float64, a []float64, lda int, bm []float64, ldb int, beta float64, c []float64, ldc int) {
	if layout == ColMajor {
		b.f64.Dgemm(tB, tA, n, m, k, alpha, bm, ldb, a, lda, beta, c, ldc)
		return
	}
	b.f64.Dgemm(tA, tB, m, n, k, alpha, a, lda, bm, ldb, beta, c, ldc)
}

// Sger is the float32 version of Dger.
func (b *Backend) Sger(layout Layout, m, n int, alpha float32, x []float32, incX int, y []float32, incY int, a []float32, lda int) {
	if layout == ColMajor {
		b.f32.Sger(n, m, alpha, y, incY, x, incX, a, lda)
		return
	}
	b.f32.Sger(m, n, alpha, x, incX, y, incY, a, lda)
}

// Sgemv is the float32 version of Dgemv.
func (b *Backend) Sgemv(layout Layout, tA Transpose, m, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) {
	if layout == ColMajor {
		b.f32.Sgemv(flip(tA), n, m, alpha, a, lda, x, incX, beta, y, incY)
		return
	}
	b.f32.Sgemv(tA, m, n, alpha, a, lda, x, incX, beta, y, incY)
}

// Sgemm is the float32 version of Dgemm.
func (b *Backend) Sgemm(layout Layout, tA, tB Transpose, m, n, k int, alpha float32, a []float32, lda int, bm []float32, ldb int, beta float32, c []float32, ldc int) {
	if layout == ColMajor {
		b.f32.Sgemm(tB, tA, n, m, k, alpha, bm, ldb, a, lda, beta, c, ldc)
		return
	}
	b.f32.Sgemm(tA, tB, m, n, k, alpha, a, lda, bm, ldb, beta, c, ldc)
}
