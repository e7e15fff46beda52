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

// The Base* kernels are straightforward row-major reference implementations.
// They follow the reference BLAS argument rules: increments may be negative
// (the vector is then walked from its far end), leading dimensions must be
// at least the stored row length, and undersized buffers panic.

// BaseDot returns sum(a[i] * b[i]) over len(a) elements.
// Panics if len(b) < len(a).
func BaseDot[T Floats](a, b []T) T {
	if len(b) < len(a) {
		panic("vector slice too small")
	}
	if currentLevel != DispatchScalar {
		return dotUnrolled(a, b[:len(a)])
	}
	return dotScalar(a, b[:len(a)])
}

func dotScalar[T Floats](a, b []T) T {
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// dotUnrolled keeps four independent accumulators so the adds can pipeline.
func dotUnrolled[T Floats](a, b []T) T {
	var s0, s1, s2, s3 T
	n := len(a)
	b = b[:n]

	var i int
	for i = 0; i+4 <= n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}
	return (s0 + s1) + (s2 + s3)
}

// BaseGer computes A += alpha * x * y^T for a row-major m x n matrix A.
func BaseGer[T Floats](m, n int, alpha T, x []T, incX int, y []T, incY int, a []T, lda int) {
	checkMatrix(m, n, a, lda)
	checkVector(m, x, incX)
	checkVector(n, y, incY)
	if m == 0 || n == 0 || alpha == 0 {
		return
	}

	ix := startIndex(m, incX)
	ky := startIndex(n, incY)
	for i := range m {
		tmp := alpha * x[ix]
		if tmp != 0 {
			row := a[i*lda : i*lda+n]
			iy := ky
			for j := range row {
				row[j] += tmp * y[iy]
				iy += incY
			}
		}
		ix += incX
	}
}

// BaseGemv computes y = alpha * op(A) * x + beta * y for a row-major m x n
// matrix A. With tA == NoTrans, x has n elements and y has m; otherwise the
// lengths swap.
func BaseGemv[T Floats](tA blas.Transpose, m, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int) {
	checkTranspose(tA)
	checkMatrix(m, n, a, lda)
	lenX, lenY := n, m
	if tA != blas.NoTrans {
		lenX, lenY = m, n
	}
	checkVector(lenX, x, incX)
	if incY == 0 {
		panic("blas: zero y index increment")
	}
	if lenY > 0 && len(y) < 1+(lenY-1)*abs(incY) {
		panic("result slice too small")
	}
	if m == 0 || n == 0 {
		return
	}

	kx := startIndex(lenX, incX)
	ky := startIndex(lenY, incY)

	if beta != 1 {
		iy := ky
		for range lenY {
			if beta == 0 {
				y[iy] = 0
			} else {
				y[iy] *= beta
			}
			iy += incY
		}
	}
	if alpha == 0 {
		return
	}

	if tA == blas.NoTrans {
		iy := ky
		for i := range m {
			row := a[i*lda : i*lda+n]
			var sum T
			if incX == 1 {
				sum = BaseDot(row, x)
			} else {
				ix := kx
				for j := range row {
					sum += row[j] * x[ix]
					ix += incX
				}
			}
			y[iy] += alpha * sum
			iy += incY
		}
		return
	}

	ix := kx
	for i := range m {
		tmp := alpha * x[ix]
		if tmp != 0 {
			row := a[i*lda : i*lda+n]
			iy := ky
			for j := range row {
				y[iy] += tmp * row[j]
				iy += incY
			}
		}
		ix += incX
	}
}

// BaseGemm computes C = alpha * op(A) * op(B) + beta * C where C is m x n
// and the shared dimension is k. All matrices are row-major.
func BaseGemm[T Floats](tA, tB blas.Transpose, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	checkTranspose(tA)
	checkTranspose(tB)
	if m < 0 || n < 0 || k < 0 {
		panic("blas: negative dimension")
	}
	aRows, aCols := m, k
	if tA != blas.NoTrans {
		aRows, aCols = k, m
	}
	bRows, bCols := k, n
	if tB != blas.NoTrans {
		bRows, bCols = n, k
	}
	checkMatrix(aRows, aCols, a, lda)
	checkMatrix(bRows, bCols, b, ldb)
	if ldc < max(1, n) {
		panic("blas: bad leading dimension of C")
	}
	if m > 0 && n > 0 && len(c) < (m-1)*ldc+n {
		panic("result slice too small")
	}
	if m == 0 || n == 0 {
		return
	}

	for i := range m {
		row := c[i*ldc : i*ldc+n]
		if beta == 0 {
			clear(row)
		} else if beta != 1 {
			for j := range row {
				row[j] *= beta
			}
		}
	}
	if alpha == 0 || k == 0 {
		return
	}

	// i-p-j order keeps the inner loop streaming along rows of B and C.
	for i := range m {
		crow := c[i*ldc : i*ldc+n]
		for p := range k {
			var aip T
			if tA == blas.NoTrans {
				aip = a[i*lda+p]
			} else {
				aip = a[p*lda+i]
			}
			aip *= alpha
			if aip == 0 {
				continue
			}
			if tB == blas.NoTrans {
				brow := b[p*ldb : p*ldb+n]
				for j := range crow {
					crow[j] += aip * brow[j]
				}
			} else {
				for j := range crow {
					crow[j] += aip * b[j*ldb+p]
				}
			}
		}
	}
}

func checkTranspose(t blas.Transpose) {
	switch t {
	case blas.NoTrans, blas.Trans, blas.ConjTrans:
	default:
		panic("blas: illegal transpose")
	}
}

func checkMatrix[T Floats](rows, cols int, a []T, lda int) {
	if rows < 0 || cols < 0 {
		panic("blas: negative dimension")
	}
	if lda < max(1, cols) {
		panic("blas: bad leading dimension")
	}
	if rows > 0 && cols > 0 && len(a) < (rows-1)*lda+cols {
		panic("matrix slice too small")
	}
}

func checkVector[T Floats](n int, x []T, inc int) {
	if inc == 0 {
		panic("blas: zero index increment")
	}
	if n > 0 && len(x) < 1+(n-1)*abs(inc) {
		panic("vector slice too small")
	}
}

// startIndex is where a walk over n strided elements begins.
func startIndex(n, inc int) int {
	if inc < 0 {
		return -(n - 1) * inc
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
