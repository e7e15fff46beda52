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

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/blas"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Transpose aliases gonum's transpose flag so callers need a single import.
type Transpose = blas.Transpose

const (
	NoTrans = blas.NoTrans
	Trans   = blas.Trans
)

// Layout is the memory order of a flattened matrix.
type Layout int

const (
	// RowMajor stores consecutive elements of a row contiguously.
	RowMajor Layout = iota
	// ColMajor stores consecutive elements of a column contiguously.
	ColMajor
)

// String returns "row-major" or "col-major".
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return "unknown"
	}
}

// ParseLayout accepts "row", "row-major", "col", "col-major" (case-insensitive).
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row", "row-major", "rowmajor":
		return RowMajor, nil
	case "col", "col-major", "colmajor", "column", "column-major":
		return ColMajor, nil
	}
	return 0, fmt.Errorf("blas: unknown layout %q", s)
}

// Float64 is the double-precision subset of BLAS the benchmarks call, with
// gonum's row-major signatures.
type Float64 interface {
	Dger(m, n int, alpha float64, x []float64, incX int, y []float64, incY int, a []float64, lda int)
	Dgemv(tA blas.Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int)
	Dgemm(tA, tB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int)
}

// Float32 is the single-precision counterpart of Float64.
type Float32 interface {
	Sger(m, n int, alpha float32, x []float32, incX int, y []float32, incY int, a []float32, lda int)
	Sgemv(tA blas.Transpose, m, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int)
	Sgemm(tA, tB blas.Transpose, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int)
}
