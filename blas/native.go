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

// Native implements Float64 and Float32 with the Base* kernels.
type Native struct{}

var (
	_ Float64 = Native{}
	_ Float32 = Native{}
)

func (Native) Dger(m, n int, alpha float64, x []float64, incX int, y []float64, incY int, a []float64, lda int) {
	BaseGer(m, n, alpha, x, incX, y, incY, a, lda)
}

func (Native) Dgemv(tA blas.Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	BaseGemv(tA, m, n, alpha, a, lda, x, incX, beta, y, incY)
}

func (Native) Dgemm(tA, tB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	BaseGemm(tA, tB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (Native) Sger(m, n int, alpha float32, x []float32, incX int, y []float32, incY int, a []float32, lda int) {
	BaseGer(m, n, alpha, x, incX, y, incY, a, lda)
}

func (Native) Sgemv(tA blas.Transpose, m, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int) {
	BaseGemv(tA, m, n, alpha, a, lda, x, incX, beta, y, incY)
}

func (Native) Sgemm(tA, tB blas.Transpose, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	BaseGemm(tA, tB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}
