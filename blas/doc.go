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

// Package blas is the numeric backend used by the blasbench benchmarks.
//
// # Backends
//
// A Backend wraps one BLAS implementation behind a single calling convention.
// Implementations register themselves at init time:
//   - "native": the generic reference kernels in this package
//   - "gonum":  gonum.org/v1/gonum/blas/gonum, pure Go
//   - "netlib": gonum.org/v1/netlib/blas/netlib, cgo bindings to the system
//     CBLAS (OpenBLAS on Linux, Accelerate on macOS). Only built with
//     `-tags netlib` and cgo enabled.
//
// The highest-priority registered backend is the default:
//
//	b, err := blas.Lookup(blas.DefaultName())
//	if err != nil {
//	    return err
//	}
//
// # Layout
//
// Every Backend operation takes an explicit Layout. All implementations are
// row-major internally; ColMajor calls are rewritten to the equivalent
// row-major call before reaching the implementation:
//
//   - Ger:  A(m x n, col-major) is A^T(n x m, row-major), so x and y swap.
//   - Gemv: y = A*x on a col-major A is y = (A^T)^T*x, so the transpose flips.
//   - Gemm: C = A*B col-major is C^T = B^T*A^T row-major, so operands swap.
//
// # Example Usage
//
//	// A <- alpha*x*y^T + A, column-major 2x3
//	x := []float64{1, 2}
//	y := []float64{2, 1, 3}
//	a := make([]float64, 6)
//	b.Dger(blas.ColMajor, 2, 3, 10, x, 1, y, 1, a, 2)
//	// a = [20 40 10 20 30 60]
//
// # Dispatch
//
// The native kernels pick an unrolled dot product when the CPU reports a
// SIMD level (see CPU). Set BLASBENCH_NO_SIMD=1 to force the scalar loop.
package blas
