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

package bench

import "github.com/simpleopenblas/blasbench/blas"

// OuterResult is the matrix left by the rank-1 update.
type OuterResult struct {
	Backend string    `yaml:"backend"`
	Layout  string    `yaml:"layout"`
	Rows    int       `yaml:"rows"`
	Cols    int       `yaml:"cols"`
	Alpha   float64   `yaml:"alpha"`
	A       []float64 `yaml:"a"`
}

// Outer computes A <- 10*x*y^T + A on a zeroed column-major 2x3 matrix with
// x = (1, 2) and y = (2, 1, 3). A ends up as 20 40 10 20 30 60 in storage order.
func (r *Runner) Outer() OuterResult {
	const (
		rows  = 2
		cols  = 3
		lda   = rows
		alpha = 10.0
	)
	x := []float64{1, 2}
	y := []float64{2, 1, 3}
	a := make([]float64, rows*cols)

	r.Log.Debug().Int("rows", rows).Int("cols", cols).Float64("alpha", alpha).Msg("outer product")
	r.Backend.Dger(blas.ColMajor, rows, cols, alpha, x, 1, y, 1, a, lda)

	return OuterResult{
		Backend: r.Backend.Name(),
		Layout:  blas.ColMajor.String(),
		Rows:    rows,
		Cols:    cols,
		Alpha:   alpha,
		A:       a,
	}
}
