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

package grid

import (
	"time"

	"github.com/simpleopenblas/blasbench/blas"
)

// MatVecer is the backend contract: a row- or column-major Dgemv.
// *blas.Backend satisfies it.
type MatVecer interface {
	Dgemv(layout blas.Layout, tA blas.Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int)
}

// MatVec4x4 writes m*v into out through the backend. The matrix is passed
// row-major; the array types fix every buffer length at four or sixteen.
func MatVec4x4(b MatVecer, m *Transform4x4, v *Point4, out *Point4) {
	if b == nil {
		panic("grid: nil backend")
	}
	b.Dgemv(blas.RowMajor, blas.NoTrans, 4, 4, 1, m.RowMajor(), 4, v[:], 1, 0, out[:], 1)
}

// ThroughputSample is the outcome of one timed trial.
type ThroughputSample struct {
	// Passes is the number of complete sweeps over the sample set.
	Passes int64 `yaml:"passes"`
	// Applications is Passes * len(samples).
	Applications int64         `yaml:"applications"`
	Elapsed      time.Duration `yaml:"elapsed"`
	// Rate is Applications / Elapsed in points per second.
	Rate float64 `yaml:"rate"`
}

// RunTimedThroughputTrial transforms every point of samples with m, sweeping
// the whole set repeatedly until at least minDuration has passed. It always
// completes at least one sweep, and keeps sweeping until the clock has
// advanced so the rate is always finite. Each result overwrites *scratch, so the last
// transformed point is left there; a nil scratch uses a local buffer.
func RunTimedThroughputTrial(b MatVecer, m *Transform4x4, samples SampleSet, minDuration time.Duration, scratch *Point4) (ThroughputSample, error) {
	if len(samples) == 0 {
		return ThroughputSample{}, ErrEmptySampleSet
	}
	if scratch == nil {
		scratch = new(Point4)
	}

	var passes int64
	start := time.Now()
	var elapsed time.Duration
	for {
		for i := range samples {
			MatVec4x4(b, m, &samples[i], scratch)
		}
		passes++
		// time.Since reads the monotonic clock.
		elapsed = time.Since(start)
		if elapsed >= minDuration && elapsed > 0 {
			break
		}
	}

	apps := passes * int64(len(samples))
	return ThroughputSample{
		Passes:       passes,
		Applications: apps,
		Elapsed:      elapsed,
		Rate:         float64(apps) / elapsed.Seconds(),
	}, nil
}
