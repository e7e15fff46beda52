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
	"fmt"
	"math"
)

// SampleSet is an ordered list of points, lexicographic in (i, j, k).
type SampleSet []Point4

// AxisResolution is the per-axis lattice size used for count points:
// round(cbrt(count)).
func AxisResolution(count int) int {
	return int(math.Round(math.Cbrt(float64(count))))
}

// GenerateSampleGrid returns at most count points on an n x n x n lattice
// spanning [lo, hi] on every axis, n = AxisResolution(count). Generation
// stops as soon as count points exist, so when n^3 > count the last plane is
// partial, and when n^3 < count fewer than count points are returned.
//
// With n == 1 the single point sits at the centre of the cube.
func GenerateSampleGrid(lo, hi float64, count int) (SampleSet, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	n := AxisResolution(count)
	return GenerateSampleGridInto(make(SampleSet, 0, min(count, n*n*n)), lo, hi, count)
}

// GenerateSampleGridInto is GenerateSampleGrid writing into dst[:0]. The
// caller's capacity is reused; it only grows through append.
func GenerateSampleGridInto(dst SampleSet, lo, hi float64, count int) (SampleSet, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("%w: non-finite range [%v, %v]", ErrDegenerateBounds, lo, hi)
	}
	if lo >= hi {
		return nil, fmt.Errorf("%w: min %v must be below max %v", ErrDegenerateBounds, lo, hi)
	}

	n := AxisResolution(count)
	coords := axisCoords(lo, hi, n)

	out := dst[:0]
	for i := 0; i < n && len(out) < count; i++ {
		for j := 0; j < n && len(out) < count; j++ {
			for k := 0; k < n && len(out) < count; k++ {
				out = append(out, NewPoint(coords[i], coords[j], coords[k]))
			}
		}
	}
	return out, nil
}

// axisCoords returns the n lattice coordinates along one axis. Coordinates
// are blended as lo*(1-t) + hi*t so ranges whose width overflows float64
// still yield finite points inside [lo, hi].
func axisCoords(lo, hi float64, n int) []float64 {
	coords := make([]float64, n)
	if n == 1 {
		coords[0] = lo/2 + hi/2
		return coords
	}
	for i := range coords {
		t := float64(i) / float64(n-1)
		coords[i] = min(max(lo*(1-t)+hi*t, lo), hi)
	}
	coords[0] = lo
	coords[n-1] = hi
	return coords
}
