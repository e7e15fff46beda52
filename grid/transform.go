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

// Point4 is a homogeneous coordinate (x, y, z, w).
type Point4 [4]float64

// NewPoint returns the point (x, y, z, 1).
func NewPoint(x, y, z float64) Point4 {
	return Point4{x, y, z, 1}
}

func (p Point4) X() float64 { return p[0] }
func (p Point4) Y() float64 { return p[1] }
func (p Point4) Z() float64 { return p[2] }
func (p Point4) W() float64 { return p[3] }

// Transform4x4 is a 4x4 matrix stored row-major: element (r, c) is at r*4+c.
type Transform4x4 [16]float64

// Identity returns the 4x4 identity.
func Identity() Transform4x4 {
	return Transform4x4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns element (r, c).
func (m *Transform4x4) At(r, c int) float64 {
	return m[r*4+c]
}

// RowMajor returns the backing storage as a row-major slice, lda = 4.
func (m *Transform4x4) RowMajor() []float64 {
	return m[:]
}

// ColMajor returns a column-major copy, lda = 4.
func (m *Transform4x4) ColMajor() [16]float64 {
	var out [16]float64
	for r := range 4 {
		for c := range 4 {
			out[c*4+r] = m[r*4+c]
		}
	}
	return out
}

// Apply computes m*p in plain Go. It is the reference the backend path is
// checked against.
func (m *Transform4x4) Apply(p Point4) Point4 {
	var out Point4
	for r := range 4 {
		row := m[r*4 : r*4+4]
		out[r] = row[0]*p[0] + row[1]*p[1] + row[2]*p[2] + row[3]*p[3]
	}
	return out
}

// BuildOrthographicTransform returns the orthographic projection mapping the
// box [left, right] x [bottom, top] x [-near, -far] onto the unit cube:
//
//	| 2/(r-l)  0        0         -(r+l)/(r-l) |
//	| 0        2/(t-b)  0         -(t+b)/(t-b) |
//	| 0        0        -2/(f-n)  -(f+n)/(f-n) |
//	| 0        0        0          1           |
//
// Zero-width or non-finite intervals, and intervals whose width or
// reciprocal overflows, return ErrDegenerateBounds.
func BuildOrthographicTransform(left, right, bottom, top, near, far float64) (Transform4x4, error) {
	for _, v := range [...]float64{left, right, bottom, top, near, far} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Transform4x4{}, fmt.Errorf("%w: non-finite value %v", ErrDegenerateBounds, v)
		}
	}
	if right == left {
		return Transform4x4{}, fmt.Errorf("%w: left == right == %v", ErrDegenerateBounds, left)
	}
	if top == bottom {
		return Transform4x4{}, fmt.Errorf("%w: bottom == top == %v", ErrDegenerateBounds, bottom)
	}
	if far == near {
		return Transform4x4{}, fmt.Errorf("%w: near == far == %v", ErrDegenerateBounds, near)
	}

	rl := right - left
	tb := top - bottom
	fn := far - near
	m := Transform4x4{
		2 / rl, 0, 0, -(right + left) / rl,
		0, 2 / tb, 0, -(top + bottom) / tb,
		0, 0, -2 / fn, -(far + near) / fn,
		0, 0, 0, 1,
	}
	// Intervals that are too wide or too narrow overflow the divisions.
	for _, v := range [...]float64{rl, tb, fn} {
		if math.IsInf(v, 0) {
			return Transform4x4{}, fmt.Errorf("%w: interval width overflows", ErrDegenerateBounds)
		}
	}
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Transform4x4{}, fmt.Errorf("%w: non-finite matrix term", ErrDegenerateBounds)
		}
	}
	return m, nil
}
