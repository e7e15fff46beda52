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

// Package grid measures how many homogeneous 3-D points per second a BLAS
// backend can push through a fixed 4x4 transform.
//
// # Pieces
//
//   - BuildOrthographicTransform builds the 4x4 orthographic projection.
//   - GenerateSampleGrid lays out a near-cubic lattice of Point4 values.
//   - MatVec4x4 is the single backend call: row-major 4x4 times a 4-vector.
//   - RunTimedThroughputTrial busy-loops over the sample set until a minimum
//     wall-clock duration has passed and reports the rate.
//
// # Example Usage
//
//	b, _ := blas.Lookup("gonum")
//	m, err := grid.BuildOrthographicTransform(-1000, 1000, -1000, 1000, 0.1, 1000)
//	if err != nil {
//	    return err
//	}
//	samples, err := grid.GenerateSampleGrid(-100, 100, 125000)
//	if err != nil {
//	    return err
//	}
//	var scratch grid.Point4
//	s, err := grid.RunTimedThroughputTrial(b, &m, samples, time.Second, &scratch)
//	fmt.Printf("%.0f points/s\n", s.Rate)
//
// Nothing here keeps package-level state; buffers belong to the caller.
package grid
