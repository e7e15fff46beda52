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

import "errors"

var (
	// ErrDegenerateBounds reports a zero-width, inverted or non-finite interval.
	ErrDegenerateBounds = errors.New("grid: degenerate bounds")

	// ErrInvalidCount reports a requested sample count below one.
	ErrInvalidCount = errors.New("grid: sample count must be at least 1")

	// ErrEmptySampleSet is returned by RunTimedThroughputTrial when there is
	// nothing to transform.
	ErrEmptySampleSet = errors.New("grid: empty sample set")
)
