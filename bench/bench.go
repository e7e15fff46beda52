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

// Package bench holds the four benchmark drivers: the outer product, GEMM,
// GEMV and the grid throughput trial. Each driver returns a result value and
// leaves printing to the report package.
package bench

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/simpleopenblas/blasbench/blas"
)

// Runner executes benchmarks against one backend.
type Runner struct {
	Backend *blas.Backend
	Log     zerolog.Logger
}

// NewRunner returns a Runner whose log lines carry the backend name.
// Pass zerolog.Nop() to silence it.
func NewRunner(b *blas.Backend, log zerolog.Logger) *Runner {
	if b == nil {
		panic("bench: nil backend")
	}
	return &Runner{Backend: b, Log: log.With().Str("backend", b.Name()).Logger()}
}

// Precision selects float32 or float64 buffers.
type Precision int

const (
	Float64 Precision = iota
	Float32
)

// String returns "double" or "float".
func (p Precision) String() string {
	if p == Float32 {
		return "float"
	}
	return "double"
}

// MarshalYAML renders the precision by name.
func (p Precision) MarshalYAML() (any, error) {
	return p.String(), nil
}

// ParsePrecision accepts "double"/"float64"/"d" and "float"/"float32"/"s".
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "double", "float64", "f64", "d":
		return Float64, nil
	case "float", "float32", "f32", "s":
		return Float32, nil
	}
	return 0, fmt.Errorf("bench: unknown precision %q", s)
}

// rate returns n / elapsed seconds, or 0 when no time elapsed.
func rate(n float64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return n / elapsed.Seconds()
}
