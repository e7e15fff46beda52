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

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/simpleopenblas/blasbench/blas"
)

// ErrInvalidLoopConfig reports a non-positive size or iteration count.
var ErrInvalidLoopConfig = errors.New("bench: invalid loop configuration")

// LoopConfig drives the fixed-iteration GEMM and GEMV benchmarks.
type LoopConfig struct {
	Size       int
	Iterations int
	Layout     blas.Layout
	Precision  Precision
	Seed       uint64
}

// DefaultLoopConfig is a 64x64 double-precision row-major run of 1000 calls.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		Size:       64,
		Iterations: 1000,
		Layout:     blas.RowMajor,
		Precision:  Float64,
		Seed:       1,
	}
}

func (c LoopConfig) validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: size %d", ErrInvalidLoopConfig, c.Size)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("%w: iterations %d", ErrInvalidLoopConfig, c.Iterations)
	}
	return nil
}

// LoopResult is the outcome of a fixed-iteration benchmark.
type LoopResult struct {
	Op         string        `yaml:"op"`
	Backend    string        `yaml:"backend"`
	Precision  Precision     `yaml:"precision"`
	Layout     string        `yaml:"layout"`
	Size       int           `yaml:"size"`
	Iterations int           `yaml:"iterations"`
	Elapsed    time.Duration `yaml:"elapsed"`
	// OpsPerSec is completed calls per second.
	OpsPerSec float64 `yaml:"ops_per_sec"`
	// FLOPS counts one multiply and one add per inner-product term.
	FLOPS float64 `yaml:"flops"`
	// Checksum is the sum of the output buffer after the last call.
	Checksum float64 `yaml:"checksum"`
}

func fill64(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.Float64()
	}
	return s
}

func fill32(rng *rand.Rand, n int) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = rng.Float32()
	}
	return s
}

func sum[T blas.Floats](s []T) float64 {
	var total float64
	for _, v := range s {
		total += float64(v)
	}
	return total
}

// MatMul times Iterations calls of C = A*B on Size x Size matrices.
func (r *Runner) MatMul(cfg LoopConfig) (LoopResult, error) {
	if err := cfg.validate(); err != nil {
		return LoopResult{}, err
	}
	n := cfg.Size
	rng := rand.New(rand.NewSource(cfg.Seed))
	log := r.Log.With().Str("op", "gemm").Int("size", n).Stringer("precision", cfg.Precision).Logger()
	log.Debug().Int("iterations", cfg.Iterations).Stringer("layout", cfg.Layout).Msg("starting")

	var elapsed time.Duration
	var checksum float64
	switch cfg.Precision {
	case Float32:
		a, b, c := fill32(rng, n*n), fill32(rng, n*n), make([]float32, n*n)
		start := time.Now()
		for range cfg.Iterations {
			r.Backend.Sgemm(cfg.Layout, blas.NoTrans, blas.NoTrans, n, n, n, 1, a, n, b, n, 0, c, n)
		}
		elapsed = time.Since(start)
		checksum = sum(c)
	default:
		a, b, c := fill64(rng, n*n), fill64(rng, n*n), make([]float64, n*n)
		start := time.Now()
		for range cfg.Iterations {
			r.Backend.Dgemm(cfg.Layout, blas.NoTrans, blas.NoTrans, n, n, n, 1, a, n, b, n, 0, c, n)
		}
		elapsed = time.Since(start)
		checksum = sum(c)
	}

	res := r.loopResult("gemm", cfg, elapsed, 2*float64(n)*float64(n)*float64(n), checksum)
	log.Debug().Dur("elapsed", elapsed).Float64("ops_per_sec", res.OpsPerSec).Msg("finished")
	return res, nil
}

// MatVec times Iterations calls of y = A*x with a Size x Size matrix.
func (r *Runner) MatVec(cfg LoopConfig) (LoopResult, error) {
	if err := cfg.validate(); err != nil {
		return LoopResult{}, err
	}
	n := cfg.Size
	rng := rand.New(rand.NewSource(cfg.Seed))
	log := r.Log.With().Str("op", "gemv").Int("size", n).Stringer("precision", cfg.Precision).Logger()
	log.Debug().Int("iterations", cfg.Iterations).Stringer("layout", cfg.Layout).Msg("starting")

	var elapsed time.Duration
	var checksum float64
	switch cfg.Precision {
	case Float32:
		a, x, y := fill32(rng, n*n), fill32(rng, n), make([]float32, n)
		start := time.Now()
		for range cfg.Iterations {
			r.Backend.Sgemv(cfg.Layout, blas.NoTrans, n, n, 1, a, n, x, 1, 0, y, 1)
		}
		elapsed = time.Since(start)
		checksum = sum(y)
	default:
		a, x, y := fill64(rng, n*n), fill64(rng, n), make([]float64, n)
		start := time.Now()
		for range cfg.Iterations {
			r.Backend.Dgemv(cfg.Layout, blas.NoTrans, n, n, 1, a, n, x, 1, 0, y, 1)
		}
		elapsed = time.Since(start)
		checksum = sum(y)
	}

	res := r.loopResult("gemv", cfg, elapsed, 2*float64(n)*float64(n), checksum)
	log.Debug().Dur("elapsed", elapsed).Float64("ops_per_sec", res.OpsPerSec).Msg("finished")
	return res, nil
}

func (r *Runner) loopResult(op string, cfg LoopConfig, elapsed time.Duration, flopsPerCall, checksum float64) LoopResult {
	return LoopResult{
		Op:         op,
		Backend:    r.Backend.Name(),
		Precision:  cfg.Precision,
		Layout:     cfg.Layout.String(),
		Size:       cfg.Size,
		Iterations: cfg.Iterations,
		Elapsed:    elapsed,
		OpsPerSec:  rate(float64(cfg.Iterations), elapsed),
		FLOPS:      rate(float64(cfg.Iterations)*flopsPerCall, elapsed),
		Checksum:   checksum,
	}
}
