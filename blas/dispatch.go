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

import (
	"os"
	"runtime"
	"strconv"

	"github.com/pbnjay/memory"
)

// DispatchLevel is the instruction set the native kernels are tuned for.
type DispatchLevel int

const (
	// DispatchScalar uses plain loops.
	DispatchScalar DispatchLevel = iota

	// DispatchAVX2 indicates AVX2 with FMA (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512F (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON/ASIMD (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is set by init() in dispatch_*.go.
var currentLevel DispatchLevel

// Feature flags, set by init() in dispatch_*.go.
var (
	hasAVX2   bool
	hasFMA    bool
	hasAVX512 bool
	hasASIMD  bool
)

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CPUInfo describes the host as seen by the backend.
type CPUInfo struct {
	Arch        string `yaml:"arch"`
	Level       string `yaml:"level"`
	NumCPU      int    `yaml:"num_cpu"`
	HasAVX2     bool   `yaml:"avx2"`
	HasFMA      bool   `yaml:"fma"`
	HasAVX512   bool   `yaml:"avx512"`
	HasASIMD    bool   `yaml:"asimd"`
	TotalMemory uint64 `yaml:"total_memory"`
}

// CPU reports the detected features and total system memory.
func CPU() CPUInfo {
	return CPUInfo{
		Arch:        runtime.GOARCH,
		Level:       currentLevel.String(),
		NumCPU:      runtime.NumCPU(),
		HasAVX2:     hasAVX2,
		HasFMA:      hasFMA,
		HasAVX512:   hasAVX512,
		HasASIMD:    hasASIMD,
		TotalMemory: memory.TotalMemory(),
	}
}

// NoSimdEnv checks if the BLASBENCH_NO_SIMD environment variable is set.
// When set, the native kernels use the scalar loops regardless of CPU.
func NoSimdEnv() bool {
	val := os.Getenv("BLASBENCH_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
