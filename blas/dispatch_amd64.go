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

//go:build amd64

package blas

import "golang.org/x/sys/cpu"

func init() {
	hasAVX2 = cpu.X86.HasAVX2
	hasFMA = cpu.X86.HasFMA
	hasAVX512 = cpu.X86.HasAVX512F

	if NoSimdEnv() {
		currentLevel = DispatchScalar
		return
	}

	switch {
	case hasAVX512:
		currentLevel = DispatchAVX512
	case hasAVX2 && hasFMA:
		currentLevel = DispatchAVX2
	default:
		currentLevel = DispatchScalar
	}
}
