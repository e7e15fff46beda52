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

//go:build cgo && netlib

// Registers the netlib implementation, which calls the system CBLAS
// (OpenBLAS on Linux, Accelerate on macOS). Requires cgo and the library
// headers, so it is opt-in via -tags netlib.

package blas

import "gonum.org/v1/netlib/blas/netlib"

func init() {
	Register("netlib", PriorityNetlib, netlib.Implementation{}, netlib.Implementation{})
}
