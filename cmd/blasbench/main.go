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

// Command blasbench runs dense linear-algebra micro-benchmarks against a
// BLAS backend.
//
// Usage:
//
//	blasbench                      # grid throughput, five trials
//	blasbench outer                # rank-1 update, prints the matrix
//	blasbench gemm -n 128 -i 100   # matrix-matrix multiply
//	blasbench gemv --precision float
//	blasbench all --format yaml
//	blasbench backends
//
// The backend, output format and log level default to the
// BLASBENCH_BACKEND, BLASBENCH_FORMAT and BLASBENCH_LOG_LEVEL environment
// variables when set.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
