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

import "gonum.org/v1/gonum/blas/gonum"

// Priorities used by the built-in registrations.
const (
	PriorityNative = 0
	PriorityGonum  = 10
	PriorityNetlib = 20
)

func init() {
	Register("native", PriorityNative, Native{}, Native{})
	Register("gonum", PriorityGonum, gonum.Implementation{}, gonum.Implementation{})
}
