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
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownBackend is returned by Lookup for names nothing registered.
var ErrUnknownBackend = errors.New("blas: unknown backend")

type entry struct {
	backend  *Backend
	priority int
}

var (
	registryMu sync.RWMutex
	registry   = map[string]entry{}
)

// Register makes an implementation available under name. When several
// backends are registered the one with the highest priority is the default.
// Registering the same name twice replaces the earlier entry.
func Register(name string, priority int, f64 Float64, f32 Float32) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = entry{backend: New(name, f64, f32), priority: priority}
}

// Lookup returns the backend registered under name.
func Lookup(name string) (*Backend, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownBackend, name, namesLocked())
	}
	return e.backend, nil
}

// Names lists registered backends, highest priority first.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return namesLocked()
}

func namesLocked() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := registry[names[i]].priority, registry[names[j]].priority
		if pi != pj {
			return pi > pj
		}
		return names[i] < names[j]
	})
	return names
}

// DefaultName returns the highest-priority backend name.
func DefaultName() string {
	names := Names()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
