// Copyright 2025 go-highway Authors
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

package kernel

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// Registry binds kernel names to kernels.
//
// Kernels are registered once at startup, before any dispatch. Lookups take
// a read lock only, so a populated registry can be shared by any number of
// concurrent dispatchers. The zero value is an empty registry ready to use.
type Registry struct {
	mu      sync.RWMutex
	kernels map[string]*Kernel
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{kernels: make(map[string]*Kernel)}
}

// Register binds k under k.Name(). It fails with a *DuplicateKernelError if
// the name is already bound; the existing binding is kept.
func (r *Registry) Register(k *Kernel) error {
	if k == nil {
		return fmt.Errorf("%w: nil kernel", ErrInvalidKernel)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.kernels[k.name]; exists {
		return &DuplicateKernelError{Name: k.name}
	}
	if r.kernels == nil {
		r.kernels = make(map[string]*Kernel)
	}
	r.kernels[k.name] = k
	return nil
}

// MustRegister is like Register but panics on error. Duplicate names are a
// startup bug, not a runtime condition.
func (r *Registry) MustRegister(kernels ...*Kernel) {
	for _, k := range kernels {
		if err := r.Register(k); err != nil {
			panic(err)
		}
	}
}

// Resolve returns the kernel bound to name, or an *UnknownKernelError.
func (r *Registry) Resolve(name string) (*Kernel, error) {
	r.mu.RLock()
	k, ok := r.kernels[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &UnknownKernelError{Name: name}
	}
	return k, nil
}

// Len returns the number of registered kernels.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.kernels)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := lo.Keys(r.kernels)
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Kernels returns all registered kernels sorted by name.
func (r *Registry) Kernels() []*Kernel {
	return r.Filter(nil)
}

// Filter returns the kernels for which keep returns true, sorted by name.
// A nil keep selects every kernel.
func (r *Registry) Filter(keep func(*Kernel) bool) []*Kernel {
	r.mu.RLock()
	kernels := lo.Values(r.kernels)
	r.mu.RUnlock()

	if keep != nil {
		kernels = lo.Filter(kernels, func(k *Kernel, _ int) bool { return keep(k) })
	}
	slices.SortFunc(kernels, func(a, b *Kernel) int {
		return strings.Compare(a.name, b.name)
	})
	return kernels
}

// Functions returns the distinct intrinsic names of the registered kernels,
// sorted.
func (r *Registry) Functions() []string {
	functions := lo.Uniq(lo.Map(r.Kernels(), func(k *Kernel, _ int) string {
		return k.function
	}))
	slices.Sort(functions)
	return functions
}
