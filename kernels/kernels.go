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

// Package kernels holds the elementwise kernels generated from
// manifest.yaml: sinpi, cospi and tanpi over Half, Float and Double
// elements of widths one to four.
//
// Kernel names follow test<Function><In><Out>, for example
// testSinpiFloat4Float4 applies sinpi to every lane of a Float4 element.
package kernels

//go:generate go run ../cmd/kernelgen -manifest manifest.yaml -output kernels_gen.go

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"github.com/ajroetker/go-elementwise/internal/manifest"
	"github.com/ajroetker/go-elementwise/kernel"
)

//go:embed manifest.yaml
var manifestYAML []byte

var parsedManifest = sync.OnceValues(func() (*manifest.Manifest, error) {
	return manifest.Parse(manifestYAML)
})

// Manifest returns the manifest the kernel table was generated from.
func Manifest() (*manifest.Manifest, error) {
	return parsedManifest()
}

// All returns every generated kernel in manifest order.
func All() []*kernel.Kernel {
	return slices.Concat(generated...)
}

// Register adds every generated kernel to reg.
func Register(reg *kernel.Registry) error {
	for _, k := range All() {
		if err := reg.Register(k); err != nil {
			return fmt.Errorf("kernels: %w", err)
		}
	}
	return nil
}

var defaultRegistry = sync.OnceValue(func() *kernel.Registry {
	reg := kernel.NewRegistry()
	if err := Register(reg); err != nil {
		panic(err)
	}
	return reg
})

// Default returns a shared registry holding every generated kernel. It is
// populated on first use and read-only afterwards.
func Default() *kernel.Registry {
	return defaultRegistry()
}
