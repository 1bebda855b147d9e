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

// Package manifest reads the kernel manifest: the list of intrinsics, the
// element types and widths each is built for, and the accuracy each kernel
// must meet.
//
// The manifest drives both the kernel generator and the conformance
// harness, so the generated kernel table and the tolerances it is tested
// against come from one file.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-elementwise/hwy"
	"github.com/ajroetker/go-elementwise/kernel"
)

// ErrInvalidManifest is wrapped by every validation failure.
var ErrInvalidManifest = errors.New("manifest: invalid manifest")

// Manifest is the decoded manifest file.
type Manifest struct {
	// Package is the Go package the generated kernel table belongs to.
	Package   string     `yaml:"package"`
	Functions []Function `yaml:"functions"`
}

// Function describes one intrinsic and the kernels built from it.
type Function struct {
	// Name is the lower-case intrinsic name used in kernel names, e.g. "sinpi".
	Name string `yaml:"name"`

	// Symbol is the exported identifier of the scalar implementation in
	// hwy/contrib/math, e.g. "SinPi". The Half variant is Symbol+"Half".
	Symbol string `yaml:"symbol"`

	// Types lists element types by their DType name: Half, Float, Double.
	Types []string `yaml:"types"`

	// Widths lists the lane counts, 1 for scalar kernels.
	Widths []int `yaml:"widths"`

	// ULP maps a DType name to the largest accepted distance from the
	// reference, in units in the last place of that type.
	ULP map[string]int `yaml:"ulp"`

	// Domain bounds the random inputs the harness draws.
	Domain Domain `yaml:"domain"`
}

// Domain is a closed interval of input values.
type Domain struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Entry is one kernel expanded from a Function.
type Entry struct {
	Kernel   string
	Function string
	Symbol   string
	Shape    hwy.Shape
	ULP      int
	Domain   Domain
}

// Parse decodes and validates a manifest. Unknown fields are rejected.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidManifest)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Marshal encodes m as YAML.
func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate checks that every function is well formed and that no two
// functions share a name.
func (m *Manifest) Validate() error {
	if m.Package == "" {
		return fmt.Errorf("%w: missing package", ErrInvalidManifest)
	}
	if len(m.Functions) == 0 {
		return fmt.Errorf("%w: no functions", ErrInvalidManifest)
	}
	seen := make(map[string]bool, len(m.Functions))
	for i := range m.Functions {
		f := &m.Functions[i]
		if err := f.validate(); err != nil {
			return fmt.Errorf("%w: function %d (%q): %v", ErrInvalidManifest, i, f.Name, err)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: function %q listed twice", ErrInvalidManifest, f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}

func (f *Function) validate() error {
	switch {
	case f.Name == "":
		return errors.New("missing name")
	case f.Symbol == "":
		return errors.New("missing symbol")
	case len(f.Types) == 0:
		return errors.New("no types")
	case len(f.Widths) == 0:
		return errors.New("no widths")
	case !(f.Domain.Min < f.Domain.Max):
		return fmt.Errorf("empty domain [%v, %v]", f.Domain.Min, f.Domain.Max)
	}
	for _, name := range f.Types {
		s, err := hwy.ParseShape(name)
		if err != nil {
			return fmt.Errorf("type %q: %v", name, err)
		}
		if !s.IsScalar() {
			return fmt.Errorf("type %q: want an element type, not a vector", name)
		}
		tol, ok := f.ULP[name]
		if !ok {
			return fmt.Errorf("no ulp tolerance for %s", name)
		}
		if tol < 0 {
			return fmt.Errorf("negative ulp tolerance %d for %s", tol, name)
		}
	}
	for _, w := range f.Widths {
		if w < 1 || w > hwy.MaxWidth {
			return fmt.Errorf("width %d outside [1, %d]", w, hwy.MaxWidth)
		}
	}
	if dup, ok := firstDuplicate(f.Types); ok {
		return fmt.Errorf("type %s listed twice", dup)
	}
	if dup, ok := firstDuplicate(f.Widths); ok {
		return fmt.Errorf("width %d listed twice", dup)
	}
	return nil
}

func firstDuplicate[T comparable](xs []T) (T, bool) {
	seen := make(map[T]bool, len(xs))
	for _, x := range xs {
		if seen[x] {
			return x, true
		}
		seen[x] = true
	}
	var zero T
	return zero, false
}

// Entries expands every function into one entry per (type, width) pair, in
// manifest order: functions, then types, then widths.
func (m *Manifest) Entries() []Entry {
	var entries []Entry
	for _, f := range m.Functions {
		entries = append(entries, f.Entries()...)
	}
	return entries
}

// Entries expands f into one entry per (type, width) pair.
func (f *Function) Entries() []Entry {
	entries := make([]Entry, 0, len(f.Types)*len(f.Widths))
	for _, name := range f.Types {
		dtype := hwy.MustParseShape(name).DType
		for _, w := range f.Widths {
			shape := hwy.VecShape(dtype, w)
			entries = append(entries, Entry{
				Kernel:   kernel.Name(f.Name, shape, shape),
				Function: f.Name,
				Symbol:   f.Symbol,
				Shape:    shape,
				ULP:      f.ULP[name],
				Domain:   f.Domain,
			})
		}
	}
	return entries
}

// Lookup returns the entry for the named kernel.
func (m *Manifest) Lookup(kernelName string) (Entry, bool) {
	for _, e := range m.Entries() {
		if e.Kernel == kernelName {
			return e, true
		}
	}
	return Entry{}, false
}
