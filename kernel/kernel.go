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

// Package kernel defines named unary elementwise kernels and the registry
// that binds kernel names to them.
//
// A kernel pairs a typed per-element function with the shape of the
// elements it consumes and produces. Kernels are immutable once built and
// are safe to share across goroutines.
package kernel

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-elementwise/hwy"
)

// Func computes one element: src and dst each hold exactly Width lanes.
// It must be pure; the dispatcher may call it concurrently for different
// elements.
type Func[T hwy.Elem] func(dst, src []T)

// Kernel is a named unary elementwise function with declared input and
// output shapes.
type Kernel struct {
	name     string
	function string
	in, out  hwy.Shape

	// fn holds a Func[T] whose T matches in.DType.
	fn any
}

// New builds a kernel named name that computes function over in-shaped
// elements. Unary kernels produce the shape they consume, so in and out must
// be equal, and T must be the storage type of in.DType.
func New[T hwy.Elem](name, function string, in, out hwy.Shape, fn Func[T]) (*Kernel, error) {
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: empty name", ErrInvalidKernel)
	case fn == nil:
		return nil, fmt.Errorf("%w: %s has no function", ErrInvalidKernel, name)
	case !in.Valid():
		return nil, fmt.Errorf("%w: %s has invalid shape %+v", ErrInvalidKernel, name, in)
	case in != out:
		return nil, fmt.Errorf("%w: %s maps %s to %s", ErrInvalidKernel, name, in, out)
	case in.DType != hwy.DTypeOf[T]():
		return nil, fmt.Errorf("%w: %s declared %s but computes %s", ErrInvalidKernel, name, in.DType, hwy.DTypeOf[T]())
	}
	return &Kernel{name: name, function: function, in: in, out: out, fn: fn}, nil
}

// Unary builds the kernel that applies scalar to every lane of a
// shape-shaped element. The kernel is named by the CTS convention, see Name.
func Unary[T hwy.Elem](function string, shape hwy.Shape, scalar func(T) T) (*Kernel, error) {
	if scalar == nil {
		return nil, fmt.Errorf("%w: %s has no function", ErrInvalidKernel, function)
	}
	fn := func(dst, src []T) {
		hwy.MapLanes(dst, src, scalar)
	}
	return New(Name(function, shape, shape), function, shape, shape, Func[T](fn))
}

// MustUnary is like Unary but panics on error. It is meant for static
// kernel tables.
func MustUnary[T hwy.Elem](function string, shape hwy.Shape, scalar func(T) T) *Kernel {
	k, err := Unary(function, shape, scalar)
	if err != nil {
		panic(err)
	}
	return k
}

// Name returns the conventional kernel name test<Function><In><Out>, for
// example Name("sinpi", Float4, Float4) == "testSinpiFloat4Float4".
func Name(function string, in, out hwy.Shape) string {
	return "test" + cases.Title(language.Und).String(function) + in.String() + out.String()
}

// Name returns the registered name of the kernel.
func (k *Kernel) Name() string { return k.name }

// Function returns the name of the intrinsic the kernel applies, e.g. "sinpi".
func (k *Kernel) Function() string { return k.function }

// In returns the element shape the kernel consumes.
func (k *Kernel) In() hwy.Shape { return k.in }

// Out returns the element shape the kernel produces.
func (k *Kernel) Out() hwy.Shape { return k.out }

func (k *Kernel) String() string {
	return fmt.Sprintf("%s(%s) %s", k.name, k.in, k.out)
}

// FuncOf returns the typed per-element function of k. It fails with a
// *ShapeMismatchError when T is not the storage type of k's input.
func FuncOf[T hwy.Elem](k *Kernel) (Func[T], error) {
	fn, ok := k.fn.(Func[T])
	if !ok {
		return nil, &ShapeMismatchError{
			Kernel: k.name,
			Want:   k.in,
			Got:    hwy.VecShape(hwy.DTypeOf[T](), k.in.Width),
		}
	}
	return fn, nil
}
