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

// Package dispatch applies registered kernels to buffers of elements.
//
// A Dispatcher resolves a kernel by name, checks the input buffer against
// the kernel's declared shape, and evaluates the kernel once per element.
// Long buffers are split into contiguous batches that run on a persistent
// worker pool; every element is computed independently, so the result is
// bit-identical to a sequential run.
//
// Usage:
//
//	d := dispatch.New(kernels.Default())
//	defer d.Close()
//
//	in := dispatch.FromVec2([]hwy.Vec2[float32]{{0, 0.5}})
//	out, err := d.Dispatch("testSinpiFloat2Float2", in)
package dispatch

import (
	"runtime"

	"github.com/ajroetker/go-elementwise/hwy"
	"github.com/ajroetker/go-elementwise/hwy/contrib/workerpool"
	"github.com/ajroetker/go-elementwise/kernel"
)

// registersPerBatch sizes the default grain: a batch covers this many
// registers' worth of elements at the current dispatch level.
const registersPerBatch = 64

// Dispatcher runs kernels from a registry over buffers. It is safe for
// concurrent use.
type Dispatcher struct {
	reg        *kernel.Registry
	pool       *workerpool.Pool
	ownsPool   bool
	grain      int
	sequential bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithPool runs batches on pool instead of a pool owned by the dispatcher.
// The caller keeps ownership and must close pool after the dispatcher is
// done with it.
func WithPool(pool *workerpool.Pool) Option {
	return func(d *Dispatcher) { d.pool = pool }
}

// WithGrain sets the number of elements per batch. Buffers no longer than
// one grain run on the calling goroutine. Non-positive values restore the
// default, derived from the kernel's shape and hwy.BatchElements.
func WithGrain(elements int) Option {
	return func(d *Dispatcher) { d.grain = elements }
}

// WithSequential disables the worker pool: every call runs on the calling
// goroutine.
func WithSequential() Option {
	return func(d *Dispatcher) { d.sequential = true }
}

// New returns a dispatcher over reg.
func New(reg *kernel.Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{reg: reg}
	for _, opt := range opts {
		opt(d)
	}
	if d.pool == nil && !d.sequential {
		d.pool = workerpool.New(runtime.GOMAXPROCS(0))
		d.ownsPool = true
	}
	return d
}

// Close releases the worker pool if the dispatcher created it.
func (d *Dispatcher) Close() {
	if d.ownsPool {
		d.pool.Close()
	}
}

// Registry returns the registry kernels are resolved from.
func (d *Dispatcher) Registry() *kernel.Registry { return d.reg }

// Dispatch resolves name and runs the kernel over in.
func (d *Dispatcher) Dispatch(name string, in *Buffer) (*Buffer, error) {
	k, err := d.reg.Resolve(name)
	if err != nil {
		return nil, err
	}
	return d.Run(k, in)
}

// Run applies k to every element of in and returns a new buffer of the
// same length in k's output shape. Output element i depends only on input
// element i.
func (d *Dispatcher) Run(k *kernel.Kernel, in *Buffer) (*Buffer, error) {
	if err := checkInput(k, in); err != nil {
		return nil, err
	}
	out, err := NewBuffer(k.Out(), in.n)
	if err != nil {
		return nil, err
	}
	if err := d.run(k, out, in); err != nil {
		return nil, err
	}
	return out, nil
}

// RunInto is like Run but writes into out, which must have k's output
// shape and in's length. Padding lanes of out are zeroed.
func (d *Dispatcher) RunInto(k *kernel.Kernel, out, in *Buffer) error {
	if err := checkInput(k, in); err != nil {
		return err
	}
	if out.shape != k.Out() || out.n != in.n {
		return &kernel.ShapeMismatchError{
			Kernel:  k.Name(),
			Want:    k.Out(),
			Got:     out.shape,
			WantLen: in.n,
			GotLen:  out.n,
		}
	}
	return d.run(k, out, in)
}

func checkInput(k *kernel.Kernel, in *Buffer) error {
	if in.shape != k.In() {
		return &kernel.ShapeMismatchError{Kernel: k.Name(), Want: k.In(), Got: in.shape}
	}
	return nil
}

func (d *Dispatcher) run(k *kernel.Kernel, out, in *Buffer) error {
	if in.n == 0 {
		return nil
	}
	switch k.In().DType {
	case hwy.Half:
		return runTyped[hwy.Float16](d, k, out, in)
	case hwy.Float:
		return runTyped[float32](d, k, out, in)
	default:
		return runTyped[float64](d, k, out, in)
	}
}

func runTyped[T hwy.Elem](d *Dispatcher, k *kernel.Kernel, out, in *Buffer) error {
	fn, err := kernel.FuncOf[T](k)
	if err != nil {
		return err
	}
	src, dst := in.flat.([]T), out.flat.([]T)
	shape := k.In()
	width, stride := shape.Width, shape.Stride()

	body := func(start, end int) {
		for i := start; i < end; i++ {
			o := i * stride
			fn(dst[o:o+width:o+width], src[o:o+width:o+width])
			if stride > width {
				clear(dst[o+width : o+stride])
			}
		}
	}

	grain := d.grainFor(shape)
	switch {
	case d.sequential || d.pool == nil || in.n <= grain:
		body(0, in.n)
	case in.n <= grain*d.pool.NumWorkers():
		// One round of batches: split evenly instead of claiming.
		d.pool.ParallelFor(in.n, grain, body)
	default:
		d.pool.ParallelForBatched(in.n, grain, body)
	}
	return nil
}

func (d *Dispatcher) grainFor(shape hwy.Shape) int {
	if d.grain > 0 {
		return d.grain
	}
	return hwy.BatchElements(shape, registersPerBatch)
}
