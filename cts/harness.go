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

// Package cts is the conformance harness for elementwise kernels.
//
// For every manifest entry the harness builds an input buffer, dispatches
// the kernel, and checks each output lane against an independent float64
// reference rounded to the lane type. A lane passes when it is within the
// entry's ULP tolerance; NaN, infinities and signed zeros must match
// exactly.
//
// Usage:
//
//	d := dispatch.New(kernels.Default())
//	defer d.Close()
//	m, _ := kernels.Manifest()
//
//	h := cts.New(d, cts.Config{Elements: 4096, Seed: 1})
//	report, err := h.Run(ctx, m.Entries())
//	if !report.Passed() { ... }
package cts

import (
	"context"
	"fmt"
	stdmath "math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/ajroetker/go-elementwise/dispatch"
	"github.com/ajroetker/go-elementwise/hwy"
	"github.com/ajroetker/go-elementwise/internal/manifest"
)

// MaxRecordedMismatches bounds the mismatches kept per result. Failures
// beyond it are counted but not recorded.
const MaxRecordedMismatches = 16

// Config controls input generation and concurrency.
type Config struct {
	// Elements is the number of buffer elements per kernel.
	Elements int

	// Seed seeds the random inputs. Equal seeds give equal inputs.
	Seed uint64

	// Workers bounds how many kernels are checked at once. Zero means
	// GOMAXPROCS.
	Workers int
}

// DefaultConfig holds the defaults of cmd/hwycts. New also takes Elements
// from it when a Config leaves it zero.
var DefaultConfig = Config{Elements: 1024, Seed: 1}

// Mismatch is one lane outside tolerance.
type Mismatch struct {
	Element int
	Lane    int
	Input   float64
	Want    float64
	Got     float64
	ULP     uint64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("[%d].%d: f(%v) = %v, want %v (%d ulp)", m.Element, m.Lane, m.Input, m.Got, m.Want, m.ULP)
}

// Result is the outcome of checking one kernel.
type Result struct {
	Kernel    string
	Shape     hwy.Shape
	Tolerance int

	// Lanes is the number of lanes compared; Failures how many failed.
	Lanes    int
	Failures int

	// MaxULP and MeanULP summarize the distance of lanes where both the
	// expected and the actual value are finite.
	MaxULP  uint64
	MeanULP float64

	Mismatches []Mismatch
	Duration   time.Duration
}

// Passed reports whether every lane was within tolerance.
func (r *Result) Passed() bool { return r.Failures == 0 }

// Report collects the results of one harness run, in entry order.
type Report struct {
	Results []*Result
}

// Passed reports whether every kernel passed.
func (r *Report) Passed() bool {
	return len(r.Failed()) == 0
}

// Failed returns the results that did not pass.
func (r *Report) Failed() []*Result {
	var failed []*Result
	for _, res := range r.Results {
		if !res.Passed() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Harness checks kernels through a dispatcher.
type Harness struct {
	d   *dispatch.Dispatcher
	cfg Config
}

// New returns a harness that dispatches through d.
func New(d *dispatch.Dispatcher, cfg Config) *Harness {
	if cfg.Elements <= 0 {
		cfg.Elements = DefaultConfig.Elements
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return &Harness{d: d, cfg: cfg}
}

// Run checks every entry and returns the results in entry order. It fails
// only when a kernel cannot be run at all, for example when it is missing
// from the registry; out-of-tolerance lanes are reported in the Report.
func (h *Harness) Run(ctx context.Context, entries []manifest.Entry) (*Report, error) {
	results := make([]*Result, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(h.cfg.Workers)
	for i, e := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := h.Check(e)
			if err != nil {
				return fmt.Errorf("cts: %s: %w", e.Kernel, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Report{Results: results}, nil
}

// Check runs the kernel of one entry and compares it with the reference.
func (h *Harness) Check(e manifest.Entry) (*Result, error) {
	ref, err := Reference(e.Function)
	if err != nil {
		return nil, err
	}
	switch e.Shape.DType {
	case hwy.Half:
		return check[hwy.Float16](h, e, ref)
	case hwy.Float:
		return check[float32](h, e, ref)
	case hwy.Double:
		return check[float64](h, e, ref)
	}
	return nil, fmt.Errorf("unsupported shape %s", e.Shape)
}

func check[T hwy.Elem](h *Harness, e manifest.Entry, ref ReferenceFunc) (*Result, error) {
	start := time.Now()
	width := e.Shape.Width
	values := Inputs(e, h.cfg.Elements*width, h.cfg.Seed)

	in, err := dispatch.NewBuffer(e.Shape, h.cfg.Elements)
	if err != nil {
		return nil, err
	}
	for i := range h.cfg.Elements {
		lanes := dispatch.Element[T](in, i)
		for l := range lanes {
			lanes[l] = fromFloat64[T](values[i*width+l])
		}
	}

	out, err := h.d.Dispatch(e.Kernel, in)
	if err != nil {
		return nil, err
	}

	res := &Result{Kernel: e.Kernel, Shape: e.Shape, Tolerance: e.ULP}
	var ulps []float64
	for i := range out.Len() {
		src, dst := dispatch.Element[T](in, i), dispatch.Element[T](out, i)
		for l := range dst {
			x := toFloat64(src[l])
			want := fromFloat64[T](ref(x))
			ok, ulp := Check(dst[l], want, e.ULP)
			res.Lanes++
			if w := toFloat64(want); !stdmath.IsNaN(w) && !stdmath.IsInf(w, 0) && ulp != stdmath.MaxUint64 {
				ulps = append(ulps, float64(ulp))
				res.MaxULP = max(res.MaxULP, ulp)
			}
			if ok {
				continue
			}
			res.Failures++
			if len(res.Mismatches) < MaxRecordedMismatches {
				res.Mismatches = append(res.Mismatches, Mismatch{
					Element: i, Lane: l, Input: x,
					Want: toFloat64(want), Got: toFloat64(dst[l]), ULP: ulp,
				})
			}
		}
	}
	if len(ulps) > 0 {
		res.MeanULP = stat.Mean(ulps, nil)
	}
	res.Duration = time.Since(start)
	return res, nil
}
