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

package cts

import (
	stdmath "math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"

	"github.com/ajroetker/go-elementwise/internal/manifest"
)

// SpecialValues are the inputs every kernel is checked on first: signed
// zeros, integers and half-integers, quarter points, tiny and huge
// magnitudes, infinities and NaN.
var SpecialValues = []float64{
	0, stdmath.Copysign(0, -1),
	0.25, -0.25, 0.5, -0.5, 0.75, -0.75,
	1, -1, 1.5, -1.5, 2, -2, 2.5, -2.5, 3, -3.75,
	0x1p-20, -0x1p-20, 0x1p-60, 1e-310,
	1000.5, -1000.25, 1e6 + 0.5, 0x1p52 + 1, -0x1p53,
	1e300, -1e300,
	stdmath.Inf(1), stdmath.Inf(-1), stdmath.NaN(),
}

// gridFraction is the share of generated lanes drawn from an evenly spaced
// grid over the domain; the rest are uniform random.
const gridFraction = 0.25

// Inputs returns lanes input values for e: the special values first, then
// an evenly spaced grid over e.Domain, then uniform random values in
// e.Domain drawn from seed. The result depends only on its arguments.
func Inputs(e manifest.Entry, lanes int, seed uint64) []float64 {
	if lanes <= 0 {
		return nil
	}
	out := make([]float64, 0, lanes)
	out = append(out, SpecialValues[:min(len(SpecialValues), lanes)]...)

	rest := lanes - len(out)
	if grid := int(float64(rest) * gridFraction); grid >= 2 {
		out = append(out, floats.Span(make([]float64, grid), e.Domain.Min, e.Domain.Max)...)
	}

	rng := rand.New(rand.NewPCG(seed, stdmath.Float64bits(e.Domain.Min)^stdmath.Float64bits(e.Domain.Max)))
	width := e.Domain.Max - e.Domain.Min
	for len(out) < lanes {
		out = append(out, e.Domain.Min+rng.Float64()*width)
	}
	return out
}
