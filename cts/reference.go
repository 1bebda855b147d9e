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
	"errors"
	"fmt"
	stdmath "math"
)

// ErrNoReference is returned for a function the harness cannot check.
var ErrNoReference = errors.New("cts: no reference implementation")

// ReferenceFunc computes the expected float64 result for one lane.
type ReferenceFunc func(x float64) float64

var references = map[string]ReferenceFunc{
	"sinpi": RefSinPi,
	"cospi": RefCosPi,
	"tanpi": RefTanPi,
}

// Reference returns the reference implementation of function.
func Reference(function string) (ReferenceFunc, error) {
	ref, ok := references[function]
	if !ok {
		return nil, fmt.Errorf("%w for %q", ErrNoReference, function)
	}
	return ref, nil
}

// quarterTurn splits x, taken mod 2, into q quarter turns of pi/2 and a
// remainder f in [-0.25, 0.25], so that pi*x == q*pi/2 + pi*f (mod 2*pi).
// Both parts are exact.
func quarterTurn(x float64) (q int, f float64) {
	r := stdmath.Mod(x, 2)
	n := stdmath.Round(2 * r)
	f = r - n/2
	q = (int(n)%4 + 4) % 4
	return q, f
}

// RefSinPi is sin(pi*x) via quarter-turn reduction. Integers give zero
// with the sign of x.
func RefSinPi(x float64) float64 {
	if stdmath.IsNaN(x) || stdmath.IsInf(x, 0) {
		return stdmath.NaN()
	}
	q, f := quarterTurn(x)
	var s float64
	switch q {
	case 0:
		s = stdmath.Sin(stdmath.Pi * f)
	case 1:
		s = stdmath.Cos(stdmath.Pi * f)
	case 2:
		s = -stdmath.Sin(stdmath.Pi * f)
	default:
		s = -stdmath.Cos(stdmath.Pi * f)
	}
	if s == 0 {
		return stdmath.Copysign(0, x)
	}
	return s
}

// RefCosPi is cos(pi*x). Half-integers give +0.
func RefCosPi(x float64) float64 {
	if stdmath.IsNaN(x) || stdmath.IsInf(x, 0) {
		return stdmath.NaN()
	}
	q, f := quarterTurn(stdmath.Abs(x))
	var c float64
	switch q {
	case 0:
		c = stdmath.Cos(stdmath.Pi * f)
	case 1:
		c = -stdmath.Sin(stdmath.Pi * f)
	case 2:
		c = -stdmath.Cos(stdmath.Pi * f)
	default:
		c = stdmath.Sin(stdmath.Pi * f)
	}
	if c == 0 {
		return 0
	}
	return c
}

// RefTanPi is RefSinPi(x) / RefCosPi(x), so half-integers give a signed
// infinity and integers a signed zero.
func RefTanPi(x float64) float64 {
	return RefSinPi(x) / RefCosPi(x)
}
