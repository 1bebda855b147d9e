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

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/ajroetker/go-elementwise/hwy"
)

// toFloat64 widens v to float64 exactly.
func toFloat64[T hwy.Elem](v T) float64 {
	switch v := any(v).(type) {
	case hwy.Float16:
		return v.Float64()
	case float32:
		return float64(v)
	case float64:
		return v
	}
	panic("unreachable")
}

// fromFloat64 rounds x to the nearest T.
func fromFloat64[T hwy.Elem](x float64) T {
	var zero T
	switch any(zero).(type) {
	case hwy.Float16:
		return any(hwy.NewFloat16FromFloat64(x)).(T)
	case float32:
		return any(float32(x)).(T)
	default:
		return any(x).(T)
	}
}

// orderedBits maps the bits of v onto integers that are ordered like the
// values, with +0 and -0 both at 0. The distance between two mapped values
// counts the representable T values between them.
func orderedBits[T hwy.Elem](v T) int64 {
	var bits, sign uint64
	switch v := any(v).(type) {
	case hwy.Float16:
		bits, sign = uint64(v.Bits()), 1<<15
	case float32:
		bits, sign = uint64(stdmath.Float32bits(v)), 1<<31
	case float64:
		bits, sign = stdmath.Float64bits(v), 1<<63
	}
	if bits&sign != 0 {
		return -int64(bits &^ sign)
	}
	return int64(bits)
}

// ULPDistance returns the number of representable T values between a and
// b. NaNs are infinitely far from everything, themselves included.
func ULPDistance[T hwy.Elem](a, b T) uint64 {
	if isNaN(a) || isNaN(b) {
		return stdmath.MaxUint64
	}
	oa, ob := orderedBits(a), orderedBits(b)
	if oa < ob {
		oa, ob = ob, oa
	}
	// The true difference can exceed MaxInt64 for values of opposite sign,
	// but always fits a uint64.
	return uint64(oa) - uint64(ob)
}

func isNaN[T hwy.Elem](v T) bool {
	if h, ok := any(v).(hwy.Float16); ok {
		return h.IsNaN()
	}
	return stdmath.IsNaN(toFloat64(v))
}

// Check reports whether got matches want within tol ULPs, and the distance
// between them. NaN matches only NaN, infinities and signed zeros must match
// exactly.
func Check[T hwy.Elem](got, want T, tol int) (ok bool, ulp uint64) {
	g, w := toFloat64(got), toFloat64(want)
	switch {
	case isNaN(want):
		return isNaN(got), 0
	case stdmath.IsInf(w, 0):
		if g == w {
			return true, 0
		}
		return false, stdmath.MaxUint64
	case stdmath.IsInf(g, 0):
		return false, stdmath.MaxUint64
	case w == 0 && g == 0:
		return stdmath.Signbit(g) == stdmath.Signbit(w), 0
	}

	ulp = ULPDistance(got, want)
	if _, double := any(got).(float64); double {
		return scalar.EqualWithinULP(g, w, uint(tol)), ulp
	}
	return ulp <= uint64(tol), ulp
}
