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

package math

import (
	stdmath "math"

	"github.com/ajroetker/go-elementwise/hwy"
)

// SinPi computes sin(π·x).
//
// The argument is reduced modulo 2 without rounding error before π is
// applied, so the result is accurate for arguments of any magnitude.
//
// Special cases:
//   - SinPi(±0) = ±0
//   - SinPi(n) = +0 for positive integers n, -0 for negative integers
//   - SinPi(±Inf) = NaN
//   - SinPi(NaN) = NaN
func SinPi[T hwy.Floats](x T) T {
	return T(sinPi64(float64(x)))
}

// CosPi computes cos(π·x).
//
// Special cases:
//   - CosPi(n + 0.5) = +0 for integers n
//   - CosPi(±Inf) = NaN
//   - CosPi(NaN) = NaN
func CosPi[T hwy.Floats](x T) T {
	return T(cosPi64(float64(x)))
}

// TanPi computes tan(π·x) as SinPi(x)/CosPi(x).
//
// Special cases:
//   - TanPi(n + 0.5) = ±Inf for integers n
//   - TanPi(n) = ±0 for integers n
//   - TanPi(±Inf) = NaN
//   - TanPi(NaN) = NaN
func TanPi[T hwy.Floats](x T) T {
	return T(tanPi64(float64(x)))
}

// reduce2 returns |x| mod 2 in [0, 2). Every step is exact: halving and
// doubling are exact, and the subtraction cancels to a value that is a
// multiple of ulp(|x|).
func reduce2(ax float64) float64 {
	return ax - 2*stdmath.Floor(ax*piHalf_f64)
}

func sinPi64(x float64) float64 {
	if stdmath.IsNaN(x) || stdmath.IsInf(x, 0) {
		return stdmath.NaN()
	}
	ax := stdmath.Abs(x)
	if ax >= piIntegral_f64 {
		return stdmath.Copysign(0, x)
	}

	neg := x < 0
	r := reduce2(ax)
	if r >= 1 {
		// sin(π(r)) = -sin(π(r-1))
		r--
		neg = !neg
	}
	if r > piHalf_f64 {
		r = 1 - r
	}

	// r is in [0, 0.5]. At r == 0.25 both SinPi and CosPi evaluate
	// cos(π/4), so TanPi(0.25) is exactly 1.
	var y float64
	if r < piQuarter_f64 {
		y = stdmath.Sin(stdmath.Pi * r)
	} else {
		y = stdmath.Cos(stdmath.Pi * (piHalf_f64 - r))
	}
	if y == 0 {
		return stdmath.Copysign(0, x)
	}
	if neg {
		return -y
	}
	return y
}

func cosPi64(x float64) float64 {
	if stdmath.IsNaN(x) || stdmath.IsInf(x, 0) {
		return stdmath.NaN()
	}

	r := reduce2(stdmath.Abs(x))
	if r > 1 {
		// cos(π(r)) = cos(π(2-r))
		r = 2 - r
	}
	neg := false
	if r > piHalf_f64 {
		r = 1 - r
		neg = true
	}

	// r is in [0, 0.5]; r == 0.5 lands on the sine branch and yields +0.
	var y float64
	if r <= piQuarter_f64 {
		y = stdmath.Cos(stdmath.Pi * r)
	} else {
		y = stdmath.Sin(stdmath.Pi * (piHalf_f64 - r))
	}
	if neg {
		return -y
	}
	return y
}

func tanPi64(x float64) float64 {
	return sinPi64(x) / cosPi64(x)
}
