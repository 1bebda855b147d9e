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

// Package math provides the pi-scaled trigonometric intrinsics used by the
// elementwise kernels: sinpi, cospi and tanpi, where fpi(x) = f(π·x).
//
// # Function Families
//
// Each function comes in four forms:
//
// Scalar, for float32 and float64:
//   - SinPi[T](x T) T
//   - CosPi[T](x T) T
//   - TanPi[T](x T) T
//
// Half precision, computed in float64 and narrowed through float32:
//   - SinPiHalf(x hwy.Float16) hwy.Float16 (and CosPiHalf, TanPiHalf)
//
// Fixed-width vectors, one scalar call per lane:
//   - SinPi2[T](v hwy.Vec2[T]) hwy.Vec2[T]
//   - SinPi3[T](v hwy.Vec3[T]) hwy.Vec3[T]
//   - SinPi4[T](v hwy.Vec4[T]) hwy.Vec4[T]
//
// Bulk slices:
//   - BaseSinPi[T](input, output []T) (and BaseCosPi, BaseTanPi)
//
// # Accuracy
//
// The argument is reduced modulo 2 before π is applied. The reduction is
// exact in floating point, so:
//   - integers map to exactly ±0 under SinPi and TanPi
//   - half-integers map to exactly ±1 under SinPi and +0 under CosPi
//   - every |x| >= 2^52 is an integer and is handled without loss
//
// Float32 results are computed in float64 and rounded once, and stay within
// 1 ULP. Float64 results stay within a few ULP of sin(π·x).
//
// # Special Values
//
//   - SinPi(±0) = ±0, SinPi(+n) = +0, SinPi(-n) = -0
//   - CosPi(n + 0.5) = +0
//   - TanPi(n + 0.5) = ±Inf
//   - f(±Inf) = NaN, f(NaN) = NaN
package math
