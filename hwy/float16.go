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

package hwy

import "math"

// Float16 is an IEEE 754 half-precision (binary16) value held in its raw
// bit pattern. It is the storage type for Half lanes; kernels widen it to
// float32, compute, and narrow the result once.
//
//	S | EEEEE | MMMMMMMMMM
type Float16 uint16

// Float16 special values.
const (
	Float16Zero     Float16 = 0x0000
	Float16NegZero  Float16 = 0x8000
	Float16One      Float16 = 0x3C00
	Float16NegOne   Float16 = 0xBC00
	Float16MaxValue Float16 = 0x7BFF // 65504
	Float16Inf      Float16 = 0x7C00
	Float16NegInf   Float16 = 0xFC00
	Float16NaN      Float16 = 0x7E00
)

const (
	f32MinHalfNormal = 0x38800000 // 2^-14 as float32 bits
	f32HalfOverflow  = 0x477FF000 // 65520, the first value that rounds to +Inf
)

// NewFloat16 narrows f to half precision, rounding to nearest even.
func NewFloat16(f float32) Float16 {
	b := math.Float32bits(f)
	sign := uint16(b>>16) & 0x8000
	b &^= 0x80000000

	switch {
	case b > 0x7F800000:
		return Float16(sign) | Float16NaN
	case b >= f32HalfOverflow:
		return Float16(sign) | Float16Inf
	case b < f32MinHalfNormal:
		// Subnormal or zero: the result mantissa is f scaled by 2^24.
		scaled := math.Float32frombits(b) * (1 << 24)
		return Float16(sign | uint16(math.RoundToEven(float64(scaled))))
	}

	h := (b>>23-112)<<10 | (b&0x7FFFFF)>>13
	rem := b & 0x1FFF
	if rem > 0x1000 || (rem == 0x1000 && h&1 == 1) {
		// A carry out of the mantissa bumps the exponent, which is the
		// correct rounding.
		h++
	}
	return Float16(sign | uint16(h))
}

// NewFloat16FromFloat64 narrows f to half precision through float32.
func NewFloat16FromFloat64(f float64) Float16 {
	return NewFloat16(float32(f))
}

// Float32 widens h exactly.
func (h Float16) Float32() float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h) & 0x3FF

	switch exp {
	case 0x1F:
		return math.Float32frombits(sign | 0x7F800000 | mant<<13)
	case 0:
		v := float32(mant) / (1 << 24)
		if sign != 0 {
			return -v
		}
		return v
	}
	return math.Float32frombits(sign | (exp+112)<<23 | mant<<13)
}

// Float64 widens h exactly.
func (h Float16) Float64() float64 {
	return float64(h.Float32())
}

// IsNaN reports whether h is a NaN.
func (h Float16) IsNaN() bool {
	return h&0x7C00 == 0x7C00 && h&0x3FF != 0
}

// IsInf reports whether h is an infinity of either sign.
func (h Float16) IsInf() bool {
	return h&0x7FFF == 0x7C00
}

// IsZero reports whether h is +0 or -0.
func (h Float16) IsZero() bool {
	return h&0x7FFF == 0
}

// Signbit reports whether the sign bit of h is set.
func (h Float16) Signbit() bool {
	return h&0x8000 != 0
}

// Bits returns the raw bit pattern.
func (h Float16) Bits() uint16 {
	return uint16(h)
}
