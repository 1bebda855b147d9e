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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

// hasF16C indicates F16C support: float16 <-> float32 conversions (Haswell+).
var hasF16C bool

func init() {
	// F16C detection: use FMA as a proxy (F16C is present on all FMA-capable CPUs)
	if cpu.X86.HasAVX {
		hasF16C = cpu.X86.HasFMA
	}

	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		return
	}

	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512DQ:
		currentLevel = DispatchAVX512
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		currentLevel = DispatchAVX2
	default:
		// SSE2 is part of the amd64 baseline.
		currentLevel = DispatchSSE2
	}
}

// HasHalfConversion reports whether the CPU converts float16 in hardware
// (F16C on x86).
func HasHalfConversion() bool {
	return hasF16C
}
