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

//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		return
	}

	// cpu.ARM64.HasASIMD is always true for ARMv8+. SVE vector length is
	// implementation defined; batches are still sized for 128-bit registers.
	switch {
	case cpu.ARM64.HasSVE:
		currentLevel = DispatchSVE
	case cpu.ARM64.HasASIMD:
		currentLevel = DispatchNEON
	default:
		currentLevel = DispatchScalar
	}
}

// HasHalfConversion reports whether the CPU converts float16 in hardware
// (FP16 on ARM).
func HasHalfConversion() bool {
	return cpu.ARM64.HasFPHP
}
