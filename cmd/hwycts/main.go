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

// Command hwycts runs the elementwise kernel conformance suite.
//
// Usage:
//
//	hwycts list --function sinpi
//	hwycts run --elements 4096 --seed 7
//	hwycts run --kernel testSinpiFloat4Float4 -v
//	hwycts info
//
// Flag defaults can be set from the environment: HWYCTS_ELEMENTS,
// HWYCTS_SEED, HWYCTS_WORKERS and HWYCTS_GRAIN. HWY_NO_SIMD=1 forces the
// scalar dispatch level, which shrinks the default dispatch grain.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
