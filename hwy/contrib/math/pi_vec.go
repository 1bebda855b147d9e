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

import "github.com/ajroetker/go-elementwise/hwy"

// SinPi2 computes sin(π·x) for each lane of v.
func SinPi2[T hwy.Floats](v hwy.Vec2[T]) hwy.Vec2[T] { return hwy.Map2(v, SinPi[T]) }

// SinPi3 computes sin(π·x) for each lane of v.
func SinPi3[T hwy.Floats](v hwy.Vec3[T]) hwy.Vec3[T] { return hwy.Map3(v, SinPi[T]) }

// SinPi4 computes sin(π·x) for each lane of v.
func SinPi4[T hwy.Floats](v hwy.Vec4[T]) hwy.Vec4[T] { return hwy.Map4(v, SinPi[T]) }

// CosPi2 computes cos(π·x) for each lane of v.
func CosPi2[T hwy.Floats](v hwy.Vec2[T]) hwy.Vec2[T] { return hwy.Map2(v, CosPi[T]) }

// CosPi3 computes cos(π·x) for each lane of v.
func CosPi3[T hwy.Floats](v hwy.Vec3[T]) hwy.Vec3[T] { return hwy.Map3(v, CosPi[T]) }

// CosPi4 computes cos(π·x) for each lane of v.
func CosPi4[T hwy.Floats](v hwy.Vec4[T]) hwy.Vec4[T] { return hwy.Map4(v, CosPi[T]) }

// TanPi2 computes tan(π·x) for each lane of v.
func TanPi2[T hwy.Floats](v hwy.Vec2[T]) hwy.Vec2[T] { return hwy.Map2(v, TanPi[T]) }

// TanPi3 computes tan(π·x) for each lane of v.
func TanPi3[T hwy.Floats](v hwy.Vec3[T]) hwy.Vec3[T] { return hwy.Map3(v, TanPi[T]) }

// TanPi4 computes tan(π·x) for each lane of v.
func TanPi4[T hwy.Floats](v hwy.Vec4[T]) hwy.Vec4[T] { return hwy.Map4(v, TanPi[T]) }

// BaseSinPi computes sin(π·x) for each element of input and writes the
// results to output. Processes min(len(input), len(output)) elements.
func BaseSinPi[T hwy.Floats](input, output []T) {
	hwy.MapLanes(output, input, SinPi[T])
}

// BaseCosPi computes cos(π·x) for each element of input and writes the
// results to output. Processes min(len(input), len(output)) elements.
func BaseCosPi[T hwy.Floats](input, output []T) {
	hwy.MapLanes(output, input, CosPi[T])
}

// BaseTanPi computes tan(π·x) for each element of input and writes the
// results to output. Processes min(len(input), len(output)) elements.
func BaseTanPi[T hwy.Floats](input, output []T) {
	hwy.MapLanes(output, input, TanPi[T])
}
