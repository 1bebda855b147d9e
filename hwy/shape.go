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

import (
	"fmt"
	"strconv"
	"strings"
)

// DType identifies the element type stored in a lane.
type DType int

const (
	// InvalidDType is the zero value and never describes real storage.
	InvalidDType DType = iota

	// Half is IEEE 754 binary16, stored as Float16.
	Half

	// Float is IEEE 754 binary32, stored as float32.
	Float

	// Double is IEEE 754 binary64, stored as float64.
	Double
)

// String returns the name used in kernel names ("Half", "Float", "Double").
func (d DType) String() string {
	switch d {
	case Half:
		return "Half"
	case Float:
		return "Float"
	case Double:
		return "Double"
	default:
		return "Invalid"
	}
}

// Size returns the storage size of one lane in bytes.
func (d DType) Size() int {
	switch d {
	case Half:
		return 2
	case Float:
		return 4
	case Double:
		return 8
	default:
		return 0
	}
}

// MaxWidth is the widest vector a Shape can describe.
const MaxWidth = 4

// Shape describes one buffer element: a scalar (Width 1) or a vector of
// Width lanes of the same DType.
type Shape struct {
	DType DType
	Width int
}

// Scalar returns the width-1 shape of d.
func Scalar(d DType) Shape {
	return Shape{DType: d, Width: 1}
}

// VecShape returns the shape of a width-lane vector of d.
func VecShape(d DType, width int) Shape {
	return Shape{DType: d, Width: width}
}

// ShapeOf returns the scalar shape for element type T.
func ShapeOf[T Elem]() Shape {
	return Scalar(DTypeOf[T]())
}

// Valid reports whether s has a known DType and a width in [1, MaxWidth].
func (s Shape) Valid() bool {
	return s.DType.Size() > 0 && s.Width >= 1 && s.Width <= MaxWidth
}

// IsScalar reports whether s describes a single lane.
func (s Shape) IsScalar() bool {
	return s.Width == 1
}

// Stride returns the number of lanes one element occupies in storage.
// Three-lane vectors are padded to four lanes; every other width is dense.
func (s Shape) Stride() int {
	if s.Width == 3 {
		return 4
	}
	return s.Width
}

// Bytes returns the storage size of one element, padding included.
func (s Shape) Bytes() int {
	return s.Stride() * s.DType.Size()
}

// String renders s the way kernel names spell it: "Float", "Float2",
// "Double4", "Half3".
func (s Shape) String() string {
	if s.Width == 1 {
		return s.DType.String()
	}
	return s.DType.String() + strconv.Itoa(s.Width)
}

// ParseShape is the inverse of Shape.String.
func ParseShape(name string) (Shape, error) {
	base := strings.TrimRight(name, "0123456789")
	width := 1
	if digits := name[len(base):]; digits != "" {
		w, err := strconv.Atoi(digits)
		if err != nil {
			return Shape{}, fmt.Errorf("hwy: bad width in shape %q: %w", name, err)
		}
		width = w
	}
	var d DType
	switch base {
	case "Half":
		d = Half
	case "Float":
		d = Float
	case "Double":
		d = Double
	default:
		return Shape{}, fmt.Errorf("hwy: unknown element type in shape %q", name)
	}
	s := Shape{DType: d, Width: width}
	if !s.Valid() || (width == 1 && name != base) {
		return Shape{}, fmt.Errorf("hwy: invalid shape %q", name)
	}
	return s, nil
}

// MustParseShape is like ParseShape but panics on error.
func MustParseShape(name string) Shape {
	s, err := ParseShape(name)
	if err != nil {
		panic(err)
	}
	return s
}
