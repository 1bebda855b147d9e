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

package dispatch

import (
	"fmt"

	"github.com/ajroetker/go-elementwise/hwy"
	"github.com/ajroetker/go-elementwise/kernel"
)

// Buffer is an ordered sequence of elements of one Shape.
//
// Elements are stored flat, Stride lanes per element. Three-lane vectors
// occupy four lanes; the fourth lane is padding and carries no meaning.
type Buffer struct {
	shape hwy.Shape
	n     int

	// flat is a []T with T the storage type of shape.DType, len n*Stride.
	flat any
}

// NewBuffer allocates a zeroed buffer of n shape-shaped elements.
func NewBuffer(shape hwy.Shape, n int) (*Buffer, error) {
	if !shape.Valid() {
		return nil, fmt.Errorf("dispatch: invalid shape %+v", shape)
	}
	if n < 0 {
		return nil, fmt.Errorf("dispatch: negative length %d", n)
	}
	lanes := n * shape.Stride()
	var flat any
	switch shape.DType {
	case hwy.Half:
		flat = make([]hwy.Float16, lanes)
	case hwy.Float:
		flat = make([]float32, lanes)
	case hwy.Double:
		flat = make([]float64, lanes)
	}
	return &Buffer{shape: shape, n: n, flat: flat}, nil
}

// FromSlice wraps data, which holds len(data)/Stride elements in storage
// layout. The buffer aliases data.
func FromSlice[T hwy.Elem](shape hwy.Shape, data []T) (*Buffer, error) {
	if !shape.Valid() {
		return nil, fmt.Errorf("dispatch: invalid shape %+v", shape)
	}
	if got := hwy.DTypeOf[T](); got != shape.DType {
		return nil, fmt.Errorf("dispatch: %s storage for %s buffer: %w", got, shape, kernel.ErrShapeMismatch)
	}
	stride := shape.Stride()
	if len(data)%stride != 0 {
		return nil, fmt.Errorf("dispatch: %d lanes is not a whole number of %s elements: %w",
			len(data), shape, kernel.ErrShapeMismatch)
	}
	return &Buffer{shape: shape, n: len(data) / stride, flat: data}, nil
}

// FromScalars wraps data as a buffer of scalar elements.
func FromScalars[T hwy.Elem](data []T) *Buffer {
	return &Buffer{shape: hwy.ShapeOf[T](), n: len(data), flat: data}
}

// FromVec2 copies vs into a new two-lane buffer.
func FromVec2[T hwy.Elem](vs []hwy.Vec2[T]) *Buffer {
	flat := make([]T, 0, 2*len(vs))
	for _, v := range vs {
		flat = append(flat, v[:]...)
	}
	return &Buffer{shape: hwy.VecShape(hwy.DTypeOf[T](), 2), n: len(vs), flat: flat}
}

// FromVec3 copies vs into a new three-lane buffer. Padding lanes are zero.
func FromVec3[T hwy.Elem](vs []hwy.Vec3[T]) *Buffer {
	flat := make([]T, 4*len(vs))
	for i, v := range vs {
		copy(flat[4*i:], v[:])
	}
	return &Buffer{shape: hwy.VecShape(hwy.DTypeOf[T](), 3), n: len(vs), flat: flat}
}

// FromVec4 copies vs into a new four-lane buffer.
func FromVec4[T hwy.Elem](vs []hwy.Vec4[T]) *Buffer {
	flat := make([]T, 0, 4*len(vs))
	for _, v := range vs {
		flat = append(flat, v[:]...)
	}
	return &Buffer{shape: hwy.VecShape(hwy.DTypeOf[T](), 4), n: len(vs), flat: flat}
}

// Shape returns the element shape.
func (b *Buffer) Shape() hwy.Shape { return b.shape }

// Len returns the number of elements.
func (b *Buffer) Len() int { return b.n }

func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer[%s x %d]", b.shape, b.n)
}

// Slice returns the elements [i, j) as a buffer sharing b's storage.
func (b *Buffer) Slice(i, j int) *Buffer {
	if i < 0 || j < i || j > b.n {
		panic(fmt.Sprintf("dispatch: slice [%d:%d] out of range for %s", i, j, b))
	}
	s := b.shape.Stride()
	var flat any
	switch v := b.flat.(type) {
	case []hwy.Float16:
		flat = v[i*s : j*s : j*s]
	case []float32:
		flat = v[i*s : j*s : j*s]
	case []float64:
		flat = v[i*s : j*s : j*s]
	}
	return &Buffer{shape: b.shape, n: j - i, flat: flat}
}

// Concat returns a new buffer holding the elements of bufs in order. All
// buffers must share one shape; an empty list yields an error.
func Concat(bufs ...*Buffer) (*Buffer, error) {
	if len(bufs) == 0 {
		return nil, fmt.Errorf("dispatch: concat of no buffers")
	}
	shape := bufs[0].shape
	n := 0
	for _, b := range bufs {
		if b.shape != shape {
			return nil, fmt.Errorf("dispatch: concat %s with %s: %w", shape, b.shape, kernel.ErrShapeMismatch)
		}
		n += b.n
	}
	out, err := NewBuffer(shape, n)
	if err != nil {
		return nil, err
	}
	switch dst := out.flat.(type) {
	case []hwy.Float16:
		concatInto(dst, bufs)
	case []float32:
		concatInto(dst, bufs)
	case []float64:
		concatInto(dst, bufs)
	}
	return out, nil
}

func concatInto[T hwy.Elem](dst []T, bufs []*Buffer) {
	off := 0
	for _, b := range bufs {
		off += copy(dst[off:], b.flat.([]T))
	}
}

// Flat returns the storage of b, Stride lanes per element. The slice
// aliases b.
func Flat[T hwy.Elem](b *Buffer) ([]T, error) {
	flat, ok := b.flat.([]T)
	if !ok {
		return nil, fmt.Errorf("dispatch: %s buffer read as %s: %w", b.shape, hwy.DTypeOf[T](), kernel.ErrShapeMismatch)
	}
	return flat, nil
}

// Element returns the Width lanes of element i, aliasing b. It panics if T
// is not the buffer's storage type or i is out of range.
func Element[T hwy.Elem](b *Buffer, i int) []T {
	flat, err := Flat[T](b)
	if err != nil {
		panic(err)
	}
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("dispatch: element %d out of range for %s", i, b))
	}
	o := i * b.shape.Stride()
	return flat[o : o+b.shape.Width : o+b.shape.Width]
}

// Scalars returns the elements of a scalar buffer.
func Scalars[T hwy.Elem](b *Buffer) ([]T, error) {
	if err := expectWidth(b, 1); err != nil {
		return nil, err
	}
	return Flat[T](b)
}

// ToVec2 copies the elements of a two-lane buffer out as vectors.
func ToVec2[T hwy.Elem](b *Buffer) ([]hwy.Vec2[T], error) {
	flat, err := vecFlat[T](b, 2)
	if err != nil {
		return nil, err
	}
	vs := make([]hwy.Vec2[T], b.n)
	for i := range vs {
		copy(vs[i][:], flat[2*i:])
	}
	return vs, nil
}

// ToVec3 copies the elements of a three-lane buffer out as vectors,
// dropping the padding lanes.
func ToVec3[T hwy.Elem](b *Buffer) ([]hwy.Vec3[T], error) {
	flat, err := vecFlat[T](b, 3)
	if err != nil {
		return nil, err
	}
	vs := make([]hwy.Vec3[T], b.n)
	for i := range vs {
		copy(vs[i][:], flat[4*i:])
	}
	return vs, nil
}

// ToVec4 copies the elements of a four-lane buffer out as vectors.
func ToVec4[T hwy.Elem](b *Buffer) ([]hwy.Vec4[T], error) {
	flat, err := vecFlat[T](b, 4)
	if err != nil {
		return nil, err
	}
	vs := make([]hwy.Vec4[T], b.n)
	for i := range vs {
		copy(vs[i][:], flat[4*i:])
	}
	return vs, nil
}

func vecFlat[T hwy.Elem](b *Buffer, width int) ([]T, error) {
	if err := expectWidth(b, width); err != nil {
		return nil, err
	}
	return Flat[T](b)
}

func expectWidth(b *Buffer, width int) error {
	if b.shape.Width != width {
		return fmt.Errorf("dispatch: %s buffer read as width %d: %w", b.shape, width, kernel.ErrShapeMismatch)
	}
	return nil
}
