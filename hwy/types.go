// Package hwy provides the lane model shared by the elementwise kernel runtime:
// element types, fixed-width vector tuples, buffer shapes, and the runtime
// CPU dispatch level used to size parallel work.
//
// Vectors here are small value types (Go arrays) with independent lanes.
// Every operation on a vector applies lane by lane; no lane ever reads
// another.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-elementwise/hwy"
//
//	v := hwy.Vec2[float32]{0, 0.5}
//	doubled := hwy.Map2(v, func(x float32) float32 { return 2 * x })
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Elem is a constraint for the element types a buffer can store.
// Float16 is a storage type: arithmetic on it goes through float32.
type Elem interface {
	Floats | Float16
}

// Vec2 is a vector of two independent lanes.
type Vec2[T Elem] [2]T

// Vec3 is a vector of three independent lanes.
//
// In buffers a Vec3 occupies a four-lane slot, see Shape.Stride.
type Vec3[T Elem] [3]T

// Vec4 is a vector of four independent lanes.
type Vec4[T Elem] [4]T

// Map2 applies fn to each lane of v.
func Map2[T Elem](v Vec2[T], fn func(T) T) Vec2[T] {
	return Vec2[T]{fn(v[0]), fn(v[1])}
}

// Map3 applies fn to each lane of v.
func Map3[T Elem](v Vec3[T], fn func(T) T) Vec3[T] {
	return Vec3[T]{fn(v[0]), fn(v[1]), fn(v[2])}
}

// Map4 applies fn to each lane of v.
func Map4[T Elem](v Vec4[T], fn func(T) T) Vec4[T] {
	return Vec4[T]{fn(v[0]), fn(v[1]), fn(v[2]), fn(v[3])}
}

// MapLanes applies fn to the first min(len(src), len(dst)) lanes of src and
// writes the results to dst. It is the slice form of Map2, Map3 and Map4.
func MapLanes[T Elem](dst, src []T, fn func(T) T) {
	n := min(len(src), len(dst))
	for i := range n {
		dst[i] = fn(src[i])
	}
}

// DTypeOf returns the DType that stores elements of type T.
func DTypeOf[T Elem]() DType {
	var zero T
	switch any(zero).(type) {
	case Float16:
		return Half
	case float32:
		return Float
	case float64:
		return Double
	}
	// Named float types have no buffer storage.
	return InvalidDType
}
