package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-elementwise/hwy"
	"github.com/ajroetker/go-elementwise/kernel"
)

func TestNewBuffer(t *testing.T) {
	b, err := NewBuffer(hwy.VecShape(hwy.Half, 3), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, b.Len())
	flat, err := Flat[hwy.Float16](b)
	require.NoError(t, err)
	assert.Len(t, flat, 20)

	_, err = NewBuffer(hwy.VecShape(hwy.Float, 0), 1)
	assert.Error(t, err)
	_, err = NewBuffer(hwy.Scalar(hwy.Float), -1)
	assert.Error(t, err)
}

func TestFromSlice(t *testing.T) {
	b, err := FromSlice(hwy.VecShape(hwy.Float, 2), []float32{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []float32{3, 4}, Element[float32](b, 1))

	_, err = FromSlice(hwy.VecShape(hwy.Float, 4), []float32{1, 2, 3})
	assert.ErrorIs(t, err, kernel.ErrShapeMismatch)

	_, err = FromSlice(hwy.Scalar(hwy.Double), []float32{1})
	assert.ErrorIs(t, err, kernel.ErrShapeMismatch)
}

func TestVec3Layout(t *testing.T) {
	b := FromVec3([]hwy.Vec3[float32]{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, hwy.VecShape(hwy.Float, 3), b.Shape())

	flat, err := Flat[float32](b)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 0, 4, 5, 6, 0}, flat)
	assert.Equal(t, []float32{4, 5, 6}, Element[float32](b, 1))

	vs, err := ToVec3[float32](b)
	require.NoError(t, err)
	assert.Equal(t, []hwy.Vec3[float32]{{1, 2, 3}, {4, 5, 6}}, vs)
}

func TestSliceSharesStorage(t *testing.T) {
	b := FromScalars([]float64{0, 1, 2, 3, 4})
	s := b.Slice(1, 4)
	assert.Equal(t, 3, s.Len())

	Element[float64](s, 0)[0] = 10
	assert.Equal(t, 10.0, Element[float64](b, 1)[0])

	assert.Equal(t, 0, b.Slice(5, 5).Len())
	assert.Panics(t, func() { b.Slice(3, 2) })
	assert.Panics(t, func() { b.Slice(0, 6) })
}

func TestConcat(t *testing.T) {
	a := FromVec2([]hwy.Vec2[float32]{{1, 2}})
	b := FromVec2([]hwy.Vec2[float32]{{3, 4}, {5, 6}})

	c, err := Concat(a, b)
	require.NoError(t, err)
	vs, err := ToVec2[float32](c)
	require.NoError(t, err)
	assert.Equal(t, []hwy.Vec2[float32]{{1, 2}, {3, 4}, {5, 6}}, vs)

	_, err = Concat(a, FromScalars([]float32{1}))
	assert.ErrorIs(t, err, kernel.ErrShapeMismatch)

	_, err = Concat()
	assert.Error(t, err)
}

func TestTypedAccessorsCheckShape(t *testing.T) {
	b := FromVec4([]hwy.Vec4[float64]{{1, 2, 3, 4}})

	_, err := ToVec2[float64](b)
	assert.ErrorIs(t, err, kernel.ErrShapeMismatch)
	_, err = Scalars[float64](b)
	assert.ErrorIs(t, err, kernel.ErrShapeMismatch)
	_, err = Flat[float32](b)
	assert.ErrorIs(t, err, kernel.ErrShapeMismatch)
	assert.Panics(t, func() { Element[float64](b, 1) })

	vs, err := ToVec4[float64](b)
	require.NoError(t, err)
	assert.Equal(t, []hwy.Vec4[float64]{{1, 2, 3, 4}}, vs)
}
