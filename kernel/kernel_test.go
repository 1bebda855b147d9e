package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-elementwise/hwy"
	"github.com/ajroetker/go-elementwise/kernel"
)

func TestName(t *testing.T) {
	tests := []struct {
		function string
		shape    hwy.Shape
		want     string
	}{
		{"sinpi", hwy.Scalar(hwy.Float), "testSinpiFloatFloat"},
		{"sinpi", hwy.VecShape(hwy.Float, 2), "testSinpiFloat2Float2"},
		{"sinpi", hwy.VecShape(hwy.Float, 4), "testSinpiFloat4Float4"},
		{"cospi", hwy.VecShape(hwy.Double, 3), "testCospiDouble3Double3"},
		{"tanpi", hwy.Scalar(hwy.Half), "testTanpiHalfHalf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, kernel.Name(tt.function, tt.shape, tt.shape))
	}
}

func TestUnaryAppliesPerLane(t *testing.T) {
	k, err := kernel.Unary("neg", hwy.VecShape(hwy.Double, 3), func(x float64) float64 { return -x })
	require.NoError(t, err)
	assert.Equal(t, "testNegDouble3Double3", k.Name())
	assert.Equal(t, "testNegDouble3Double3(Double3) Double3", k.String())

	fn, err := kernel.FuncOf[float64](k)
	require.NoError(t, err)

	dst := make([]float64, 3)
	fn(dst, []float64{1, -2, 3})
	assert.Equal(t, []float64{-1, 2, -3}, dst)
}

func TestFuncOfWrongType(t *testing.T) {
	k := kernel.MustUnary("neg", hwy.VecShape(hwy.Float, 2), func(x float32) float32 { return -x })

	_, err := kernel.FuncOf[float64](k)
	require.ErrorIs(t, err, kernel.ErrShapeMismatch)

	var mismatch *kernel.ShapeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, hwy.VecShape(hwy.Float, 2), mismatch.Want)
	assert.Equal(t, hwy.VecShape(hwy.Double, 2), mismatch.Got)
	assert.Equal(t, `kernel "testNegFloat2Float2": buffer shape Double2, want Float2`, err.Error())
}

func TestNewValidation(t *testing.T) {
	id := kernel.Func[float32](func(dst, src []float32) { copy(dst, src) })
	float := hwy.Scalar(hwy.Float)

	tests := []struct {
		name    string
		kname   string
		in, out hwy.Shape
		fn      kernel.Func[float32]
	}{
		{"empty name", "", float, float, id},
		{"nil func", "k", float, float, nil},
		{"invalid shape", "k", hwy.VecShape(hwy.Float, 5), hwy.VecShape(hwy.Float, 5), id},
		{"in != out", "k", float, hwy.VecShape(hwy.Float, 2), id},
		{"dtype mismatch", "k", hwy.Scalar(hwy.Double), hwy.Scalar(hwy.Double), id},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := kernel.New(tt.kname, "id", tt.in, tt.out, tt.fn)
			assert.ErrorIs(t, err, kernel.ErrInvalidKernel)
		})
	}

	_, err := kernel.Unary[float32]("id", float, nil)
	assert.ErrorIs(t, err, kernel.ErrInvalidKernel)

	assert.Panics(t, func() {
		kernel.MustUnary("id", hwy.Scalar(hwy.Double), func(x float32) float32 { return x })
	})
}

func TestHalfKernel(t *testing.T) {
	k := kernel.MustUnary("neg", hwy.VecShape(hwy.Half, 2), func(x hwy.Float16) hwy.Float16 { return x ^ 0x8000 })
	fn, err := kernel.FuncOf[hwy.Float16](k)
	require.NoError(t, err)

	dst := make([]hwy.Float16, 2)
	fn(dst, []hwy.Float16{hwy.Float16One, hwy.Float16NegOne})
	assert.Equal(t, []hwy.Float16{hwy.Float16NegOne, hwy.Float16One}, dst)
}
