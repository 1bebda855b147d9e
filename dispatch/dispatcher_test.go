package dispatch_test

import (
	stdmath "math"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-elementwise/dispatch"
	"github.com/ajroetker/go-elementwise/hwy"
	"github.com/ajroetker/go-elementwise/hwy/contrib/math"
	"github.com/ajroetker/go-elementwise/hwy/contrib/workerpool"
	"github.com/ajroetker/go-elementwise/kernel"
	"github.com/ajroetker/go-elementwise/kernels"
)

func newDispatcher(t *testing.T, opts ...dispatch.Option) *dispatch.Dispatcher {
	t.Helper()
	d := dispatch.New(kernels.Default(), opts...)
	t.Cleanup(d.Close)
	return d
}

func TestDispatchSinPiFloat2(t *testing.T) {
	d := newDispatcher(t)

	in := dispatch.FromVec2([]hwy.Vec2[float32]{{0, 0.5}})
	out, err := d.Dispatch("testSinpiFloat2Float2", in)
	require.NoError(t, err)
	assert.Equal(t, hwy.VecShape(hwy.Float, 2), out.Shape())

	got, err := dispatch.ToVec2[float32](out)
	require.NoError(t, err)
	assert.Equal(t, []hwy.Vec2[float32]{{0, 1}}, got)
	assert.False(t, stdmath.Signbit(float64(got[0][0])), "sinpi(+0) must be +0")
}

func TestDispatchScalarMatchesLibrary(t *testing.T) {
	d := newDispatcher(t)

	xs := []float64{-2.5, -1, -0.25, 0, 0.125, 1.5, 3.75, 1e10 + 0.5}
	out, err := d.Dispatch("testSinpiDoubleDouble", dispatch.FromScalars(xs))
	require.NoError(t, err)

	got, err := dispatch.Scalars[float64](out)
	require.NoError(t, err)
	for i, x := range xs {
		assert.Equal(t, math.SinPi(x), got[i], "sinpi(%v)", x)
	}
}

func TestDispatchUnknownKernel(t *testing.T) {
	d := newDispatcher(t)

	_, err := d.Dispatch("doesNotExist", dispatch.FromScalars([]float32{1}))
	assert.ErrorIs(t, err, kernel.ErrUnknownKernel)
}

func TestDispatchShapeMismatch(t *testing.T) {
	d := newDispatcher(t)

	in := dispatch.FromVec4([]hwy.Vec4[float32]{{1, 2, 3, 4}})
	_, err := d.Dispatch("testSinpiFloat2Float2", in)
	require.ErrorIs(t, err, kernel.ErrShapeMismatch)

	var mismatch *kernel.ShapeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "testSinpiFloat2Float2", mismatch.Kernel)
	assert.Equal(t, hwy.VecShape(hwy.Float, 2), mismatch.Want)
	assert.Equal(t, hwy.VecShape(hwy.Float, 4), mismatch.Got)

	// Same width, wrong dtype.
	_, err = d.Dispatch("testSinpiFloatFloat", dispatch.FromScalars([]float64{1}))
	assert.ErrorIs(t, err, kernel.ErrShapeMismatch)
}

func TestRunIntoLengthMismatch(t *testing.T) {
	d := newDispatcher(t)
	k, err := d.Registry().Resolve("testSinpiFloatFloat")
	require.NoError(t, err)

	out, err := dispatch.NewBuffer(hwy.Scalar(hwy.Float), 2)
	require.NoError(t, err)
	err = d.RunInto(k, out, dispatch.FromScalars([]float32{1, 2, 3}))
	require.ErrorIs(t, err, kernel.ErrShapeMismatch)

	var mismatch *kernel.ShapeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 3, mismatch.WantLen)
	assert.Equal(t, 2, mismatch.GotLen)
}

func countingKernel(t *testing.T, calls *atomic.Int64) *kernel.Kernel {
	t.Helper()
	shape := hwy.Scalar(hwy.Float)
	k, err := kernel.New("testCountFloatFloat", "count", shape, shape,
		kernel.Func[float32](func(dst, src []float32) {
			calls.Add(1)
			dst[0] = src[0] + 1
		}))
	require.NoError(t, err)
	return k
}

func TestEmptyBufferInvokesNothing(t *testing.T) {
	var calls atomic.Int64
	d := dispatch.New(kernel.NewRegistry(), dispatch.WithGrain(1))
	t.Cleanup(d.Close)

	out, err := d.Run(countingKernel(t, &calls), dispatch.FromScalars([]float32{}))
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
	assert.Equal(t, hwy.Scalar(hwy.Float), out.Shape())
	assert.Zero(t, calls.Load())
}

func TestEveryElementOnce(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()
	d := dispatch.New(kernel.NewRegistry(), dispatch.WithPool(pool), dispatch.WithGrain(7))
	defer d.Close()

	// 5 fits one grain, 20 fits one round of workers, 1000 needs batching.
	for _, n := range []int{5, 20, 1000} {
		var calls atomic.Int64
		xs := make([]float32, n)
		for i := range xs {
			xs[i] = float32(i)
		}
		out, err := d.Run(countingKernel(t, &calls), dispatch.FromScalars(xs))
		require.NoError(t, err)
		assert.EqualValues(t, n, calls.Load(), "n=%d", n)

		got, err := dispatch.Scalars[float32](out)
		require.NoError(t, err)
		for i, v := range got {
			if v != float32(i+1) {
				t.Fatalf("n=%d: out[%d] = %v, want %v", n, i, v, float32(i+1))
			}
		}
	}
}

func TestChunkedDispatchMatchesWhole(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	vs := make([]hwy.Vec4[float32], 513)
	for i := range vs {
		for l := range vs[i] {
			vs[i][l] = float32(rng.Float64()*200 - 100)
		}
	}
	in := dispatch.FromVec4(vs)

	parallel := newDispatcher(t, dispatch.WithGrain(16))
	sequential := newDispatcher(t, dispatch.WithSequential())

	whole, err := parallel.Dispatch("testSinpiFloat4Float4", in)
	require.NoError(t, err)

	var parts []*dispatch.Buffer
	for _, cut := range [][2]int{{0, 1}, {1, 100}, {100, 100}, {100, 513}} {
		part, err := sequential.Dispatch("testSinpiFloat4Float4", in.Slice(cut[0], cut[1]))
		require.NoError(t, err)
		parts = append(parts, part)
	}
	joined, err := dispatch.Concat(parts...)
	require.NoError(t, err)

	wantVs, err := dispatch.ToVec4[float32](whole)
	require.NoError(t, err)
	gotVs, err := dispatch.ToVec4[float32](joined)
	require.NoError(t, err)
	if diff := cmp.Diff(wantVs, gotVs); diff != "" {
		t.Errorf("chunked dispatch differs (-whole +chunked):\n%s", diff)
	}
}

func TestVec3PaddingIsZero(t *testing.T) {
	d := newDispatcher(t)

	// Garbage in the padding lane must not leak into the output.
	flat := []float64{0.5, 1, 1.5, 99, -0.5, 2, 0.25, -7}
	in, err := dispatch.FromSlice(hwy.VecShape(hwy.Double, 3), flat)
	require.NoError(t, err)

	k, err := d.Registry().Resolve("testCospiDouble3Double3")
	require.NoError(t, err)

	out, err := dispatch.NewBuffer(k.Out(), in.Len())
	require.NoError(t, err)
	outFlat, err := dispatch.Flat[float64](out)
	require.NoError(t, err)
	outFlat[3], outFlat[7] = 42, 42

	require.NoError(t, d.RunInto(k, out, in))
	assert.Zero(t, outFlat[3])
	assert.Zero(t, outFlat[7])

	got, err := dispatch.ToVec3[float64](out)
	require.NoError(t, err)
	assert.Equal(t, []hwy.Vec3[float64]{
		{math.CosPi(0.5), math.CosPi(1.0), math.CosPi(1.5)},
		{math.CosPi(-0.5), math.CosPi(2.0), math.CosPi(0.25)},
	}, got)
}

func TestDispatchHalf(t *testing.T) {
	d := newDispatcher(t)

	in := dispatch.FromScalars([]hwy.Float16{
		hwy.NewFloat16(0.5), hwy.NewFloat16(-0.5), hwy.NewFloat16(1), hwy.Float16NaN,
	})
	out, err := d.Dispatch("testSinpiHalfHalf", in)
	require.NoError(t, err)

	got, err := dispatch.Scalars[hwy.Float16](out)
	require.NoError(t, err)
	assert.Equal(t, hwy.Float16One, got[0])
	assert.Equal(t, hwy.Float16NegOne, got[1])
	assert.True(t, got[2].IsZero())
	assert.True(t, got[3].IsNaN())
}

func TestConcurrentDispatch(t *testing.T) {
	d := newDispatcher(t, dispatch.WithGrain(8))

	xs := make([]float32, 300)
	for i := range xs {
		xs[i] = float32(i) / 8
	}
	want, err := dispatch.NewBuffer(hwy.Scalar(hwy.Float), len(xs))
	require.NoError(t, err)
	wantFlat, _ := dispatch.Flat[float32](want)
	for i, x := range xs {
		wantFlat[i] = math.SinPi(x)
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := d.Dispatch("testSinpiFloatFloat", dispatch.FromScalars(xs))
			if !assert.NoError(t, err) {
				return
			}
			got, _ := dispatch.Scalars[float32](out)
			assert.Equal(t, wantFlat, got)
		}()
	}
	wg.Wait()
}
