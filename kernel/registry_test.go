package kernel_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-elementwise/hwy"
	"github.com/ajroetker/go-elementwise/kernel"
)

var (
	float  = hwy.Scalar(hwy.Float)
	float2 = hwy.VecShape(hwy.Float, 2)
	float4 = hwy.VecShape(hwy.Float, 4)
)

func negate(x float32) float32 { return -x }

func TestRegisterResolve(t *testing.T) {
	reg := kernel.NewRegistry()
	k := kernel.MustUnary("neg", float4, negate)
	require.NoError(t, reg.Register(k))

	got, err := reg.Resolve("testNegFloat4Float4")
	require.NoError(t, err)
	assert.Same(t, k, got)
	assert.Equal(t, float4, got.In())
	assert.Equal(t, float4, got.Out())
	assert.Equal(t, "neg", got.Function())
	assert.Equal(t, 1, reg.Len())
}

func TestRegisterDuplicate(t *testing.T) {
	reg := kernel.NewRegistry()
	first := kernel.MustUnary("neg", float, negate)
	require.NoError(t, reg.Register(first))

	err := reg.Register(kernel.MustUnary("neg", float, func(x float32) float32 { return x }))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrDuplicateKernel)

	var dup *kernel.DuplicateKernelError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "testNegFloatFloat", dup.Name)

	// The first binding survives.
	got, err := reg.Resolve("testNegFloatFloat")
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	reg := kernel.NewRegistry()
	k := kernel.MustUnary("neg", float, negate)
	assert.Panics(t, func() { reg.MustRegister(k, k) })
}

func TestRegisterNil(t *testing.T) {
	err := kernel.NewRegistry().Register(nil)
	assert.ErrorIs(t, err, kernel.ErrInvalidKernel)
}

func TestZeroValueRegistry(t *testing.T) {
	var reg kernel.Registry
	_, err := reg.Resolve("testNegFloatFloat")
	assert.ErrorIs(t, err, kernel.ErrUnknownKernel)
	assert.Zero(t, reg.Len())
	assert.Empty(t, reg.Names())

	k := kernel.MustUnary("neg", float, negate)
	require.NoError(t, reg.Register(k))
	got, err := reg.Resolve(k.Name())
	require.NoError(t, err)
	assert.Same(t, k, got)
}

func TestResolveUnknown(t *testing.T) {
	reg := kernel.NewRegistry()
	_, err := reg.Resolve("doesNotExist")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUnknownKernel)
	assert.False(t, errors.Is(err, kernel.ErrDuplicateKernel))

	var unknown *kernel.UnknownKernelError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "doesNotExist", unknown.Name)
	assert.Contains(t, err.Error(), "doesNotExist")
}

func TestNamesSortedAndFilter(t *testing.T) {
	reg := kernel.NewRegistry()
	reg.MustRegister(
		kernel.MustUnary("neg", float4, negate),
		kernel.MustUnary("neg", float, negate),
		kernel.MustUnary("abs", float2, func(x float32) float32 { return max(x, -x) }),
	)

	assert.Equal(t, []string{
		"testAbsFloat2Float2",
		"testNegFloat4Float4",
		"testNegFloatFloat",
	}, reg.Names())

	negs := reg.Filter(func(k *kernel.Kernel) bool { return k.Function() == "neg" })
	require.Len(t, negs, 2)
	assert.Equal(t, "testNegFloat4Float4", negs[0].Name())
	assert.Equal(t, "testNegFloatFloat", negs[1].Name())

	assert.Len(t, reg.Kernels(), 3)
	assert.Equal(t, []string{"abs", "neg"}, reg.Functions())
}

func TestConcurrentResolve(t *testing.T) {
	reg := kernel.NewRegistry()
	for w := 1; w <= hwy.MaxWidth; w++ {
		reg.MustRegister(kernel.MustUnary("neg", hwy.VecShape(hwy.Float, w), negate))
	}

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := i%hwy.MaxWidth + 1
			s := hwy.VecShape(hwy.Float, w)
			k, err := reg.Resolve(kernel.Name("neg", s, s))
			if assert.NoError(t, err) {
				assert.Equal(t, s, k.In(), fmt.Sprintf("goroutine %d", i))
			}
		}()
	}
	wg.Wait()
}
