package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list", "--function", "sinpi")
	require.NoError(t, err)

	assert.Contains(t, out, "testSinpiFloatFloat")
	assert.Contains(t, out, "testSinpiFloat4Float4")
	assert.Contains(t, out, "testSinpiHalf3Half3")
	assert.NotContains(t, out, "testCospi")
	// Header plus 3 types x 4 widths.
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 13)
}

func TestRunSelectedKernels(t *testing.T) {
	out, err := execute(t, "run", "--elements", "128", "--grain", "16",
		"-k", "testSinpiFloat2Float2,testTanpiHalf3Half3")
	require.NoError(t, err)
	assert.Contains(t, out, "PASS testSinpiFloat2Float2")
	assert.Contains(t, out, "PASS testTanpiHalf3Half3")
	assert.Equal(t, 2, strings.Count(out, "PASS"))
}

func TestRunSequential(t *testing.T) {
	out, err := execute(t, "run", "--elements", "64", "--sequential", "-f", "cospi", "-v")
	require.NoError(t, err)
	assert.Equal(t, 12, strings.Count(out, "PASS"))
}

func TestRunUnknownKernel(t *testing.T) {
	_, err := execute(t, "run", "-k", "doesNotExist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doesNotExist")
}

func TestRunNothingSelected(t *testing.T) {
	_, err := execute(t, "run", "-f", "erf")
	assert.Error(t, err)
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("HWYCTS_ELEMENTS", "32")
	t.Setenv("HWYCTS_SEED", "9")

	cmd := newRootCmd()
	elements, err := cmd.PersistentFlags().GetInt("elements")
	require.NoError(t, err)
	assert.Equal(t, 32, elements)
	seed, err := cmd.PersistentFlags().GetUint64("seed")
	require.NoError(t, err)
	assert.EqualValues(t, 9, seed)
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "dispatch level:")
	assert.Contains(t, out, "kernels: 36 ([cospi sinpi tanpi])")
}
