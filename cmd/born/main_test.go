package main

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	t.Setenv("BORN_DEVICE_DISABLE_CUDA", "true")
	t.Setenv("BORN_DEVICE_DISABLE_WEBGPU", "true")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

func TestDevices(t *testing.T) {
	out, err := run(t, "devices")
	require.NoError(t, err)
	assert.Contains(t, out, "cuda available:  false")
	assert.Contains(t, out, "cuda devices:    0")
	assert.Contains(t, out, "[CPU:0] CPU")
}

func TestSeedIsReproducible(t *testing.T) {
	first, err := run(t, "seed", "42", "-n", "4", "--dist", "normal")
	require.NoError(t, err)
	second, err := run(t, "seed", "42", "-n", "4", "--dist", "normal")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, strings.Fields(first), 4)

	_, err = run(t, "seed", "abc")
	assert.Error(t, err)
}

func TestScalarConversion(t *testing.T) {
	out, err := run(t, "scalar", "float64", "2.9", "--to", "int8")
	require.NoError(t, err)
	assert.Equal(t, "float64 2.9 -> int8 2\n", out)

	out, err = run(t, "scalar", "half", "1.5")
	require.NoError(t, err)
	assert.Contains(t, out, "0x3e00")

	_, err = run(t, "scalar", "int64", "1000", "--to", "int8")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overflow")
}
