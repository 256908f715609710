package device

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProbe struct {
	kind    Kind
	devices []Info
	err     error
	panics  bool
	calls   int
}

func (p *fakeProbe) Kind() Kind { return p.kind }

func (p *fakeProbe) Devices() ([]Info, error) {
	p.calls++
	if p.panics {
		panic("symbol not found")
	}
	return p.devices, p.err
}

type fakeLibrary struct {
	version int
	err     error
}

func (fakeLibrary) Name() string { return "cudnn" }

func (l fakeLibrary) Version() (int, error) { return l.version, l.err }

func gpus(n int) []Info {
	out := make([]Info, n)
	for i := range out {
		out[i] = Info{Kind: CUDA, Index: i, Name: "fake"}
	}
	return out
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "CPU", CPU.String())
	assert.Equal(t, "CUDA", CUDA.String())
	assert.Equal(t, "WebGPU", WebGPU.String())
	assert.Equal(t, "Unknown", Kind(42).String())
}

func TestManagerCountsAndCaches(t *testing.T) {
	p := &fakeProbe{kind: CUDA, devices: gpus(2)}
	m := NewManager(fakeLibrary{version: 90100}, p)

	assert.Equal(t, 2, m.Count(CUDA))
	assert.True(t, m.IsAvailable(CUDA))
	assert.True(t, m.CuDNNIsAvailable())
	assert.Equal(t, 1, p.calls, "probe result must be cached")
}

func TestManagerNoDevices(t *testing.T) {
	m := NewManager(fakeLibrary{version: 90100}, &fakeProbe{kind: CUDA})

	assert.Equal(t, 0, m.Count(CUDA))
	assert.False(t, m.IsAvailable(CUDA))
	assert.False(t, m.CuDNNIsAvailable(), "cudnn needs a CUDA device")
}

func TestManagerProbeFailure(t *testing.T) {
	m := NewManager(nil, &fakeProbe{kind: CUDA, err: errors.New("no driver")})

	_, err := m.Devices(CUDA)
	assert.Error(t, err)
	assert.Equal(t, 0, m.Count(CUDA))
	assert.False(t, m.IsAvailable(CUDA))
}

func TestManagerRecoversProbePanic(t *testing.T) {
	m := NewManager(nil, &fakeProbe{kind: CUDA, panics: true})

	_, err := m.Devices(CUDA)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "native library not available")
	assert.Equal(t, 0, m.Count(CUDA))
}

func TestManagerMissingProbe(t *testing.T) {
	m := NewManager(nil)

	_, err := m.Devices(Metal)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = m.CuDNNVersion()
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestManagerCuDNNFailure(t *testing.T) {
	m := NewManager(fakeLibrary{err: errors.New("libcudnn missing")}, &fakeProbe{kind: CUDA, devices: gpus(1)})

	assert.True(t, m.IsAvailable(CUDA))
	assert.False(t, m.CuDNNIsAvailable())
}

func TestManagerCPUAlwaysPresent(t *testing.T) {
	m := NewManager(nil)
	assert.Equal(t, 1, m.Count(CPU))

	all := m.All()
	require.NotEmpty(t, all)
	assert.Equal(t, CPU, all[0].Kind)
}

func TestAllListsEveryProbe(t *testing.T) {
	m := NewManager(nil,
		&fakeProbe{kind: CUDA, devices: gpus(2)},
		&fakeProbe{kind: WebGPU, devices: []Info{{Kind: WebGPU, Name: "adapter"}}},
	)
	all := m.All()
	require.Len(t, all, 4)
	assert.Equal(t, WebGPU, all[3].Kind)
}

func TestDisabledProbes(t *testing.T) {
	m := NewDefaultManager(Options{DisableCUDA: true, DisableWebGPU: true})

	_, err := m.Devices(CUDA)
	assert.ErrorIs(t, err, ErrDisabled)
	_, err = m.Devices(WebGPU)
	assert.ErrorIs(t, err, ErrDisabled)
	assert.False(t, m.CuDNNIsAvailable())
}

func TestDefaultQueriesAreConsistent(t *testing.T) {
	SetDefault(NewManager(fakeLibrary{version: 8900}, &fakeProbe{kind: CUDA, devices: gpus(3)}))
	defer SetDefault(nil)

	assert.Equal(t, 3, CUDADeviceCount())
	assert.True(t, CUDAIsAvailable())
	assert.True(t, CuDNNIsAvailable())
}

func TestRealProbesNeverReportNegative(t *testing.T) {
	m := NewDefaultManager(Options{})
	n := m.Count(CUDA)
	assert.GreaterOrEqual(t, n, 0)
	if n == 0 {
		assert.False(t, m.IsAvailable(CUDA))
	}
	t.Logf("CUDA devices: %d", n)
}

func TestCString(t *testing.T) {
	assert.Equal(t, "RTX", cString([]byte{'R', 'T', 'X', 0, 'x'}))
	assert.Equal(t, "abc", cString([]byte("abc")))
}
