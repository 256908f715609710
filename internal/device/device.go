package device

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/born-ml/bornffi/internal/logging"
)

// Probe detects the devices of one Kind.
//
// Devices may be slow on first call (driver initialization); Manager
// caches the result, so implementations need not.
type Probe interface {
	Kind() Kind
	Devices() ([]Info, error)
}

// LibraryProbe reports the version of an optional kernel library, or an
// error when the library cannot be loaded.
type LibraryProbe interface {
	Name() string
	Version() (int, error)
}

// Options configures which probes run and where they look.
type Options struct {
	DisableCUDA   bool
	DisableWebGPU bool

	// CUDALibraries and CuDNNLibraries override the shared library names
	// tried in order. Empty means the platform defaults.
	CUDALibraries  []string
	CuDNNLibraries []string
}

type probeResult struct {
	devices []Info
	err     error
}

// Manager runs probes once and answers availability queries from the
// cached results.
type Manager struct {
	probes map[Kind]Probe
	cudnn  LibraryProbe

	mu           sync.Mutex
	results      map[Kind]probeResult
	cudnnVersion *int
	cudnnErr     error
}

// NewManager returns a Manager over the given probes. cudnn may be nil.
func NewManager(cudnn LibraryProbe, probes ...Probe) *Manager {
	m := &Manager{
		probes:  make(map[Kind]Probe, len(probes)),
		cudnn:   cudnn,
		results: make(map[Kind]probeResult),
	}
	for _, p := range probes {
		m.probes[p.Kind()] = p
	}
	return m
}

// NewDefaultManager returns a Manager wired to the platform probes.
func NewDefaultManager(opts Options) *Manager {
	var probes []Probe
	if opts.DisableCUDA {
		probes = append(probes, disabledProbe{kind: CUDA})
	} else {
		probes = append(probes, newCUDAProbe(opts.CUDALibraries))
	}
	if opts.DisableWebGPU {
		probes = append(probes, disabledProbe{kind: WebGPU})
	} else {
		probes = append(probes, newWebGPUProbe())
	}

	var cudnn LibraryProbe = disabledLibrary{}
	if !opts.DisableCUDA {
		cudnn = newCuDNNProbe(opts.CuDNNLibraries)
	}
	return NewManager(cudnn, probes...)
}

// Devices returns the devices of kind k. CPU always reports one device.
func (m *Manager) Devices(k Kind) ([]Info, error) {
	if k == CPU {
		return []Info{{Kind: CPU, Index: 0, Name: "CPU"}}, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if r, ok := m.results[k]; ok {
		return r.devices, r.err
	}

	p, ok := m.probes[k]
	if !ok {
		r := probeResult{err: errors.Wrapf(ErrUnsupported, "%s", k)}
		m.results[k] = r
		return nil, r.err
	}

	devices, err := runProbe(p)
	if err != nil {
		logging.Debugf("device: %s probe failed: %v", k, err)
	}
	m.results[k] = probeResult{devices: devices, err: err}
	return devices, err
}

// Count returns the number of devices of kind k, 0 when none are found or
// the probe fails.
func (m *Manager) Count(k Kind) int {
	devices, err := m.Devices(k)
	if err != nil {
		return 0
	}
	return len(devices)
}

// IsAvailable reports whether at least one device of kind k is usable.
func (m *Manager) IsAvailable(k Kind) bool {
	return m.Count(k) > 0
}

// CuDNNVersion returns the loaded cuDNN version.
func (m *Manager) CuDNNVersion() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cudnnVersion != nil || m.cudnnErr != nil {
		if m.cudnnErr != nil {
			return 0, m.cudnnErr
		}
		return *m.cudnnVersion, nil
	}
	if m.cudnn == nil {
		m.cudnnErr = errors.Wrap(ErrUnsupported, "cudnn")
		return 0, m.cudnnErr
	}

	v, err := runLibraryProbe(m.cudnn)
	if err != nil {
		logging.Debugf("device: %s probe failed: %v", m.cudnn.Name(), err)
		m.cudnnErr = err
		return 0, err
	}
	m.cudnnVersion = &v
	return v, nil
}

// CuDNNIsAvailable reports whether cuDNN loaded and a CUDA device exists.
func (m *Manager) CuDNNIsAvailable() bool {
	if !m.IsAvailable(CUDA) {
		return false
	}
	v, err := m.CuDNNVersion()
	return err == nil && v > 0
}

// All returns every detected device across all probes, CPU first.
func (m *Manager) All() []Info {
	all, _ := m.Devices(CPU)
	for _, k := range []Kind{CUDA, Vulkan, Metal, WebGPU} {
		devices, err := m.Devices(k)
		if err != nil {
			continue
		}
		all = append(all, devices...)
	}
	return all
}

// runProbe calls p.Devices, turning a panic from a missing native symbol
// into an error.
func runProbe(p Probe) (devices []Info, err error) {
	defer func() {
		if r := recover(); r != nil {
			devices = nil
			err = errors.Errorf("%s: native library not available: %v", p.Kind(), r)
		}
	}()
	return p.Devices()
}

func runLibraryProbe(p LibraryProbe) (v int, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = 0
			err = errors.Errorf("%s: native library not available: %v", p.Name(), r)
		}
	}()
	return p.Version()
}

type disabledProbe struct {
	kind Kind
}

func (p disabledProbe) Kind() Kind { return p.kind }

func (p disabledProbe) Devices() ([]Info, error) {
	return nil, errors.Wrapf(ErrDisabled, "%s", p.kind)
}

type disabledLibrary struct{}

func (disabledLibrary) Name() string { return "cudnn" }

func (disabledLibrary) Version() (int, error) {
	return 0, errors.Wrap(ErrDisabled, "cudnn")
}

var (
	defaultMu      sync.Mutex
	defaultManager *Manager
)

// Default returns the process-wide Manager, creating it with zero Options
// on first use.
func Default() *Manager {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultManager == nil {
		defaultManager = NewDefaultManager(Options{})
	}
	return defaultManager
}

// Configure replaces the process-wide Manager. Cached probe results are
// discarded.
func Configure(opts Options) {
	SetDefault(NewDefaultManager(opts))
}

// SetDefault installs m as the process-wide Manager.
func SetDefault(m *Manager) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultManager = m
}

// CUDAIsAvailable reports whether at least one CUDA device is usable.
func CUDAIsAvailable() bool {
	return Default().IsAvailable(CUDA)
}

// CuDNNIsAvailable reports whether cuDNN is present and usable.
func CuDNNIsAvailable() bool {
	return Default().CuDNNIsAvailable()
}

// CUDADeviceCount returns the number of CUDA devices.
func CUDADeviceCount() int {
	return Default().Count(CUDA)
}
