//go:build linux

package device

// CUDA driver probe. No cgo: libcuda is loaded at runtime with purego and
// only the entry points needed for enumeration are bound.

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/pkg/errors"
)

var defaultCUDALibraries = []string{"libcuda.so.1", "libcuda.so"}

var defaultCuDNNLibraries = []string{"libcudnn.so.9", "libcudnn.so.8", "libcudnn.so"}

// cuResult is a CUDA driver API status code.
type cuResult int32

const (
	cudaSuccess          cuResult = 0
	cudaErrorNoDevice    cuResult = 100
	cudaErrorNotInit     cuResult = 3
	cudaErrorInvalidArgs cuResult = 1
)

func (r cuResult) Error() string {
	switch r {
	case cudaSuccess:
		return "CUDA_SUCCESS"
	case cudaErrorInvalidArgs:
		return "CUDA_ERROR_INVALID_VALUE (1)"
	case cudaErrorNotInit:
		return "CUDA_ERROR_NOT_INITIALIZED (3)"
	case cudaErrorNoDevice:
		return "CUDA_ERROR_NO_DEVICE (100)"
	default:
		return fmt.Sprintf("CUDA_ERROR(%d)", int32(r))
	}
}

type cudaProbe struct {
	libraries []string

	once    sync.Once
	loadErr error

	cuInit           func(flags uint32) cuResult
	cuDeviceGetCount func(count *int32) cuResult
	cuDeviceGet      func(device *int32, ordinal int32) cuResult
	cuDeviceGetName  func(name *byte, length int32, dev int32) cuResult
}

func newCUDAProbe(libraries []string) Probe {
	if len(libraries) == 0 {
		libraries = defaultCUDALibraries
	}
	return &cudaProbe{libraries: libraries}
}

func (p *cudaProbe) Kind() Kind { return CUDA }

func (p *cudaProbe) load() error {
	p.once.Do(func() {
		lib, err := dlopenFirst(p.libraries)
		if err != nil {
			p.loadErr = errors.Wrap(err, "cannot load CUDA driver (is the NVIDIA driver installed?)")
			return
		}
		purego.RegisterLibFunc(&p.cuInit, lib, "cuInit")
		purego.RegisterLibFunc(&p.cuDeviceGetCount, lib, "cuDeviceGetCount")
		purego.RegisterLibFunc(&p.cuDeviceGet, lib, "cuDeviceGet")
		purego.RegisterLibFunc(&p.cuDeviceGetName, lib, "cuDeviceGetName")

		if r := p.cuInit(0); r != cudaSuccess {
			p.loadErr = errors.Wrap(r, "cuInit")
		}
	})
	return p.loadErr
}

func (p *cudaProbe) Devices() ([]Info, error) {
	if err := p.load(); err != nil {
		return nil, err
	}

	var count int32
	if r := p.cuDeviceGetCount(&count); r != cudaSuccess {
		if r == cudaErrorNoDevice {
			return nil, nil
		}
		return nil, errors.Wrap(r, "cuDeviceGetCount")
	}

	devices := make([]Info, 0, count)
	for i := int32(0); i < count; i++ {
		info := Info{Kind: CUDA, Index: int(i), Name: fmt.Sprintf("CUDA device %d", i)}
		var dev int32
		if p.cuDeviceGet(&dev, i) == cudaSuccess {
			buf := make([]byte, 256)
			if p.cuDeviceGetName(&buf[0], int32(len(buf)), dev) == cudaSuccess {
				info.Name = cString(buf)
			}
		}
		devices = append(devices, info)
	}
	return devices, nil
}

type cudnnProbe struct {
	libraries []string

	once    sync.Once
	loadErr error

	cudnnGetVersion func() uintptr
}

func newCuDNNProbe(libraries []string) LibraryProbe {
	if len(libraries) == 0 {
		libraries = defaultCuDNNLibraries
	}
	return &cudnnProbe{libraries: libraries}
}

func (p *cudnnProbe) Name() string { return "cudnn" }

func (p *cudnnProbe) Version() (int, error) {
	p.once.Do(func() {
		lib, err := dlopenFirst(p.libraries)
		if err != nil {
			p.loadErr = errors.Wrap(err, "cannot load cuDNN")
			return
		}
		purego.RegisterLibFunc(&p.cudnnGetVersion, lib, "cudnnGetVersion")
	})
	if p.loadErr != nil {
		return 0, p.loadErr
	}
	return int(p.cudnnGetVersion()), nil
}

// dlopenFirst opens the first library in names that loads.
func dlopenFirst(names []string) (uintptr, error) {
	var lastErr error
	for _, name := range names {
		lib, err := purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err == nil {
			return lib, nil
		}
		lastErr = err
	}
	return 0, errors.Wrapf(lastErr, "dlopen %v", names)
}
