//go:build windows

package device

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var defaultCUDALibraries = []string{"nvcuda.dll"}

var defaultCuDNNLibraries = []string{"cudnn64_9.dll", "cudnn64_8.dll"}

type cudaProbe struct {
	libraries []string

	once    sync.Once
	loadErr error

	cuDeviceGetCount *windows.LazyProc
	cuDeviceGetName  *windows.LazyProc
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
		dll, err := loadFirstDLL(p.libraries)
		if err != nil {
			p.loadErr = errors.Wrap(err, "cannot load CUDA driver (is the NVIDIA driver installed?)")
			return
		}
		if r, _, _ := dll.NewProc("cuInit").Call(0); r != 0 {
			p.loadErr = errors.Errorf("cuInit: CUDA_ERROR(%d)", r)
			return
		}
		p.cuDeviceGetCount = dll.NewProc("cuDeviceGetCount")
		p.cuDeviceGetName = dll.NewProc("cuDeviceGetName")
	})
	return p.loadErr
}

func (p *cudaProbe) Devices() ([]Info, error) {
	if err := p.load(); err != nil {
		return nil, err
	}

	var count int32
	if r, _, _ := p.cuDeviceGetCount.Call(uintptr(unsafe.Pointer(&count))); r != 0 {
		return nil, errors.Errorf("cuDeviceGetCount: CUDA_ERROR(%d)", r)
	}

	devices := make([]Info, 0, count)
	for i := int32(0); i < count; i++ {
		info := Info{Kind: CUDA, Index: int(i), Name: fmt.Sprintf("CUDA device %d", i)}
		buf := make([]byte, 256)
		if r, _, _ := p.cuDeviceGetName.Call(uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)), uintptr(i)); r == 0 {
			info.Name = cString(buf)
		}
		devices = append(devices, info)
	}
	return devices, nil
}

type cudnnProbe struct {
	libraries []string
}

func newCuDNNProbe(libraries []string) LibraryProbe {
	if len(libraries) == 0 {
		libraries = defaultCuDNNLibraries
	}
	return &cudnnProbe{libraries: libraries}
}

func (p *cudnnProbe) Name() string { return "cudnn" }

func (p *cudnnProbe) Version() (int, error) {
	dll, err := loadFirstDLL(p.libraries)
	if err != nil {
		return 0, errors.Wrap(err, "cannot load cuDNN")
	}
	v, _, _ := dll.NewProc("cudnnGetVersion").Call()
	return int(v), nil
}

func loadFirstDLL(names []string) (*windows.LazyDLL, error) {
	var lastErr error
	for _, name := range names {
		dll := windows.NewLazySystemDLL(name)
		if err := dll.Load(); err != nil {
			lastErr = err
			continue
		}
		return dll, nil
	}
	return nil, errors.Wrapf(lastErr, "load %v", names)
}
