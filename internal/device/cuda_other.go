//go:build !linux && !windows

package device

import "github.com/pkg/errors"

type unsupportedProbe struct {
	kind Kind
}

func (p unsupportedProbe) Kind() Kind { return p.kind }

func (p unsupportedProbe) Devices() ([]Info, error) {
	return nil, errors.Wrapf(ErrUnsupported, "%s", p.kind)
}

type unsupportedLibrary struct{}

func (unsupportedLibrary) Name() string { return "cudnn" }

func (unsupportedLibrary) Version() (int, error) {
	return 0, errors.Wrap(ErrUnsupported, "cudnn")
}

func newCUDAProbe([]string) Probe {
	return unsupportedProbe{kind: CUDA}
}

func newCuDNNProbe([]string) LibraryProbe {
	return unsupportedLibrary{}
}
