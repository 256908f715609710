package shim

import (
	"sync"

	"github.com/born-ml/bornffi/internal/scalar"
)

// registry maps uintptr handles to boxed scalars so that C code holds
// integers rather than Go pointers. Handle 0 is never issued.
type registry struct {
	mu      sync.Mutex
	objects map[uintptr]scalar.Scalar
	next    uintptr
}

func newRegistry() *registry {
	return &registry{
		objects: make(map[uintptr]scalar.Scalar),
		next:    1,
	}
}

// register stores s and returns its new handle.
func (r *registry) register(s scalar.Scalar) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.next
	r.next++
	r.objects[h] = s
	return h
}

// get returns the scalar behind h.
func (r *registry) get(h uintptr) (scalar.Scalar, bool) {
	if h == 0 {
		return scalar.Scalar{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.objects[h]
	return s, ok
}

// release drops h and reports whether it was live.
func (r *registry) release(h uintptr) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.objects[h]; !ok {
		return false
	}
	delete(r.objects, h)
	return true
}

func (r *registry) live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.objects)
}
