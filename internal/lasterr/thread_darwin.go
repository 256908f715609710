//go:build darwin

package lasterr

import (
	"sync"

	"github.com/ebitengine/purego"
)

const libSystem = "/usr/lib/libSystem.B.dylib"

var (
	loadOnce          sync.Once
	pthreadThreadidNP func(thread uintptr, id *uint64) int32
)

func loadThreadID() {
	lib, err := purego.Dlopen(libSystem, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return
	}
	purego.RegisterLibFunc(&pthreadThreadidNP, lib, "pthread_threadid_np")
}

// threadID returns the Mach thread id of the caller, or 0 (one shared slot)
// if libSystem could not be loaded.
func threadID() uint64 {
	loadOnce.Do(loadThreadID)
	if pthreadThreadidNP == nil {
		return 0
	}
	var id uint64
	// A zero pthread_t selects the calling thread.
	if pthreadThreadidNP(0, &id) != 0 {
		return 0
	}
	return id
}
