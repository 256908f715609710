package lasterr

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAndResetClears(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	GetAndReset()

	Set("boom")
	msg, ok := GetAndReset()
	require.True(t, ok)
	assert.Equal(t, "boom", msg)

	_, ok = GetAndReset()
	assert.False(t, ok, "second read must come back empty")
}

func TestSetReplacesAndClears(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	Set("first")
	Set("second")
	msg, ok := GetAndReset()
	require.True(t, ok)
	assert.Equal(t, "second", msg)

	Set("third")
	Set("")
	_, ok = GetAndReset()
	assert.False(t, ok)

	Set("stale")
	Clear()
	_, ok = GetAndReset()
	assert.False(t, ok)
}

func TestSetError(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	GetAndReset()
	SetError(nil)
	_, ok := GetAndReset()
	assert.False(t, ok)

	SetError(errors.New("driver failed"))
	msg, ok := GetAndReset()
	require.True(t, ok)
	assert.Equal(t, "driver failed", msg)
}

func TestThreadsAreIsolated(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		t.Skip("per-thread slots need a kernel thread id")
	}

	const workers = 8
	var (
		wg    sync.WaitGroup
		ready sync.WaitGroup
		start = make(chan struct{})
		got   = make([]string, workers)
		ok    = make([]bool, workers)
	)
	ready.Add(workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()

			Set(string(rune('a' + i)))
			ready.Done()
			<-start
			got[i], ok[i] = GetAndReset()
		}(i)
	}
	ready.Wait()
	close(start)
	wg.Wait()

	for i := 0; i < workers; i++ {
		assert.True(t, ok[i])
		assert.Equal(t, string(rune('a'+i)), got[i])
	}
}
