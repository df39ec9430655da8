package main

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
	"sync"

	"github.com/opd-ai/hello/limits"
)

// Per-context last-error channel. The original C library keeps this state in
// _Thread_local storage; here it is keyed by goroutine ID so that concurrent
// callers never observe each other's errors. State must be read on the same
// goroutine immediately after the failing call, before another call
// overwrites it.

type errState struct {
	message  string
	hasError bool
}

var (
	errStates = make(map[uint64]*errState)
	errMutex  sync.RWMutex
)

// goroutineID extracts the current goroutine's ID from its stack header
// ("goroutine N [running]: ...").
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := buf[:n]

	header = bytes.TrimPrefix(header, []byte("goroutine "))
	if idx := bytes.IndexByte(header, ' '); idx > 0 {
		header = header[:idx]
	}

	id, err := strconv.ParseUint(string(header), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// setError records a formatted message in the calling context's channel,
// truncated to limits.ErrorBufferSize. Never fails; truncation is silent.
func setError(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if len(message) >= limits.ErrorBufferSize {
		message = message[:limits.ErrorBufferSize-1]
	}

	errMutex.Lock()
	defer errMutex.Unlock()
	errStates[goroutineID()] = &errState{message: message, hasError: true}
}

// lastError returns the calling context's message, or "" when no error is
// recorded.
func lastError() string {
	errMutex.RLock()
	defer errMutex.RUnlock()

	if state, ok := errStates[goroutineID()]; ok && state.hasError {
		return state.message
	}
	return ""
}

//export hello_get_last_error
func hello_get_last_error(buf *byte, bufSize int) int {
	return copyToC(buf, bufSize, lastError())
}

//export hello_has_error
func hello_has_error() int {
	errMutex.RLock()
	defer errMutex.RUnlock()

	if state, ok := errStates[goroutineID()]; ok && state.hasError {
		return 1
	}
	return 0
}

//export hello_clear_error
func hello_clear_error() {
	errMutex.Lock()
	defer errMutex.Unlock()
	delete(errStates, goroutineID())
}
