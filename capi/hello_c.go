package main

import (
	"sync"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/hello"
)

// This is the main package required for building as c-shared
// It provides C-compatible wrappers for the Go hello implementation

func main() {} // Required for c-shared build mode

// Global variable to store greeter instances by ID
var (
	greeterInstances = make(map[int]*hello.Greeter)
	nextInstanceID   = 1
	greeterMutex     sync.RWMutex
)

// goStringFromC copies length bytes starting at ptr into a Go string.
func goStringFromC(ptr *byte, length int) string {
	if ptr == nil || length <= 0 {
		return ""
	}
	buf := make([]byte, length)
	for i := 0; i < length; i++ {
		buf[i] = *(*byte)(unsafe.Pointer(uintptr(unsafe.Pointer(ptr)) + uintptr(i)))
	}
	return string(buf)
}

// copyToC writes src into the C buffer at dst, truncating to fit and always
// NUL-terminating. Returns the number of bytes copied excluding the
// terminator; -1 when the buffer is unusable.
func copyToC(dst *byte, dstSize int, src string) int {
	if dst == nil || dstSize <= 0 {
		return -1
	}

	n := len(src)
	if n > dstSize-1 {
		n = dstSize - 1
	}
	for i := 0; i < n; i++ {
		*(*byte)(unsafe.Pointer(uintptr(unsafe.Pointer(dst)) + uintptr(i))) = src[i]
	}
	*(*byte)(unsafe.Pointer(uintptr(unsafe.Pointer(dst)) + uintptr(n))) = 0

	return n
}

// lookupGreeter resolves an opaque handle to its Go instance.
func lookupGreeter(h unsafe.Pointer) (*hello.Greeter, bool) {
	greeterMutex.RLock()
	defer greeterMutex.RUnlock()

	id := *(*int)(h)
	greeter, exists := greeterInstances[id]
	return greeter, exists
}

//export hello_greeter_create
func hello_greeter_create(name *byte, nameLen int, greeting *byte, greetingLen int, uppercase int) unsafe.Pointer {
	config := &hello.Config{Uppercase: uppercase != 0}
	if name != nil {
		s := goStringFromC(name, nameLen)
		config.Name = &s
	}
	if greeting != nil {
		s := goStringFromC(greeting, greetingLen)
		config.Greeting = &s
	}

	greeter, err := hello.New(config)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "hello_greeter_create",
			"error":    err.Error(),
		}).Error("Failed to create greeter instance")
		setError("%v", err)
		return nil
	}

	greeterMutex.Lock()
	defer greeterMutex.Unlock()

	// Store instance and return ID as pointer
	instanceID := nextInstanceID
	nextInstanceID++
	greeterInstances[instanceID] = greeter

	// Create an opaque pointer handle
	handle := new(int)
	*handle = instanceID
	return unsafe.Pointer(handle)
}

//export hello_greeter_destroy
func hello_greeter_destroy(h unsafe.Pointer) {
	if h == nil {
		return
	}

	greeterMutex.Lock()
	defer greeterMutex.Unlock()

	id := *(*int)(h)
	delete(greeterInstances, id)
}

//export hello_greeter_greet
func hello_greeter_greet(h unsafe.Pointer, buf *byte, bufSize int) int {
	if h == nil {
		setError("greeter is NULL")
		return -1
	}

	greeter, exists := lookupGreeter(h)
	if !exists {
		setError("invalid greeter handle")
		return -1
	}

	if buf == nil || bufSize <= 0 {
		setError("Invalid output buffer")
		return -1
	}

	rendered := greeter.Greeting()
	required := len(rendered)
	copyToC(buf, bufSize, rendered)

	if required >= bufSize {
		// Diagnostic only: the truncated, terminated result stands and the
		// full required size is still returned so the caller can retry.
		setError("Buffer too small (need %d, have %d)", required+1, bufSize)
	}

	return required
}

//export hello_greeter_get_name
func hello_greeter_get_name(h unsafe.Pointer, buf *byte, bufSize int) int {
	if h == nil {
		setError("greeter is NULL")
		return -1
	}

	greeter, exists := lookupGreeter(h)
	if !exists {
		setError("invalid greeter handle")
		return -1
	}

	if buf == nil || bufSize <= 0 {
		setError("Invalid output buffer")
		return -1
	}

	name := greeter.Name()
	copyToC(buf, bufSize, name)

	if len(name) >= bufSize {
		setError("Buffer too small (need %d, have %d)", len(name)+1, bufSize)
	}

	return len(name)
}

//export hello_greeter_set_name
func hello_greeter_set_name(h unsafe.Pointer, name *byte, nameLen int) int {
	if h == nil {
		setError("greeter is NULL")
		return 0
	}

	greeter, exists := lookupGreeter(h)
	if !exists {
		setError("invalid greeter handle")
		return 0
	}

	if name == nil {
		setError("Name cannot be NULL")
		return 0
	}

	if err := greeter.SetName(goStringFromC(name, nameLen)); err != nil {
		setError("%v", err)
		return 0
	}

	return 1
}

//export hello_get_version
func hello_get_version(buf *byte, bufSize int) int {
	return copyToC(buf, bufSize, hello.Version)
}
