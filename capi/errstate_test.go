package main

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/opd-ai/hello/limits"
)

// TestSetAndClearError tests the basic channel lifecycle
func TestSetAndClearError(t *testing.T) {
	hello_clear_error()

	if hello_has_error() != 0 {
		t.Fatal("fresh context reports an error")
	}
	if msg := readError(); msg != "" {
		t.Fatalf("fresh context reports message %q", msg)
	}

	setError("something failed: %d", 42)
	if hello_has_error() != 1 {
		t.Error("has_error is false after setError")
	}
	if msg := readError(); msg != "something failed: 42" {
		t.Errorf("last error is %q, want %q", msg, "something failed: 42")
	}

	hello_clear_error()
	if hello_has_error() != 0 {
		t.Error("has_error is true after clear")
	}
	if msg := readError(); msg != "" {
		t.Errorf("last error is %q after clear, want empty", msg)
	}
}

// TestSetErrorOverwrites verifies the second error wins within one context
func TestSetErrorOverwrites(t *testing.T) {
	hello_clear_error()
	defer hello_clear_error()

	setError("first")
	setError("second")
	if msg := readError(); msg != "second" {
		t.Errorf("last error is %q, want %q", msg, "second")
	}
}

// TestSetErrorTruncation verifies messages are bounded by the channel capacity
func TestSetErrorTruncation(t *testing.T) {
	hello_clear_error()
	defer hello_clear_error()

	setError("%s", strings.Repeat("e", limits.ErrorBufferSize*2))
	msg := readError()
	if len(msg) != limits.ErrorBufferSize-1 {
		t.Errorf("stored message is %d bytes, want %d", len(msg), limits.ErrorBufferSize-1)
	}
}

// TestGetLastErrorNeverFails verifies reading the channel is always safe
func TestGetLastErrorNeverFails(t *testing.T) {
	hello_clear_error()

	buf := make([]byte, 8)
	setError("a long diagnostic message")
	defer hello_clear_error()

	// Truncating read: silently bounded, still terminated.
	n := hello_get_last_error(&buf[0], len(buf))
	if n != 7 {
		t.Errorf("truncating read returned %d, want 7", n)
	}
	if buf[7] != 0 {
		t.Error("truncated read is not NUL-terminated")
	}
}

// TestErrorIsolationAcrossGoroutines verifies error state set in one
// execution context is never visible from another
func TestErrorIsolationAcrossGoroutines(t *testing.T) {
	hello_clear_error()
	defer hello_clear_error()

	setError("error in main goroutine")

	start := make(chan struct{})
	var wg sync.WaitGroup
	results := make([]string, 8)
	flags := make([]int, 8)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			<-start

			// A fresh goroutine must observe a clean channel.
			flags[idx] = hello_has_error()
			results[idx] = readError()

			// An error raised here must stay here.
			setError("error in goroutine %d", idx)
			want := fmt.Sprintf("error in goroutine %d", idx)
			if msg := readError(); msg != want {
				results[idx] = "lost own error: " + msg
			}
			hello_clear_error()
		}(i)
	}

	close(start)
	wg.Wait()

	for i := 0; i < 8; i++ {
		if flags[i] != 0 {
			t.Errorf("goroutine %d observed the main goroutine's error flag", i)
		}
		if results[i] != "" {
			t.Errorf("goroutine %d observed %q", i, results[i])
		}
	}

	// The main goroutine's error survived the concurrent traffic.
	if msg := readError(); msg != "error in main goroutine" {
		t.Errorf("main goroutine's error is %q, want %q", msg, "error in main goroutine")
	}
}

// TestGoroutineIDStable verifies the ID parse is stable within one goroutine
func TestGoroutineIDStable(t *testing.T) {
	first := goroutineID()
	second := goroutineID()
	if first == 0 {
		t.Fatal("goroutineID returned 0")
	}
	if first != second {
		t.Errorf("goroutineID not stable: %d then %d", first, second)
	}
}
