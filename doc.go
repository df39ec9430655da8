// Package hello implements the core functionality of the hello greeter library.
//
// The library is a teaching artifact: it demonstrates how a C-style
// opaque-handle API (greeter lifecycle, bounded buffer formatting, last-error
// reporting) is expressed in Go. This package provides the idiomatic Go core;
// the capi package wraps it in a C-compatible surface for use as a shared
// library.
//
// # Getting Started
//
// Create a greeter with a configuration and render its greeting:
//
//	name := "Gopher"
//	greeter, err := hello.New(&hello.Config{Name: &name})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(greeter.Greeting()) // "Hello, Gopher!"
//
// A nil Config selects the defaults (name "World", greeting "Hello"):
//
//	greeter, err := hello.New(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(greeter.Greeting()) // "Hello, World!"
//
// # Bounded Formatting
//
// FormatGreeting renders into a caller-supplied buffer and always returns the
// length the unrestricted rendering requires, so a caller with a short buffer
// can retry:
//
//	buf := make([]byte, 8)
//	n, err := greeter.FormatGreeting(buf)
//	if errors.Is(err, hello.ErrBufferTooSmall) {
//	    buf = make([]byte, n)
//	    n, err = greeter.FormatGreeting(buf)
//	}
//
// # Error Reporting
//
// All fallible operations return explicit errors. The per-context last-error
// channel of the original C API exists only in the capi package, where the C
// ABI requires it; Go callers should use the returned errors directly.
//
// # Concurrency
//
// A Greeter has no internal synchronization and is not safe for concurrent
// mutation. Callers that share a Greeter across goroutines and call SetName
// must supply their own exclusion.
package hello
