// Package main provides C API bindings for the hello library, enabling
// cross-language interoperability with C applications and other language
// bindings.
//
// # Overview
//
// The capi package implements a C-compatible API that matches the original
// libhello interface: opaque greeter handles, bounded output buffers, and a
// per-thread last-error channel read immediately after a failing call.
//
// # Build Instructions
//
// To build as a C shared library:
//
//	go build -buildmode=c-shared -o libhello.so ./capi/
//
// This generates:
//   - libhello.so: The shared library
//   - libhello.h: Auto-generated C header file with function declarations
//
// # C API Usage
//
// The C API follows the same patterns as the original libhello:
//
//	#include "libhello.h"
//
//	// Create a greeter with defaults (NULL name and greeting)
//	void *greeter = hello_greeter_create(NULL, 0, NULL, 0, 0);
//	if (greeter == NULL) {
//	    char err[1024];
//	    hello_get_last_error(err, sizeof(err));
//	    fprintf(stderr, "Error: %s\n", err);
//	    return 1;
//	}
//
//	char buffer[128];
//	int len = hello_greeter_greet(greeter, buffer, sizeof(buffer));
//	if (len >= 0) {
//	    printf("%s\n", buffer);
//	}
//
//	hello_greeter_destroy(greeter);
//
// # String Passing
//
// Input strings cross the boundary as a pointer plus an explicit byte length;
// a NULL pointer selects the default for optional parameters. Output strings
// are copied into caller-supplied buffers and always NUL-terminated, with the
// function returning the length the full string requires (excluding the
// terminator) so a caller with a short buffer can retry.
//
// # Error Handling
//
// Every fallible function reports failure through a sentinel return (NULL
// handle, -1, or 0) and records a descriptive message in the calling
// context's error channel. Read the channel with hello_get_last_error on the
// same thread immediately after the failing call, before making another call
// that could overwrite it. The channel is confined per execution context, so
// concurrent callers never race on error state.
//
// A too-small greet buffer is a softer case: the channel is set as a
// diagnostic, but the call still returns the positive required length and a
// truncated, terminated result.
//
// # Instance Management
//
// The C API uses opaque pointers (handles) to represent greeter instances.
// These handles are managed internally and map to Go objects. Always use
// hello_greeter_destroy() to release a greeter; destroying NULL is a no-op.
package main
