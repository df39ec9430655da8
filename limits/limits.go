// Package limits provides centralized size limits for the hello library.
// This ensures consistent validation across the Go core and the C API layer.
package limits

import (
	"errors"
	"fmt"
)

const (
	// MaxNameLength is the size of the name bound in the original C API.
	// Valid names are strictly shorter than this (1..255 bytes).
	MaxNameLength = 256

	// MaxGreetingLength is the advisory greeting bound from the original
	// C header. It is not enforced: a greeting is bounded only by the
	// caller's output buffer.
	MaxGreetingLength = 64

	// ErrorBufferSize is the capacity of a per-context error message.
	// Longer messages are truncated silently when stored.
	ErrorBufferSize = 1024
)

var (
	// ErrNameEmpty indicates an empty name was provided
	ErrNameEmpty = errors.New("name cannot be empty")

	// ErrNameTooLong indicates a name meets or exceeds MaxNameLength
	ErrNameTooLong = errors.New("name too long")
)

// ValidateName validates a greeter name against MaxNameLength.
// Length is measured in bytes, matching the C contract, not in runes.
// Returns an error with context including the actual and maximum lengths.
func ValidateName(name string) error {
	if len(name) == 0 {
		return ErrNameEmpty
	}
	if len(name) >= MaxNameLength {
		return fmt.Errorf("%w: %d chars, max %d", ErrNameTooLong, len(name), MaxNameLength-1)
	}
	return nil
}
