package hello

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/hello/limits"
)

// Version is the library version string.
const Version = "1.0.0"

// Defaults applied when a Config omits a field.
const (
	DefaultName     = "World"
	DefaultGreeting = "Hello"
)

var (
	// ErrNilGreeter indicates an operation was invoked on a nil Greeter
	ErrNilGreeter = errors.New("greeter is nil")

	// ErrInvalidBuffer indicates a nil or zero-length output buffer
	ErrInvalidBuffer = errors.New("invalid output buffer")

	// ErrBufferTooSmall indicates the output buffer cannot hold the full
	// rendering. The accompanying length return is still the required size.
	ErrBufferTooSmall = errors.New("buffer too small")
)

// Config contains configuration options for creating a Greeter.
//
// Name and Greeting are optional overrides of the defaults; a nil pointer
// selects the default, mirroring the NULL-pointer convention of the original
// C configuration struct. An empty non-nil Name is a validation error, not a
// default.
//
//export HelloGreeterConfig
type Config struct {
	Name      *string
	Greeting  *string
	Uppercase bool
}

// Greeter pairs a name and a greeting template with a formatting flag.
// Both strings are owned by the Greeter; construction copies, never aliases.
//
//export HelloGreeter
type Greeter struct {
	name      string
	greeting  string
	uppercase bool
}

// New creates a Greeter from the given configuration. A nil config selects
// all defaults. The resolved name is validated against limits.MaxNameLength;
// on failure no Greeter is returned. Construction is atomic: either a fully
// valid Greeter is produced or none is.
//
//export HelloGreeterNew
func New(config *Config) (*Greeter, error) {
	name := DefaultName
	greeting := DefaultGreeting
	uppercase := false

	if config != nil {
		if config.Name != nil {
			name = *config.Name
		}
		if config.Greeting != nil {
			greeting = *config.Greeting
		}
		uppercase = config.Uppercase
	}

	if err := limits.ValidateName(name); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "New",
			"error":    err.Error(),
		}).Warn("Greeter configuration rejected")
		return nil, err
	}

	greeter := &Greeter{
		name:      name,
		greeting:  greeting,
		uppercase: uppercase,
	}

	logrus.WithFields(logrus.Fields{
		"function":  "New",
		"name":      greeter.name,
		"greeting":  greeter.greeting,
		"uppercase": greeter.uppercase,
	}).Info("Greeter created successfully")

	return greeter, nil
}

// Name returns the greeter's current name. A nil Greeter has no name.
//
//export HelloGreeterGetName
func (g *Greeter) Name() string {
	if g == nil {
		return ""
	}
	return g.name
}

// SetName replaces the greeter's name after re-validating it with the same
// rule as construction. On failure the previous name remains unchanged.
//
//export HelloGreeterSetName
func (g *Greeter) SetName(name string) error {
	if g == nil {
		return ErrNilGreeter
	}

	if err := limits.ValidateName(name); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "SetName",
			"error":    err.Error(),
		}).Warn("Name rejected")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"function": "SetName",
		"old_name": g.name,
		"new_name": name,
	}).Debug("Setting greeter name")

	g.name = name
	return nil
}

// Greeting returns the fully rendered greeting, uppercased when configured.
func (g *Greeter) Greeting() string {
	rendered := fmt.Sprintf("%s, %s!", g.greeting, g.name)
	if g.uppercase {
		rendered = strings.ToUpper(rendered)
	}
	return rendered
}

// FormatGreeting renders the greeting into buf, copying at most len(buf)
// bytes, and returns the byte length of the unrestricted rendering. When buf
// is too small the contents are truncated, the return value is still the full
// required length, and ErrBufferTooSmall is returned so the caller can retry
// with a larger buffer. Uppercasing applies to the copied bytes, truncated
// case included.
func (g *Greeter) FormatGreeting(buf []byte) (int, error) {
	if g == nil {
		return -1, ErrNilGreeter
	}
	if len(buf) == 0 {
		return -1, ErrInvalidBuffer
	}

	rendered := g.Greeting()
	required := len(rendered)
	copy(buf, rendered)

	if required > len(buf) {
		return required, fmt.Errorf("%w: need %d, have %d", ErrBufferTooSmall, required, len(buf))
	}
	return required, nil
}
