// Package fault defines the typed failure kinds surfaced across the
// service boundary. Callers dispatch on the kind (re-prompt on validation,
// report on not-found, bail on storage) and display the message as-is.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// KindUnknown is the zero value; errors without a fault kind map here.
	KindUnknown Kind = iota
	// KindValidation marks bad or missing caller input. Recoverable by
	// re-prompting.
	KindValidation
	// KindNotFound marks a lookup by id that matched nothing.
	KindNotFound
	// KindStorage marks a connectivity or query failure in the data layer.
	KindStorage
)

// Error carries a failure kind, a user-facing message, and an optional
// underlying cause.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string { return e.msg }

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.cause }

// Kind returns the failure kind.
func (e *Error) Kind() Kind { return e.kind }

// Validationf builds a validation fault.
func Validationf(format string, args ...any) error {
	return &Error{kind: KindValidation, msg: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found fault.
func NotFoundf(format string, args ...any) error {
	return &Error{kind: KindNotFound, msg: fmt.Sprintf(format, args...)}
}

// Storage wraps a data-layer error as a storage fault. The message stays
// user-facing; the cause remains reachable via errors.Unwrap.
func Storage(cause error, format string, args ...any) error {
	return &Error{kind: KindStorage, msg: fmt.Sprintf(format, args...), cause: cause}
}

// KindOf returns the fault kind of err, or KindUnknown for plain errors.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.kind
	}
	return KindUnknown
}

// IsValidation reports whether err is a validation fault.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsNotFound reports whether err is a not-found fault.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsStorage reports whether err is a storage fault.
func IsStorage(err error) bool { return KindOf(err) == KindStorage }
