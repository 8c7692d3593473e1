package platform

import (
	"errors"
	"fmt"
)

// Kind classifies a failure into one of the three error domains shared by
// every backend.
type Kind int

const (
	// KindPlatformSpecific wraps any native failure not covered below.
	KindPlatformSpecific Kind = iota
	// KindNoWindowEnvironment means the native enumeration facility itself
	// is unavailable (no window server session, unsupported OS).
	KindNoWindowEnvironment
	// KindPermissionDenied means the native call was refused for lack of a
	// capability. Recoverable by obtaining the permission and retrying.
	KindPermissionDenied
)

func (k Kind) String() string {
	switch k {
	case KindNoWindowEnvironment:
		return "no window environment"
	case KindPermissionDenied:
		return "permission denied"
	default:
		return "platform error"
	}
}

var (
	// ErrNoWindowEnvironment matches (via errors.Is) every error of kind
	// KindNoWindowEnvironment.
	ErrNoWindowEnvironment = errors.New("no window environment is running")

	// ErrPermissionDenied matches every error of kind KindPermissionDenied.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidWindowBounds means a native rectangle could not be turned
	// into Bounds (failed decode or negative extent).
	ErrInvalidWindowBounds = errors.New("invalid window bounds")
)

// HRESULTAccessDenied is E_ACCESSDENIED, the only native code that maps to
// KindPermissionDenied.
const HRESULTAccessDenied uint32 = 0x80070005

// Error is the error type returned across the adapter boundary.
type Error struct {
	Kind Kind
	Op   string // native operation that failed, e.g. "GetWindowTextW"
	Code uint32 // native status code, 0 if none
	Err  error  // underlying native error, may be nil
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	} else if e.Code != 0 {
		msg += fmt.Sprintf(": code 0x%08X", e.Code)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match the kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNoWindowEnvironment:
		return e.Kind == KindNoWindowEnvironment
	case ErrPermissionDenied:
		return e.Kind == KindPermissionDenied
	}
	return false
}

// KindOf reports the kind of err. Errors that did not come from a backend
// are treated as platform specific.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	switch {
	case errors.Is(err, ErrNoWindowEnvironment):
		return KindNoWindowEnvironment
	case errors.Is(err, ErrPermissionDenied):
		return KindPermissionDenied
	}
	return KindPlatformSpecific
}

// NoWindowEnvironment builds a KindNoWindowEnvironment error.
func NoWindowEnvironment(op string, err error) error {
	return &Error{Kind: KindNoWindowEnvironment, Op: op, Err: err}
}

// PlatformSpecific builds a KindPlatformSpecific error.
func PlatformSpecific(op string, err error) error {
	return &Error{Kind: KindPlatformSpecific, Op: op, Err: err}
}

// FromHRESULT classifies a native status code. Only E_ACCESSDENIED becomes
// KindPermissionDenied.
func FromHRESULT(op string, code uint32, err error) error {
	kind := KindPlatformSpecific
	if code == HRESULTAccessDenied {
		kind = KindPermissionDenied
	}
	return &Error{Kind: kind, Op: op, Code: code, Err: err}
}

// HRESULTFromWin32 applies the HRESULT_FROM_WIN32 mapping to a Win32 error
// code.
func HRESULTFromWin32(code uint32) uint32 {
	if int32(code) <= 0 {
		return code
	}
	return (code & 0x0000FFFF) | (7 << 16) | 0x80000000
}
