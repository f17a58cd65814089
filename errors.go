package vulkantest

import (
	"errors"
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// Kind classifies every failure the renderer core can report. Errors raised
// during initialization are fatal to startup; errors raised during the frame
// loop abandon the current frame only.
type Kind uint8

const (
	// KindCapabilityMissing means the adapter, loader or surface lacks a
	// required capability: no adapter, no suitable queue family, no matching
	// surface format or present mode, or a required layer/extension absent.
	KindCapabilityMissing Kind = iota + 1
	// KindCapacityExceeded means a driver-reported list or image count does
	// not fit the core's fixed buffer capacity.
	KindCapacityExceeded
	// KindCreationFailed means the driver refused to create a requested object.
	KindCreationFailed
	KindRecordingFailed
	KindAcquireFailed
	KindSubmitFailed
	KindPresentFailed
)

func (k Kind) String() string {
	switch k {
	case KindCapabilityMissing:
		return "capability missing"
	case KindCapacityExceeded:
		return "capacity exceeded"
	case KindCreationFailed:
		return "creation failed"
	case KindRecordingFailed:
		return "recording failed"
	case KindAcquireFailed:
		return "acquire failed"
	case KindSubmitFailed:
		return "submit failed"
	case KindPresentFailed:
		return "present failed"
	}
	return "unknown"
}

// Error is the result type for every driver-facing operation.
type Error struct {
	Kind   Kind
	Op     string
	Result vk.Result // vk.Success when the failure did not come from a driver result
	Msg    string
}

func (e *Error) Error() string {
	if e.Result != vk.Success {
		return fmt.Sprintf("%s: %s: %s (%d)", e.Op, e.Kind, vk.Error(e.Result).Error(), e.Result)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

func newError(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func newResultError(kind Kind, op string, ret vk.Result) *Error {
	return &Error{Kind: kind, Op: op, Result: ret}
}

// at annotates the error with the failing index of a per-image operation.
func (e *Error) at(index uint32) *Error {
	e.Op = fmt.Sprintf("%s[%d]", e.Op, index)
	return e
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
