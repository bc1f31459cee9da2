package error

import (
	"errors"
	"fmt"
	"runtime"
)

type Code uint32

const (
	ContractViolationErrorCode Code = iota
	ValueConstructionErrorCode
)

func (c Code) String() string {
	switch c {
	case ContractViolationErrorCode:
		return "contract violation"
	case ValueConstructionErrorCode:
		return "value construction"
	default:
		return fmt.Sprintf("code(%d)", uint32(c))
	}
}

// StackTraceError wraps any error and captures a stack trace
type StackTraceError struct {
	Msg       string
	Stack     string
	ErrorCode Code
	Err       error
}

func NewStackTraceError(msg string, errorCode Code) *StackTraceError {
	buf := make([]byte, 1024*8)
	n := runtime.Stack(buf, false)
	return &StackTraceError{Msg: msg, Stack: string(buf[:n]), ErrorCode: errorCode}
}

func NewContractViolationError(msg string) *StackTraceError {
	return NewStackTraceError(msg, ContractViolationErrorCode)
}

// NewValueConstructionError reports that building an element failed before the list was touched.
func NewValueConstructionError(err error) *StackTraceError {
	e := NewStackTraceError(fmt.Sprintf("value construction failed: %s", err.Error()), ValueConstructionErrorCode)
	e.Err = err
	return e
}

func (e *StackTraceError) Error() string {
	return fmt.Sprintf("%s\nStack trace:\n%s", e.Msg, e.Stack)
}

func (e *StackTraceError) Unwrap() error {
	return e.Err
}

// HasCode reports whether err is a StackTraceError carrying code.
func HasCode(err error, code Code) bool {
	var e *StackTraceError
	return errors.As(err, &e) && e.ErrorCode == code
}
