package error

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/next-trace/scg-rpcerror/contract"
	"github.com/next-trace/scg-rpcerror/kind"
)

// Error is an error optionally tagged with a gRPC status code.
//
// Fields:
//   - message: human-readable description, returned by Error()
//   - code:    status code, only meaningful when hasCode is set
//   - inner:   the cause, nil when none was given
type Error struct {
	message string
	code    codes.Code
	hasCode bool
	inner   error
}

// compile-time guarantee that *Error implements contract.Error
var _ contract.Error = (*Error)(nil)

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	return e.message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.inner
}

// Code returns the status code, or false when the error carries none.
func (e *Error) Code() (codes.Code, bool) {
	if e == nil || !e.hasCode {
		return 0, false
	}

	return e.code, true
}

// Kind returns the kind for the error's code, or kind.Unknown.
func (e *Error) Kind() kind.Kind {
	c, ok := e.Code()
	if !ok {
		return kind.Unknown
	}

	return kind.ByCode(c)
}

// GRPCStatus lets grpc's status.FromError read the tagged code.
// Errors without a code report codes.Unknown.
func (e *Error) GRPCStatus() *status.Status {
	c, ok := e.Code()
	if !ok {
		c = codes.Unknown
	}

	return status.New(c, e.Error())
}

// New builds an error for k. Only the first inner is kept; a nil inner is the same as none.
// Kinds outside the table produce an error without a code.
func New(k kind.Kind, message string, inner ...error) *Error {
	e := &Error{message: message}
	e.code, e.hasCode = kind.CodeOf(k)

	if len(inner) > 0 && inner[0] != nil {
		e.inner = inner[0]
	}

	return e
}

// ------ per-kind constructors

func BadImplementation(message string, inner ...error) *Error {
	return New(kind.BadImplementation, message, inner...)
}

func BadRequest(message string, inner ...error) *Error {
	return New(kind.BadRequest, message, inner...)
}

func NotFound(message string, inner ...error) *Error {
	return New(kind.NotFound, message, inner...)
}

func Forbidden(message string, inner ...error) *Error {
	return New(kind.Forbidden, message, inner...)
}

func PreconditionFailed(message string, inner ...error) *Error {
	return New(kind.PreconditionFailed, message, inner...)
}

func NotImplemented(message string, inner ...error) *Error {
	return New(kind.NotImplemented, message, inner...)
}

func Unavailable(message string, inner ...error) *Error {
	return New(kind.Unavailable, message, inner...)
}
