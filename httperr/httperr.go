// Package httperr is an HTTP-shaped error strategy. Its errors carry an HTTP
// status instead of a gRPC code, which makes it the usual target when a gRPC
// failure has to be reported by an HTTP handler.
package httperr

import (
	"net/http"

	"github.com/next-trace/scg-rpcerror/contract"
	"github.com/next-trace/scg-rpcerror/kind"
)

// Error is an error tagged with an HTTP status.
type Error struct {
	message string
	status  int
	inner   error
}

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

func (e *Error) StatusCode() int { return e.status }

// StatusText returns the standard text for the status, e.g. "Not Found".
func (e *Error) StatusText() string { return http.StatusText(e.status) }

var statusByKind = map[kind.Kind]int{
	kind.BadImplementation:  http.StatusInternalServerError,
	kind.BadRequest:         http.StatusBadRequest,
	kind.NotFound:           http.StatusNotFound,
	kind.Forbidden:          http.StatusForbidden,
	kind.PreconditionFailed: http.StatusPreconditionFailed,
	kind.NotImplemented:     http.StatusNotImplemented,
	kind.Unavailable:        http.StatusServiceUnavailable,
}

// StatusFor returns the HTTP status for k; unknown kinds map to 500.
func StatusFor(k kind.Kind) int {
	if s, ok := statusByKind[k]; ok {
		return s
	}

	return http.StatusInternalServerError
}

// New builds an HTTP error for k. A nil inner means none.
func New(k kind.Kind, message string, inner error) *Error {
	return &Error{message: message, status: StatusFor(k), inner: inner}
}

type strategy struct{}

// Strategy supports every kind in the table.
var Strategy contract.Strategy = strategy{}

func (strategy) Constructor(k kind.Kind) (contract.Constructor, bool) {
	if _, ok := statusByKind[k]; !ok {
		return nil, false
	}

	return func(message string, inner error) error {
		return New(k, message, inner)
	}, true
}
