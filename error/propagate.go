package error

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/next-trace/scg-rpcerror/contract"
	"github.com/next-trace/scg-rpcerror/kind"
)

type grpcStatuser interface {
	GRPCStatus() *status.Status
}

// CodeOf returns the status code carried by err itself.
//
// Only the outermost error is inspected: a contract.Error reports its own code,
// and any other error exposing GRPCStatus (gRPC client errors) reports the
// status code. Wrapped chains are not walked.
func CodeOf(err error) (codes.Code, bool) {
	switch e := err.(type) {
	case nil:
		return 0, false
	case contract.Error:
		return e.Code()
	case grpcStatuser:
		st := e.GRPCStatus()
		if st == nil {
			return 0, false
		}

		return st.Code(), true
	default:
		return 0, false
	}
}

// FindCode returns the first code carried anywhere in err's chain, depth first,
// following both Unwrap() error and Unwrap() []error. Uncoded errors are skipped.
func FindCode(err error) (codes.Code, bool) {
	if err == nil {
		return 0, false
	}

	if c, ok := CodeOf(err); ok {
		return c, true
	}

	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return FindCode(u.Unwrap())
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if c, ok := FindCode(e); ok {
				return c, true
			}
		}
	}

	return 0, false
}

// Propagate re-expresses inner as a new error with message, built by target.
//
// The kind is looked up from inner's code. When inner carries no known code, or
// target has no constructor for the kind, the result is this package's
// BadImplementation. The inner error is always kept as the cause.
func Propagate(message string, inner error, target contract.Strategy) error {
	k := kind.Unknown
	if c, ok := CodeOf(inner); ok {
		k = kind.ByCode(c)
	}

	if target != nil && k != kind.Unknown {
		if fn, ok := target.Constructor(k); ok {
			return fn(message, inner)
		}
	}

	return BadImplementation(message, inner)
}

// Ensure converts any error to *Error.
//
// Behavior:
//   - nil input => nil output
//   - if err is or wraps *Error => that *Error (same pointer)
//   - otherwise propagated through GRPC, keeping a known code or falling back
//     to BadImplementation
func Ensure(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error

	if errors.As(err, &e) {
		return e
	}

	// GRPC always yields *Error.
	out, _ := Propagate(err.Error(), err, GRPC).(*Error)

	return out
}
