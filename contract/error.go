// Package contract exposes the minimal interfaces shared by error strategies.
//
// Implementations of Error must support errors.Unwrap so causes stay reachable
// through errors.Is / errors.As.
package contract

import "google.golang.org/grpc/codes"

// Error is the surface of an error tagged with a gRPC status code.
//
// Implementations must:
//   - Return the human message from Error().
//   - Report ok=false from Code() when no code was attached.
//   - Return the inner cause from Unwrap(), or nil when none was given.
type Error interface {
	error
	Code() (codes.Code, bool)
	Unwrap() error
}
