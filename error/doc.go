// Package error is the gRPC error strategy: it builds errors tagged with the
// status codes of the kind table and re-expresses foreign errors across
// strategy boundaries.
//
// Every error built here is an *Error: a message, an optional gRPC code and an
// optional inner cause. The cause is what Unwrap returns, so errors.Is and
// errors.As see through to it.
//
// Key characteristics:
//   - One constructor per kind (NotFound, Unavailable, ...) setting the gRPC code
//   - Optional inner cause, recorded only when one is given
//   - Propagate, which maps an inner error's code to a kind and lets any
//     contract.Strategy build the outer error, falling back to BadImplementation
//   - GRPCStatus, so a gRPC server sends the tagged code as-is
//   - CodeOf reads only the outermost error; FindCode walks the chain
package error
