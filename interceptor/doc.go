// Package interceptor applies error propagation at the gRPC boundary.
//
// The server interceptor looks for a status code anywhere in a handler error's
// chain. Errors that carry one, including codes outside the kind table such as
// ResourceExhausted, are returned unchanged; errors with none are propagated
// into BadImplementation and leave as codes.Unknown.
// The client interceptor re-expresses errors returned by a remote call in the
// caller's strategy, keeping the remote error as the cause.
//
// Both record each error on the zerolog logger, the active OpenTelemetry span
// and, when configured, a Prometheus counter.
package interceptor
