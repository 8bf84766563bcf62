// Package kind holds the fixed table mapping gRPC status codes to the
// semantic error kinds understood by every error strategy.
package kind

import "google.golang.org/grpc/codes"

// Kind is the protocol-independent name of a failure category.
type Kind string

// Kinds known to the status table. Unknown is returned for codes outside it.
const (
	Unknown            Kind = ""
	BadImplementation  Kind = "badImplementation"
	BadRequest         Kind = "badRequest"
	NotFound           Kind = "notFound"
	Forbidden          Kind = "forbidden"
	PreconditionFailed Kind = "preconditionFailed"
	NotImplemented     Kind = "notImplemented"
	Unavailable        Kind = "unavailable"
)

// Entry pairs a gRPC status code with its kind.
type Entry struct {
	Code codes.Code
	Kind Kind
}

// table is ordered by code. Codes and kinds are unique.
var table = [...]Entry{
	{Code: codes.Unknown, Kind: BadImplementation},
	{Code: codes.InvalidArgument, Kind: BadRequest},
	{Code: codes.NotFound, Kind: NotFound},
	{Code: codes.PermissionDenied, Kind: Forbidden},
	{Code: codes.FailedPrecondition, Kind: PreconditionFailed},
	{Code: codes.Unimplemented, Kind: NotImplemented},
	{Code: codes.Unavailable, Kind: Unavailable},
}

// Entries returns a copy of the table in code order.
func Entries() []Entry {
	out := make([]Entry, len(table))
	copy(out, table[:])

	return out
}

// Kinds returns every known kind in table order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(table))
	for _, e := range table {
		out = append(out, e.Kind)
	}

	return out
}

// ByCode returns the kind registered for c, or Unknown.
func ByCode(c codes.Code) Kind {
	for _, e := range table {
		if e.Code == c {
			return e.Kind
		}
	}

	return Unknown
}

// CodeOf returns the status code registered for k.
func CodeOf(k Kind) (codes.Code, bool) {
	for _, e := range table {
		if e.Kind == k {
			return e.Code, true
		}
	}

	return 0, false
}

// Valid reports whether k is in the table.
func (k Kind) Valid() bool {
	_, ok := CodeOf(k)
	return ok
}

func (k Kind) String() string {
	if k == Unknown {
		return "unknown"
	}

	return string(k)
}
