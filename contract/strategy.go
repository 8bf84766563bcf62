package contract

import "github.com/next-trace/scg-rpcerror/kind"

// Constructor builds an error for one kind. A nil inner means no cause.
type Constructor func(message string, inner error) error

// Strategy decides how each kind's error value is built.
// Strategies may support any subset of kinds.
type Strategy interface {
	// Constructor returns the constructor for k, or false when k is unsupported.
	Constructor(k kind.Kind) (Constructor, bool)
}

// Constructors is a map-backed Strategy. Missing or nil entries are unsupported.
type Constructors map[kind.Kind]Constructor

var _ Strategy = Constructors(nil)

func (c Constructors) Constructor(k kind.Kind) (Constructor, bool) {
	fn, ok := c[k]
	if !ok || fn == nil {
		return nil, false
	}

	return fn, true
}
