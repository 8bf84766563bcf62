package error

import (
	"github.com/next-trace/scg-rpcerror/contract"
	"github.com/next-trace/scg-rpcerror/kind"
)

// Strategy builds *Error values for every kind in the table.
type Strategy struct{}

// GRPC is the built-in strategy.
var GRPC Strategy

var _ contract.Strategy = Strategy{}

func (Strategy) Constructor(k kind.Kind) (contract.Constructor, bool) {
	if !k.Valid() {
		return nil, false
	}

	return func(message string, inner error) error {
		return New(k, message, inner)
	}, true
}
