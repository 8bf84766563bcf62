// Package main demonstrates usage of the scg-rpcerror packages.
package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/next-trace/scg-rpcerror/contract"
	rpcerror "github.com/next-trace/scg-rpcerror/error"
	"github.com/next-trace/scg-rpcerror/httperr"
	"github.com/next-trace/scg-rpcerror/kind"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	// Direct construction
	e := rpcerror.NotFound("customer 42 not found")
	code, _ := e.Code()
	log.Info().Str("kind", e.Kind().String()).Str("code", code.String()).Msg(e.Error())

	// Re-tag a gRPC client error for this service
	remote := status.Error(codes.Unavailable, "billing backend down")
	out := rpcerror.Propagate("charge customer 42", remote, rpcerror.GRPC)
	log.Info().Err(errors.Unwrap(out)).Msg(out.Error())

	// Translate into the HTTP strategy
	var he *httperr.Error
	if errors.As(rpcerror.Propagate("GET /customers/42", e, httperr.Strategy), &he) {
		log.Info().Int("status", he.StatusCode()).Str("text", he.StatusText()).Msg(he.Error())
	}

	// A partial strategy: only unavailable is handled, everything else falls back
	partial := contract.Constructors{
		kind.Unavailable: func(msg string, inner error) error {
			return errors.Join(errors.New(msg), inner)
		},
	}
	fallback := rpcerror.Ensure(rpcerror.Propagate("lookup", e, partial))
	log.Warn().Str("kind", fallback.Kind().String()).Msg(fallback.Error())
}
