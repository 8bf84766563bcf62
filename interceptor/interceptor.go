package interceptor

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	rpcerror "github.com/next-trace/scg-rpcerror/error"
	"github.com/next-trace/scg-rpcerror/kind"
)

// Span attribute keys.
const (
	AttrErrorKind = attribute.Key("rpc.error.kind")
	AttrErrorCode = attribute.Key("rpc.error.code")
)

// UnaryServerInterceptor returns a unary server interceptor that gives every
// uncoded handler error a status code. Errors carrying a code anywhere in their
// chain pass unchanged.
func UnaryServerInterceptor(opts ...Option) grpc.UnaryServerInterceptor {
	o := newOptions(opts)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		code, ok := rpcerror.FindCode(err)
		if !ok {
			err = rpcerror.Propagate(err.Error(), err, rpcerror.GRPC)
			code = codes.Unknown
		}

		o.observe(ctx, directionServer, info.FullMethod, kind.ByCode(code), code, err)

		return resp, err
	}
}

// UnaryClientInterceptor returns a unary client interceptor that propagates
// call errors into the configured target strategy. The outer message is
// "<method>: <remote message>".
func UnaryClientInterceptor(opts ...Option) grpc.UnaryClientInterceptor {
	o := newOptions(opts)

	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		callOpts ...grpc.CallOption,
	) error {
		err := invoker(ctx, method, req, reply, cc, callOpts...)
		if err == nil {
			return nil
		}

		out := rpcerror.Propagate(method+": "+status.Convert(err).Message(), err, o.target)

		remote, ok := rpcerror.CodeOf(err)
		if !ok {
			remote = codes.Unknown
		}

		o.observe(ctx, directionClient, method, o.returnedKind(remote), remote, out)

		return out
	}
}

// returnedKind is the kind Propagate gives the error for a remote code:
// the remote kind when the target builds it, BadImplementation otherwise.
func (o *options) returnedKind(remote codes.Code) kind.Kind {
	k := kind.ByCode(remote)
	if k == kind.Unknown {
		return kind.BadImplementation
	}

	if _, ok := o.target.Constructor(k); !ok {
		return kind.BadImplementation
	}

	return k
}

// observe reports the returned error under kind k. code is the status code
// the error was classified from.
func (o *options) observe(ctx context.Context, direction, method string, k kind.Kind, code codes.Code, returned error) {
	if k == kind.Unknown {
		k = kind.BadImplementation
	}

	var ev *zerolog.Event
	if k == kind.BadImplementation {
		ev = o.logger.Error()
	} else {
		ev = o.logger.Warn()
	}

	ev.Str("direction", direction).
		Str("method", method).
		Str("kind", k.String()).
		Str("code", code.String()).
		Err(returned).
		Msg("rpc error propagated")

	span := trace.SpanFromContext(ctx)
	span.RecordError(returned, trace.WithAttributes(
		AttrErrorKind.String(k.String()),
		AttrErrorCode.Int(int(code)),
	))
	span.SetStatus(otelcodes.Error, returned.Error())

	o.metrics.inc(direction, k.String())
}
