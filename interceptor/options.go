package interceptor

import (
	"github.com/rs/zerolog"

	"github.com/next-trace/scg-rpcerror/contract"
	rpcerror "github.com/next-trace/scg-rpcerror/error"
)

// Option configures an interceptor.
type Option func(*options)

type options struct {
	logger  zerolog.Logger
	target  contract.Strategy
	metrics *Metrics
}

// WithLogger sets the logger errors are reported to. Defaults to zerolog.Nop().
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.logger = l } }

// WithTarget sets the strategy client errors are propagated into.
// Defaults to the gRPC strategy. Ignored by the server interceptor.
func WithTarget(s contract.Strategy) Option { return func(o *options) { o.target = s } }

// WithMetrics enables counting of propagated errors.
func WithMetrics(m *Metrics) Option { return func(o *options) { o.metrics = m } }

func newOptions(opts []Option) *options {
	o := &options{
		logger: zerolog.Nop(),
		target: rpcerror.GRPC,
	}
	for _, fn := range opts {
		fn(o)
	}

	if o.target == nil {
		o.target = rpcerror.GRPC
	}

	return o
}
