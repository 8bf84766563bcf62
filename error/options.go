package error

import "github.com/next-trace/scg-rpcerror/kind"

// Option configures an Error during construction via E().
type Option func(*Error)

// WithMessage sets the message for the error during E() construction.
func WithMessage(message string) Option { return func(e *Error) { e.message = message } }

// WithInner sets the cause returned by Unwrap(). A nil inner leaves none.
func WithInner(inner error) Option { return func(e *Error) { e.inner = inner } }

// E is a minimal builder when positional arguments read poorly.
// Defaults: message is the kind's name, no inner.
func E(k kind.Kind, opts ...Option) *Error {
	e := New(k, k.String())
	for _, o := range opts {
		o(e)
	}

	return e
}
