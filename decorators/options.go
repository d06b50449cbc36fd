package decorators

import (
	"time"

	"github.com/go-leo/decorators/endpoint"
	"github.com/go-leo/decorators/plugin"
	"github.com/go-leo/decorators/report"
	"github.com/go-leo/decorators/repr"
)

// DefaultDelay is how long SlowDown waits before each call.
const DefaultDelay = time.Second

type options struct {
	Reporter  report.Reporter
	Registry  *plugin.Registry
	Delay     time.Duration
	Formatter repr.Formatter
}

func newOptions(opts ...Option) *options {
	o := &options{Delay: DefaultDelay}
	for _, opt := range opts {
		opt(o)
	}
	if o.Reporter == nil {
		o.Reporter = report.Stdout()
	}
	if o.Registry == nil {
		o.Registry = plugin.GetRegistry()
	}
	if o.Formatter == nil {
		o.Formatter = repr.Default
	}
	return o
}

type Option func(*options)

// WithReporter sets the side channel reports are written to.
func WithReporter(r report.Reporter) Option {
	return func(o *options) {
		o.Reporter = r
	}
}

// WithRegistry sets the registry Register writes to instead of the process-wide one.
func WithRegistry(r *plugin.Registry) Option {
	return func(o *options) {
		o.Registry = r
	}
}

// WithDelay overrides DefaultDelay for SlowDown. A non-positive delay disables the wait.
func WithDelay(d time.Duration) Option {
	return func(o *options) {
		o.Delay = d
	}
}

// WithFormatter sets how Trace renders arguments and results.
func WithFormatter(f repr.Formatter) Option {
	return func(o *options) {
		o.Formatter = f
	}
}

// Use binds options to a decorator function so it can be passed to endpoint.Chain.
func Use[Req any, Resp any](fn func(endpoint.Endpoint[Req, Resp], ...Option) endpoint.Endpoint[Req, Resp], opts ...Option) endpoint.Decorator[Req, Resp] {
	return endpoint.DecoratorFunc[Req, Resp](func(ep endpoint.Endpoint[Req, Resp]) endpoint.Endpoint[Req, Resp] {
		return fn(ep, opts...)
	})
}
