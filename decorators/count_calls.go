package decorators

import (
	"context"
	"sync/atomic"

	"github.com/go-leo/decorators/endpoint"
	"github.com/go-leo/decorators/middleware"
	"github.com/go-leo/decorators/report"
)

// Counted is an endpoint counting its own calls.
type Counted[Req any, Resp any] struct {
	wrapped  endpoint.Endpoint[Req, Resp]
	invoker  endpoint.Endpoint[Req, Resp]
	numCalls atomic.Int64
}

var _ endpoint.Endpoint[any, any] = (*Counted[any, any])(nil)

// CountCalls wraps ep with a call counter starting at zero. Every call, failed
// or not, increments the counter and reports it before ep runs:
//
//	Call 3 of greet
//
// Each wrapper owns its counter.
func CountCalls[Req any, Resp any](ep endpoint.Endpoint[Req, Resp], opts ...Option) *Counted[Req, Resp] {
	c := &Counted[Req, Resp]{wrapped: ep}
	c.invoker = middleware.Decorate[Req, Resp](countCalls[Req, Resp](&c.numCalls, newOptions(opts...))).Decorate(ep)
	return c
}

func countCalls[Req any, Resp any](numCalls *atomic.Int64, o *options) middleware.Middleware[Req, Resp] {
	return func(ctx context.Context, req Req, info endpoint.Info, invoker middleware.Invoker[Req, Resp]) (Resp, error) {
		n := numCalls.Add(1)
		o.Reporter.Report(ctx, report.Count(info.Name, n))
		return invoker(ctx, req)
	}
}

// Invoke counts the call and forwards it.
func (c *Counted[Req, Resp]) Invoke(ctx context.Context, req Req) (Resp, error) {
	return c.invoker.Invoke(ctx, req)
}

// Info returns the metadata of the wrapped endpoint.
func (c *Counted[Req, Resp]) Info() endpoint.Info {
	return c.wrapped.Info()
}

// Unwrap returns the wrapped endpoint.
func (c *Counted[Req, Resp]) Unwrap() endpoint.Endpoint[Req, Resp] {
	return c.wrapped
}

// NumCalls returns how many times c has been called.
func (c *Counted[Req, Resp]) NumCalls() int64 {
	return c.numCalls.Load()
}
