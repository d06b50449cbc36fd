package decorators

import (
	"context"
	"time"

	"github.com/go-leo/decorators/endpoint"
	"github.com/go-leo/decorators/middleware"
)

// SlowDown waits DefaultDelay before every call of ep. If ctx is done first,
// ep is not called and the context error is returned.
func SlowDown[Req any, Resp any](ep endpoint.Endpoint[Req, Resp], opts ...Option) endpoint.Endpoint[Req, Resp] {
	return middleware.Decorate[Req, Resp](slowDown[Req, Resp](newOptions(opts...))).Decorate(ep)
}

func slowDown[Req any, Resp any](o *options) middleware.Middleware[Req, Resp] {
	return func(ctx context.Context, req Req, _ endpoint.Info, invoker middleware.Invoker[Req, Resp]) (Resp, error) {
		if o.Delay > 0 {
			t := time.NewTimer(o.Delay)
			defer t.Stop()
			select {
			case <-ctx.Done():
				var resp Resp
				return resp, ctx.Err()
			case <-t.C:
			}
		}
		return invoker(ctx, req)
	}
}
