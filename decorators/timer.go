package decorators

import (
	"context"
	"time"

	"github.com/go-leo/decorators/endpoint"
	"github.com/go-leo/decorators/middleware"
	"github.com/go-leo/decorators/report"
)

// Timer reports how long each successful call of ep took:
//
//	Finished 'greet' in 0.0012 seconds
//
// Failed calls are not reported.
func Timer[Req any, Resp any](ep endpoint.Endpoint[Req, Resp], opts ...Option) endpoint.Endpoint[Req, Resp] {
	return middleware.Decorate[Req, Resp](timer[Req, Resp](newOptions(opts...))).Decorate(ep)
}

func timer[Req any, Resp any](o *options) middleware.Middleware[Req, Resp] {
	return func(ctx context.Context, req Req, info endpoint.Info, invoker middleware.Invoker[Req, Resp]) (Resp, error) {
		start := time.Now()
		resp, err := invoker(ctx, req)
		if err != nil {
			return resp, err
		}
		o.Reporter.Report(ctx, report.Finished(info.Name, time.Since(start)))
		return resp, nil
	}
}
