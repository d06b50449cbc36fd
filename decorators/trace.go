package decorators

import (
	"context"

	"github.com/go-leo/decorators/args"
	"github.com/go-leo/decorators/endpoint"
	"github.com/go-leo/decorators/middleware"
	"github.com/go-leo/decorators/report"
	"github.com/go-leo/decorators/repr"
)

// Trace reports every call of ep with its arguments, and the result of every
// successful call:
//
//	Calling greet("Bob", greeting="Hi")
//	greet() returns "Hi Bob"
//
// An args.Args request renders as its argument list, any other request as a
// single argument.
func Trace[Req any, Resp any](ep endpoint.Endpoint[Req, Resp], opts ...Option) endpoint.Endpoint[Req, Resp] {
	return middleware.Decorate[Req, Resp](trace[Req, Resp](newOptions(opts...))).Decorate(ep)
}

func trace[Req any, Resp any](o *options) middleware.Middleware[Req, Resp] {
	return func(ctx context.Context, req Req, info endpoint.Info, invoker middleware.Invoker[Req, Resp]) (Resp, error) {
		o.Reporter.Report(ctx, report.Calling(info.Name, signature(req, o.Formatter)))
		resp, err := invoker(ctx, req)
		if err != nil {
			return resp, err
		}
		o.Reporter.Report(ctx, report.Returns(info.Name, o.Formatter(resp)))
		return resp, nil
	}
}

func signature(req any, format repr.Formatter) string {
	if s, ok := req.(args.Signer); ok {
		return s.Signature(format)
	}
	return format(req)
}
