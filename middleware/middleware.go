// Package middleware expresses decorators as code running around a single invocation.
package middleware

import (
	"context"

	"github.com/go-leo/decorators/endpoint"
)

// Invoker calls the next step of the chain.
type Invoker[Req any, Resp any] func(ctx context.Context, req Req) (Resp, error)

// Middleware runs around one invocation. It may act before and after calling
// invoker, call it several times, or not at all. info describes the decorated endpoint.
type Middleware[Req any, Resp any] func(ctx context.Context, req Req, info endpoint.Info, invoker Invoker[Req, Resp]) (Resp, error)

// Chain folds middlewares into one. The first middleware is the outermost.
// Chain returns nil when no middleware is given.
func Chain[Req any, Resp any](middlewares ...Middleware[Req, Resp]) Middleware[Req, Resp] {
	var mdw Middleware[Req, Resp]
	if len(middlewares) == 0 {
		mdw = nil
	} else if len(middlewares) == 1 {
		mdw = middlewares[0]
	} else {
		mdw = func(ctx context.Context, req Req, info endpoint.Info, invoker Invoker[Req, Resp]) (Resp, error) {
			return middlewares[0](ctx, req, info, getInvoker(middlewares, 0, info, invoker))
		}
	}
	return mdw
}

func getInvoker[Req any, Resp any](middlewares []Middleware[Req, Resp], curr int, info endpoint.Info, finalInvoker Invoker[Req, Resp]) Invoker[Req, Resp] {
	if curr == len(middlewares)-1 {
		return finalInvoker
	}
	return func(ctx context.Context, req Req) (Resp, error) {
		return middlewares[curr+1](ctx, req, info, getInvoker(middlewares, curr+1, info, finalInvoker))
	}
}

// Decorate returns an endpoint decorator running the middlewares around every
// call. The wrapper keeps the metadata of the endpoint it decorates.
func Decorate[Req any, Resp any](middlewares ...Middleware[Req, Resp]) endpoint.Decorator[Req, Resp] {
	mdw := Chain(middlewares...)
	return endpoint.DecoratorFunc[Req, Resp](func(ep endpoint.Endpoint[Req, Resp]) endpoint.Endpoint[Req, Resp] {
		if mdw == nil {
			return ep
		}
		info := ep.Info()
		return endpoint.Wrap[Req, Resp](ep, func(ctx context.Context, req Req) (Resp, error) {
			return mdw(ctx, req, info, ep.Invoke)
		})
	})
}

// Invoke is a final invoker that does nothing and returns the zero response.
func Invoke[Req any, Resp any](_ context.Context, _ Req) (Resp, error) {
	var resp Resp
	return resp, nil
}
