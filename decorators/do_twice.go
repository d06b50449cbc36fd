package decorators

import (
	"context"

	"github.com/go-leo/decorators/endpoint"
	"github.com/go-leo/decorators/middleware"
)

// DoTwice calls ep twice with the same request and returns the second result.
// If the first call fails, the second one does not happen.
func DoTwice[Req any, Resp any](ep endpoint.Endpoint[Req, Resp]) endpoint.Endpoint[Req, Resp] {
	return middleware.Decorate[Req, Resp](doTwice[Req, Resp]).Decorate(ep)
}

func doTwice[Req any, Resp any](ctx context.Context, req Req, _ endpoint.Info, invoker middleware.Invoker[Req, Resp]) (Resp, error) {
	if resp, err := invoker(ctx, req); err != nil {
		return resp, err
	}
	return invoker(ctx, req)
}
