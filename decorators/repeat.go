package decorators

import (
	"context"

	"github.com/go-leo/decorators/endpoint"
	"github.com/go-leo/decorators/middleware"
)

// DefaultNumTimes is the repetition count used by Repeated.
const DefaultNumTimes = 2

// Repeat returns a decorator calling the endpoint numTimes times with the same
// request and returning the last result. With numTimes <= 0 the endpoint is not
// called and the zero Resp is returned. A failed call stops the repetition.
func Repeat[Req any, Resp any](numTimes int) endpoint.Decorator[Req, Resp] {
	return middleware.Decorate[Req, Resp](repeat[Req, Resp](numTimes))
}

// Repeated is Repeat(DefaultNumTimes) applied to ep.
func Repeated[Req any, Resp any](ep endpoint.Endpoint[Req, Resp]) endpoint.Endpoint[Req, Resp] {
	return Repeat[Req, Resp](DefaultNumTimes).Decorate(ep)
}

func repeat[Req any, Resp any](numTimes int) middleware.Middleware[Req, Resp] {
	return func(ctx context.Context, req Req, _ endpoint.Info, invoker middleware.Invoker[Req, Resp]) (Resp, error) {
		var resp Resp
		for i := 0; i < numTimes; i++ {
			var err error
			resp, err = invoker(ctx, req)
			if err != nil {
				return resp, err
			}
		}
		return resp, nil
	}
}
