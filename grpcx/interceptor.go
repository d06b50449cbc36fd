// Package grpcx applies endpoint decorators to gRPC unary handlers.
package grpcx

import (
	"context"
	"sync"

	"github.com/go-leo/decorators/endpoint"
	"google.golang.org/grpc"
)

type handlerKey struct{}

// UnaryServerInterceptor returns an interceptor running every unary RPC through
// the decorators. Each RPC method gets its own decorated endpoint, built on first
// use and kept for the life of the interceptor, so stateful decorators such as
// CountCalls count across calls. The endpoint is named after the full method.
func UnaryServerInterceptor(decorators ...endpoint.Decorator[any, any]) grpc.UnaryServerInterceptor {
	var endpoints sync.Map
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		value, ok := endpoints.Load(info.FullMethod)
		if !ok {
			value, _ = endpoints.LoadOrStore(info.FullMethod, newEndpoint(info.FullMethod, decorators))
		}
		ep := value.(endpoint.Endpoint[any, any])
		return ep.Invoke(context.WithValue(ctx, handlerKey{}, handler), req)
	}
}

func newEndpoint(fullMethod string, decorators []endpoint.Decorator[any, any]) endpoint.Endpoint[any, any] {
	ep := endpoint.New[any, any](invokeHandler, endpoint.Name(fullMethod), endpoint.QualifiedName(fullMethod))
	return endpoint.Chain[any, any](ep, decorators...)
}

func invokeHandler(ctx context.Context, req any) (any, error) {
	handler := ctx.Value(handlerKey{}).(grpc.UnaryHandler)
	return handler(ctx, req)
}
