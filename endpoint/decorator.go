package endpoint

import "github.com/go-leo/decorators/decorator"

// Decorator wraps an Endpoint, adding some functionality around Invoke.
type Decorator[Req any, Resp any] decorator.Decorator[Endpoint[Req, Resp]]

// The DecoratorFunc type is an adapter to allow the use of ordinary functions as Decorator.
type DecoratorFunc[Req any, Resp any] func(ep Endpoint[Req, Resp]) Endpoint[Req, Resp]

// Decorate calls f(ep).
func (f DecoratorFunc[Req, Resp]) Decorate(ep Endpoint[Req, Resp]) Endpoint[Req, Resp] {
	return f(ep)
}

// Chain decorates ep with all decorators, the first one outermost.
func Chain[Req any, Resp any](ep Endpoint[Req, Resp], decorators ...Decorator[Req, Resp]) Endpoint[Req, Resp] {
	ds := make([]decorator.Decorator[Endpoint[Req, Resp]], 0, len(decorators))
	for _, d := range decorators {
		if d == nil {
			continue
		}
		ds = append(ds, d)
	}
	return decorator.Chain[Endpoint[Req, Resp]](ep, ds...)
}
