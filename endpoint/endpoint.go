package endpoint

import "context"

// Named is anything carrying call metadata.
type Named interface {
	// Info returns the name and documentation of the callable.
	Info() Info
}

// Endpoint represents a single callable. The request carries its arguments,
// a non-nil error reports a failed call.
type Endpoint[Req any, Resp any] interface {
	Named
	Invoke(ctx context.Context, request Req) (Resp, error)
}

// The EndpointFunc type is an adapter to allow the use of ordinary functions as Endpoint.
// If f is a function with the appropriate signature, EndpointFunc(f) is a Endpoint that calls f.
// Its Info is derived from the function symbol.
type EndpointFunc[Req any, Resp any] func(ctx context.Context, request Req) (Resp, error)

// Invoke calls f(ctx, request).
func (f EndpointFunc[Req, Resp]) Invoke(ctx context.Context, request Req) (Resp, error) {
	return f(ctx, request)
}

// Info returns the metadata of the underlying function.
func (f EndpointFunc[Req, Resp]) Info() Info {
	return infoOf(f)
}

// Func is an Endpoint with explicit metadata. Wrappers built by Wrap keep a
// reference to the endpoint they wrap.
type Func[Req any, Resp any] struct {
	info    Info
	invoke  EndpointFunc[Req, Resp]
	wrapped Endpoint[Req, Resp]
}

var _ Endpoint[any, any] = (*Func[any, any])(nil)

// New returns an Endpoint calling f. The name defaults to the function symbol.
func New[Req any, Resp any](f EndpointFunc[Req, Resp], opts ...Option) *Func[Req, Resp] {
	info := newOption(f, opts...).info
	return &Func[Req, Resp]{info: info, invoke: f}
}

// Wrap returns an Endpoint calling f that carries the metadata of wrapped.
func Wrap[Req any, Resp any](wrapped Endpoint[Req, Resp], f EndpointFunc[Req, Resp]) *Func[Req, Resp] {
	return &Func[Req, Resp]{info: wrapped.Info(), invoke: f, wrapped: wrapped}
}

// Invoke calls the underlying function.
func (f *Func[Req, Resp]) Invoke(ctx context.Context, request Req) (Resp, error) {
	return f.invoke(ctx, request)
}

// Info returns the endpoint metadata.
func (f *Func[Req, Resp]) Info() Info {
	return f.info
}

// Unwrap returns the wrapped endpoint, or nil if f wraps nothing.
func (f *Func[Req, Resp]) Unwrap() Endpoint[Req, Resp] {
	return f.wrapped
}

type unwrapper[Req any, Resp any] interface {
	Unwrap() Endpoint[Req, Resp]
}

// Unwrap returns the endpoint directly wrapped by ep, or nil.
func Unwrap[Req any, Resp any](ep Endpoint[Req, Resp]) Endpoint[Req, Resp] {
	u, ok := ep.(unwrapper[Req, Resp])
	if !ok {
		return nil
	}
	return u.Unwrap()
}

// Original follows the Unwrap chain of ep down to the innermost endpoint.
func Original[Req any, Resp any](ep Endpoint[Req, Resp]) Endpoint[Req, Resp] {
	for {
		inner := Unwrap(ep)
		if inner == nil {
			return ep
		}
		ep = inner
	}
}

// Noop is an endpoint that does nothing and returns a nil error.
type Noop[Req any, Resp any] struct{}

func (Noop[Req, Resp]) Invoke(context.Context, Req) (Resp, error) {
	var resp Resp
	return resp, nil
}

func (Noop[Req, Resp]) Info() Info {
	return Info{Name: "Noop", QualifiedName: "endpoint.Noop"}
}
