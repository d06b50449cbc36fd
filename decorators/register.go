package decorators

import (
	"fmt"

	"github.com/go-leo/decorators/endpoint"
)

// Register stores ep in the plugin registry under its name and returns ep
// unchanged. A previous plugin with the same name is replaced.
// Register panics if ep is nil or has no name.
func Register[Req any, Resp any](ep endpoint.Endpoint[Req, Resp], opts ...Option) endpoint.Endpoint[Req, Resp] {
	o := newOptions(opts...)
	var p endpoint.Named
	if ep != nil {
		p = ep
	}
	if err := o.Registry.Register(p); err != nil {
		panic(fmt.Errorf("decorators: register: %w", err))
	}
	return ep
}
