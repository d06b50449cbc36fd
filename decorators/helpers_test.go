package decorators

import (
	"context"
	"errors"

	"github.com/go-leo/decorators/args"
	"github.com/go-leo/decorators/endpoint"
)

var errBoom = errors.New("boom")

// spy records every request and answers with a running call number.
type spy struct {
	requests []args.Args
	failAt   int
}

func (s *spy) endpoint() *endpoint.Func[args.Args, int] {
	return endpoint.New[args.Args, int](s.call, endpoint.Name("spy"))
}

func (s *spy) call(_ context.Context, a args.Args) (int, error) {
	s.requests = append(s.requests, a)
	if len(s.requests) == s.failAt {
		return -1, errBoom
	}
	return len(s.requests), nil
}

func greet(_ context.Context, a args.Args) (string, error) {
	greeting := "Hello"
	if v, ok := a.Get("greeting"); ok {
		greeting = v.(string)
	}
	return greeting + " " + a.At(0).(string), nil
}
