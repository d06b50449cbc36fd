// Package decorators provides endpoint decorators that add one cross-cutting
// behavior around a call: timing, tracing, delay, repetition, call counting,
// and registration as a plugin.
//
// Every decorator keeps the wrapped endpoint's Info, passes the request and the
// response through untouched, and returns the wrapped endpoint's error as is.
// Side-channel output goes to a report.Reporter, standard output by default:
//
//	greet := decorators.Trace(endpoint.New(greet))
//	greet.Invoke(ctx, args.New("Bob").With("greeting", "Hi"))
//	// Calling greet("Bob", greeting="Hi")
//	// greet() returns "Hi Bob"
//
// Decorators compose by nesting, or through endpoint.Chain with Use.
package decorators
