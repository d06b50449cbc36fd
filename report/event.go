package report

import (
	"fmt"
	"time"
)

// Kind tells which decorator produced an Event.
type Kind int

const (
	// KindFinished is emitted by the timer after a successful call.
	KindFinished Kind = iota + 1
	// KindCalling is emitted by the tracer before a call.
	KindCalling
	// KindReturns is emitted by the tracer after a successful call.
	KindReturns
	// KindCount is emitted by the call counter on every call.
	KindCount
)

func (k Kind) String() string {
	switch k {
	case KindFinished:
		return "finished"
	case KindCalling:
		return "calling"
	case KindReturns:
		return "returns"
	case KindCount:
		return "count"
	default:
		return "unknown"
	}
}

// Event is one side-channel report. Message is the human-readable line,
// the other fields carry the same data for structured sinks.
type Event struct {
	Kind    Kind
	Name    string
	Message string
	Elapsed time.Duration
	Count   int64
	Args    string
	Result  string
}

// Finished reports the elapsed time of a successful call.
func Finished(name string, elapsed time.Duration) Event {
	return Event{
		Kind:    KindFinished,
		Name:    name,
		Message: fmt.Sprintf("Finished '%s' in %.4f seconds", name, elapsed.Seconds()),
		Elapsed: elapsed,
	}
}

// Calling reports a call about to happen with its rendered arguments.
func Calling(name string, args string) Event {
	return Event{
		Kind:    KindCalling,
		Name:    name,
		Message: fmt.Sprintf("Calling %s(%s)", name, args),
		Args:    args,
	}
}

// Returns reports the rendered result of a successful call.
func Returns(name string, result string) Event {
	return Event{
		Kind:    KindReturns,
		Name:    name,
		Message: fmt.Sprintf("%s() returns %s", name, result),
		Result:  result,
	}
}

// Count reports the n-th call of an endpoint.
func Count(name string, n int64) Event {
	return Event{
		Kind:    KindCount,
		Name:    name,
		Message: fmt.Sprintf("Call %d of %s", n, name),
		Count:   n,
	}
}
