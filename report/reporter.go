// Package report is the side channel decorators write their diagnostics to.
package report

import (
	"context"
	"io"
	"os"
	"sync"
)

// Reporter receives side-channel events. Implementations must not fail the call
// that produced the event.
type Reporter interface {
	Report(ctx context.Context, e Event)
}

// The ReporterFunc type is an adapter to allow the use of ordinary functions as Reporter.
type ReporterFunc func(ctx context.Context, e Event)

// Report calls f(ctx, e).
func (f ReporterFunc) Report(ctx context.Context, e Event) {
	f(ctx, e)
}

type writer struct {
	mu sync.Mutex
	w  io.Writer
}

// Writer returns a Reporter printing each event's Message as one line to w.
// Write errors are dropped.
func Writer(w io.Writer) Reporter {
	return &writer{w: w}
}

func (r *writer) Report(_ context.Context, e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w := r.w
	if w == nil {
		w = os.Stdout
	}
	_, _ = io.WriteString(w, e.Message+"\n")
}

// stdout looks os.Stdout up on every report.
var stdout = &writer{}

// Stdout returns the Reporter writing to standard output.
func Stdout() Reporter {
	return stdout
}

// Discard drops every event.
var Discard Reporter = ReporterFunc(func(context.Context, Event) {})

type tee []Reporter

// Tee fans every event out to all reporters, in order. Nil reporters are skipped.
func Tee(reporters ...Reporter) Reporter {
	t := make(tee, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			t = append(t, r)
		}
	}
	return t
}

func (t tee) Report(ctx context.Context, e Event) {
	for _, r := range t {
		r.Report(ctx, e)
	}
}

// Recorder keeps every event in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Report appends e.
func (r *Recorder) Report(_ context.Context, e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Messages returns the recorded messages in order.
func (r *Recorder) Messages() []string {
	events := r.Events()
	msgs := make([]string, 0, len(events))
	for _, e := range events {
		msgs = append(msgs, e.Message)
	}
	return msgs
}
