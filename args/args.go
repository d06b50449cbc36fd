// Package args carries positional and keyword arguments of a call in a single
// request value, so one Endpoint can stand for a function of any arity.
package args

import (
	"strings"

	"github.com/go-leo/gox/slicex"
)

// Keyword is a named argument.
type Keyword struct {
	Name  string
	Value any
}

// Args is an immutable argument list. Keyword arguments keep insertion order;
// setting an existing name replaces its value in place.
type Args struct {
	positional []any
	keywords   []Keyword
}

// New returns Args holding the given positional arguments.
func New(positional ...any) Args {
	return Args{positional: append([]any(nil), positional...)}
}

// With returns a copy of a with the keyword argument name set to value.
func (a Args) With(name string, value any) Args {
	keywords := make([]Keyword, len(a.keywords), len(a.keywords)+1)
	copy(keywords, a.keywords)
	for i := range keywords {
		if keywords[i].Name == name {
			keywords[i].Value = value
			return Args{positional: a.positional, keywords: keywords}
		}
	}
	return Args{positional: a.positional, keywords: append(keywords, Keyword{Name: name, Value: value})}
}

// Len returns the number of positional arguments.
func (a Args) Len() int {
	return len(a.positional)
}

// At returns the i-th positional argument, or nil if out of range.
func (a Args) At(i int) any {
	if i < 0 || i >= len(a.positional) {
		return nil
	}
	return a.positional[i]
}

// Positional returns a copy of the positional arguments.
func (a Args) Positional() []any {
	return append([]any(nil), a.positional...)
}

// Get returns the keyword argument called name.
func (a Args) Get(name string) (any, bool) {
	for _, kw := range a.keywords {
		if kw.Name == name {
			return kw.Value, true
		}
	}
	return nil, false
}

// Keywords returns a copy of the keyword arguments in insertion order.
func (a Args) Keywords() []Keyword {
	return append([]Keyword(nil), a.keywords...)
}

// Signature renders positional arguments followed by name=value pairs,
// all joined by ", ". format renders each value.
func (a Args) Signature(format func(any) string) string {
	parts := slicex.Map[[]any, []string](a.positional, func(_ int, v any) string {
		return format(v)
	})
	for _, kw := range a.keywords {
		parts = append(parts, kw.Name+"="+format(kw.Value))
	}
	return strings.Join(parts, ", ")
}

// Signer is implemented by requests that know how to render themselves as an
// argument list.
type Signer interface {
	Signature(format func(any) string) string
}

var _ Signer = Args{}
