package decorator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func suffix(s string) Decorator[func() string] {
	return DecoratorFunc[func() string](func(next func() string) func() string {
		return func() string { return next() + s }
	})
}

func TestChain(t *testing.T) {
	base := func() string { return "x" }
	got := Chain(base, suffix("a"), nil, suffix("b"))
	assert.Equal(t, "xba", got())
}

func TestChainEmpty(t *testing.T) {
	got := Chain(42)
	assert.Equal(t, 42, got)
}

func TestCompose(t *testing.T) {
	base := func() string { return "x" }
	d := Compose(suffix("1"), suffix("2"))
	assert.Equal(t, "x21", d.Decorate(base)())
	assert.Equal(t, Chain(base, suffix("1"), suffix("2"))(), d.Decorate(base)())
}
