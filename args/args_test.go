package args

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func goSyntax(v any) string { return fmt.Sprintf("%#v", v) }

func TestSignature(t *testing.T) {
	a := New(1, "two").With("b", 2).With("c", true)
	assert.Equal(t, `1, "two", b=2, c=true`, a.Signature(goSyntax))
}

func TestSignatureEmpty(t *testing.T) {
	assert.Equal(t, "", Args{}.Signature(goSyntax))
	assert.Equal(t, "", New().Signature(goSyntax))
}

func TestWithReplacesInPlace(t *testing.T) {
	a := New().With("a", 1).With("b", 2)
	b := a.With("a", 3)

	assert.Equal(t, "a=1, b=2", a.Signature(goSyntax))
	assert.Equal(t, "a=3, b=2", b.Signature(goSyntax))

	v, ok := b.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = b.Get("missing")
	assert.False(t, ok)
}

func TestPositional(t *testing.T) {
	src := []any{1, 2}
	a := New(src...)
	src[0] = 100

	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 1, a.At(0))
	assert.Nil(t, a.At(2))
	assert.Nil(t, a.At(-1))

	p := a.Positional()
	p[1] = 200
	assert.Equal(t, 2, a.At(1))
}

func TestKeywordsCopy(t *testing.T) {
	a := New().With("x", 1)
	kws := a.Keywords()
	kws[0].Value = 2
	v, _ := a.Get("x")
	assert.Equal(t, 1, v)
}
