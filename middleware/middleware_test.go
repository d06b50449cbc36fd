package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/go-leo/decorators/endpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(name string, trail *[]string) Middleware[int, int] {
	return func(ctx context.Context, req int, info endpoint.Info, invoker Invoker[int, int]) (int, error) {
		*trail = append(*trail, name+">"+info.Name)
		resp, err := invoker(ctx, req)
		*trail = append(*trail, "<"+name)
		return resp, err
	}
}

func double(_ context.Context, n int) (int, error) {
	return n * 2, nil
}

func TestChainOrder(t *testing.T) {
	var trail []string
	mdw := Chain(record("a", &trail), record("b", &trail), record("c", &trail))
	resp, err := mdw(context.Background(), 2, endpoint.Info{Name: "double"}, double)
	require.NoError(t, err)
	assert.Equal(t, 4, resp)
	assert.Equal(t, []string{"a>double", "b>double", "c>double", "<c", "<b", "<a"}, trail)
}

func TestChainEmpty(t *testing.T) {
	assert.Nil(t, Chain[int, int]())
}

func TestDecorate(t *testing.T) {
	var trail []string
	ep := endpoint.New[int, int](double)
	decorated := Decorate(record("a", &trail)).Decorate(ep)

	assert.Equal(t, "double", decorated.Info().Name)
	assert.Same(t, ep, endpoint.Unwrap(decorated))

	resp, err := decorated.Invoke(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, 42, resp)
	assert.Equal(t, []string{"a>double", "<a"}, trail)
}

func TestDecorateNone(t *testing.T) {
	ep := endpoint.New[int, int](double)
	assert.Same(t, ep, Decorate[int, int]().Decorate(ep))
}

func TestDecorateError(t *testing.T) {
	boom := errors.New("boom")
	var trail []string
	ep := endpoint.New[int, int](func(context.Context, int) (int, error) { return 0, boom })
	_, err := Decorate(record("a", &trail)).Decorate(ep).Invoke(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	require.Len(t, trail, 2)
	assert.Equal(t, "<a", trail[1])
}

func TestInvoke(t *testing.T) {
	resp, err := Invoke[int, string](context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "", resp)
}
