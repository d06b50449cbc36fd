package decorator

// Decorator wraps a value of type T with another value of the same type,
// adding behavior around it while keeping its shape.
type Decorator[T any] interface {
	// Decorate wraps obj, adding one behavior.
	Decorate(obj T) T
}

// The DecoratorFunc type is an adapter to allow the use of ordinary functions as Decorator.
type DecoratorFunc[T any] func(obj T) T

// Decorate calls f(obj).
func (f DecoratorFunc[T]) Decorate(obj T) T {
	return f(obj)
}

// Chain decorates obj with all decorators. The first decorator is the outermost,
// so Chain(obj, a, b) is a.Decorate(b.Decorate(obj)). Nil decorators are skipped.
func Chain[T any](obj T, decorators ...Decorator[T]) T {
	for i := len(decorators) - 1; i >= 0; i-- {
		if decorators[i] == nil {
			continue
		}
		obj = decorators[i].Decorate(obj)
	}
	return obj
}

// Compose folds decorators into one, with the same nesting order as Chain.
func Compose[T any](decorators ...Decorator[T]) Decorator[T] {
	return DecoratorFunc[T](func(obj T) T {
		return Chain(obj, decorators...)
	})
}
