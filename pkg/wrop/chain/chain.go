package chain

import (
	"github.com/ib-77/wrop/pkg/wrop"
	"github.com/ib-77/wrop/pkg/wrop/solo"
)

// Chain wraps a wrop.Result to enable fluent chaining. A failure
// short-circuits every later step; a warning rides along through
// value-only steps.
type Chain[T, W any] struct {
	result wrop.Result[T, W]
}

// Start creates a new chain from a wrop.Result
func Start[T, W any](result wrop.Result[T, W]) *Chain[T, W] {
	return &Chain[T, W]{
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, W any](value T) *Chain[T, W] {
	return &Chain[T, W]{
		result: wrop.Success[T, W](value),
	}
}

// Result returns the underlying wrop.Result
func (c *Chain[T, W]) Result() wrop.Result[T, W] {
	return c.result
}

// Then chains a function over the continuation payload; the step decides
// what happens to an incoming warning
func Then[T, U, W any](c *Chain[T, W],
	onSuccess func(m wrop.MaybeWarn[T, W]) wrop.Result[U, W]) *Chain[U, W] {
	return &Chain[U, W]{
		result: solo.AndThen(c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error); an incoming warning
// stays attached to the new value
func ThenTry[T, U, W any](c *Chain[T, W],
	tryOnSuccess func(t T) (U, error)) *Chain[U, W] {
	return &Chain[U, W]{
		result: solo.Try(c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation of the value, preserving any warning
func Map[T, U, W any](c *Chain[T, W], onSuccess func(t T) U) *Chain[U, W] {
	return &Chain[U, W]{
		result: solo.MapVal(c.result, onSuccess),
	}
}

// Validate fails the chain when the predicate rejects the current value
func (c *Chain[T, W]) Validate(
	validate func(t T) (valid bool, errMsg string)) *Chain[T, W] {
	return &Chain[T, W]{
		result: solo.AndValidate(c.result, validate),
	}
}

// Advise attaches a warning when the advisor rejects the current value,
// without stopping the chain
func (c *Chain[T, W]) Advise(
	advise func(t T) (ok bool, warn W)) *Chain[T, W] {
	return &Chain[T, W]{
		result: solo.Advise(c.result, advise),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, W]) Ensure(onSuccess func(t T)) *Chain[T, W] {
	return &Chain[T, W]{
		result: solo.Tee(c.result,
			func(result wrop.Result[T, W]) {
				onSuccess(result.Result())
			}),
	}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U, W any](c *Chain[T, W],
	onSuccess func(t T) U,
	onWarn func(t T, warn W) U,
	onError func(err error) U) U {
	return solo.Finally(c.result, onSuccess, onWarn, onError)
}
