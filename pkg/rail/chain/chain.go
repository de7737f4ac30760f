package chain

import (
	"context"

	"github.com/framerail/framerail/pkg/rail"
	"github.com/framerail/framerail/pkg/rail/step"
)

// Chain wraps a rail.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx context.Context
	res rail.Result[T]
}

// Start creates a new chain from a rail.Result
func Start[T any](ctx context.Context, r rail.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rail.Success(v))
}

// Result returns the underlying rail.Result
func (c Chain[T]) Result() rail.Result[T] {
	return c.res
}

// Then composes functions that already return rail.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rail.Result[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// ThenTry composes functions that return (T, error)
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: step.Try(c.ctx, c.res, try)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: rail.Success(onSuccess(c.ctx, c.res.Value()))}
}

// Validate fails the chain when the predicate rejects the value
func (c Chain[T]) Validate(validate func(ctx context.Context, t T) (valid bool, errMsg string)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: step.AndValidate(c.ctx, c.res, validate)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {

	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to step.Finally
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
	onCancel func(context.Context, error) T,
) T {
	return step.Finally(c.ctx, c.res, onSuccess, onFailure, onCancel)
}

// Then chains a type-changing function that returns rail.Result[U].
// Methods cannot introduce new type parameters, hence the free functions.
func Then[T, U any](c Chain[T], onSuccess func(context.Context, T) rail.Result[U]) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: step.Switch(c.ctx, c.res, onSuccess),
	}
}

// ThenTry chains a type-changing function that returns (U, error)
func ThenTry[T, U any](c Chain[T], tryOnSuccess func(context.Context, T) (U, error)) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: step.Try(c.ctx, c.res, tryOnSuccess),
	}
}

// Map chains a pure type-changing transformation
func Map[T, U any](c Chain[T], onSuccess func(context.Context, T) U) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: step.Map(c.ctx, c.res, onSuccess),
	}
}
