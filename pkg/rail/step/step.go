package step

import (
	"context"
	"errors"

	"github.com/framerail/framerail/pkg/rail"
)

func Succeed[T any](input T) rail.Result[T] {
	return rail.Success(input)
}

func Fail[T any](err error) rail.Result[T] {
	return rail.Fail[T](err)
}

func Cancel[T any](err error) rail.Result[T] {
	return rail.Cancel[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rail.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rail.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rail.Result[T] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(ctx, input.Value()); isValid {
			return rail.Success(input.Value())
		} else {
			return rail.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func Switch[In any, Out any](ctx context.Context,
	input rail.Result[In],
	onSuccess func(ctx context.Context, r In) rail.Result[Out]) rail.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	if input.IsCancel() {
		return rail.Cancel[Out](input.Err())
	}
	return rail.Fail[Out](input.Err())
}

func Map[In any, Out any](ctx context.Context,
	input rail.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rail.Result[Out] {

	if input.IsSuccess() {
		return rail.Success(onSuccess(ctx, input.Value()))
	}
	if input.IsCancel() {
		return rail.Cancel[Out](input.Err())
	}
	return rail.Fail[Out](input.Err())
}

func Tee[T any](ctx context.Context,
	input rail.Result[T],
	onSuccess func(ctx context.Context, r rail.Result[T])) rail.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

// Try runs a (value, error) function on success and converts the error
// branch to a failure, or to a cancellation when the error is a context
// cancellation.
func Try[In any, Out any](ctx context.Context, input rail.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rail.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			if rail.IsCancellationError(err) {
				return rail.Cancel[Out](err)
			}
			return rail.Fail[Out](err)
		}

		return rail.Success(out)
	}

	if input.IsCancel() {
		return rail.Cancel[Out](input.Err())
	}
	return rail.Fail[Out](input.Err())
}

func FailOnError[T any](ctx context.Context, input rail.Result[T],
	maybeErr func(ctx context.Context, in T) error) rail.Result[T] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Value())
		if err != nil {
			return rail.Fail[T](err)
		}
		return input
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rail.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}

	if input.IsCancel() {
		return onCancel(ctx, input.Err())
	}
	return onError(ctx, input.Err())
}
