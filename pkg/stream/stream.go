package stream

import (
	"context"
	"sync"

	"github.com/framerail/framerail/pkg/rail"
	"github.com/framerail/framerail/pkg/value"
)

// Input is the upstream contract: a pull-based sequence of values. Next
// blocks until a value is handed over, the stream closes (end-of-stream,
// not an error by itself), or the context is done.
type Input struct {
	ch <-chan value.Value
}

func NewInput(ch <-chan value.Value) *Input {
	return &Input{ch: ch}
}

func (in *Input) Next(ctx context.Context) (value.Value, bool) {
	select {
	case v, ok := <-in.ch:
		return v, ok
	case <-ctx.Done():
		return value.Value{}, false
	}
}

// FromValues feeds the given values through a goroutine-backed source, one
// item per handoff.
func FromValues(ctx context.Context, vs ...value.Value) *Input {
	ch := make(chan value.Value, BufferSize(ctx, 0))

	go func() {
		defer close(ch)

		for _, v := range vs {
			select {
			case ch <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return NewInput(ch)
}

// Output is the downstream contract: a sequence of results, so per-item
// failures ride the stream instead of aborting the producer.
type Output struct {
	ch <-chan rail.Result[value.Value]
}

func NewOutput(ch <-chan rail.Result[value.Value]) *Output {
	return &Output{ch: ch}
}

func (o *Output) Chan() <-chan rail.Result[value.Value] {
	return o.ch
}

// One emits a single successful value and closes.
func One(ctx context.Context, v value.Value) *Output {
	return fromResults(ctx, rail.Success(v))
}

// FailWith emits a single failure and closes.
func FailWith(ctx context.Context, err error) *Output {
	return fromResults(ctx, rail.Fail[value.Value](err))
}

func fromResults(ctx context.Context, rs ...rail.Result[value.Value]) *Output {
	ch := make(chan rail.Result[value.Value], BufferSize(ctx, 0))

	go func() {
		defer close(ch)

		for _, r := range rs {
			select {
			case ch <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return NewOutput(ch)
}

// MapInput lazily transforms every upstream value: each value is pulled,
// transformed and pushed one at a time, so downstream backpressure reaches
// the upstream unchanged.
func MapInput(ctx context.Context, in *Input,
	f func(ctx context.Context, v value.Value) rail.Result[value.Value]) *Output {

	ch := make(chan rail.Result[value.Value], BufferSize(ctx, 0))

	go func() {
		defer close(ch)

		for {
			v, ok := in.Next(ctx)
			if !ok {
				return
			}
			select {
			case ch <- f(ctx, v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return NewOutput(ch)
}

// Collect drains the output into a slice, stopping early when the context
// is done.
func (o *Output) Collect(ctx context.Context) []rail.Result[value.Value] {
	res := make([]rail.Result[value.Value], 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case r, ok := <-o.ch:
				if !ok {
					return
				}
				res = append(res, r)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}
