package command

import (
	"context"
	"fmt"

	"github.com/framerail/framerail/pkg/frame"
	"github.com/framerail/framerail/pkg/rail"
	"github.com/framerail/framerail/pkg/rail/chain"
	"github.com/framerail/framerail/pkg/stream"
	"github.com/framerail/framerail/pkg/value"
)

// Take selects rows of the upstream frame by an explicit index series:
// output row i equals input row indices[i]. The indices argument must be a
// single-column frame of integer family; it is cast to the u32 index type
// before the engine take runs. Exactly one output value or exactly one
// error, never both.
type Take struct{}

func NewTake() *Take {
	return &Take{}
}

func (t *Take) Name() string {
	return "take"
}

func (t *Take) Usage() string {
	return "Creates a new dataframe using the given indices"
}

func (t *Take) Signature() Signature {
	return Signature{
		Name: "take",
		Positional: []Arg{
			{Name: "indices", Desc: "series of indices used to take data"},
		},
	}
}

func (t *Take) Examples() []Example {
	df := mustFrame(
		frame.IntSeries("a", 4, 5, 4),
		frame.IntSeries("b", 1, 2, 3),
	)
	want := mustFrame(
		frame.IntSeries("a", 4, 4),
		frame.IntSeries("b", 1, 3),
	)
	series := frame.FromSeries(frame.IntSeries("0", 4, 1, 5, 2, 4, 3))
	seriesWant := frame.FromSeries(frame.IntSeries("0", 4, 5))
	indices := frame.FromSeries(frame.IntSeries("idx", 0, 2))

	return []Example{
		{
			Description: "Takes selected rows from a dataframe",
			Pipeline:    "df | take indices",
			Input:       []value.Value{value.Frame(df)},
			Args:        []value.Value{value.Frame(indices)},
			Want:        []value.Value{value.Frame(want)},
		},
		{
			Description: "Takes selected rows from a series",
			Pipeline:    "series | take indices",
			Input:       []value.Value{value.Frame(series)},
			Args:        []value.Value{value.Frame(indices)},
			Want:        []value.Value{value.Frame(seriesWant)},
		},
	}
}

func (t *Take) Run(ctx context.Context, call *Call) (*stream.Output, error) {
	indices, err := call.Req(0)
	if err != nil {
		return nil, err
	}

	res := chain.Then(
		chain.Then(chain.FromValue(ctx, indices), castIndices),
		takeFromInput(call),
	).Result()

	if res.IsFailure() {
		return nil, res.Err()
	}
	return stream.One(ctx, res.Value()), nil
}

// castIndices validates the indices argument shape (frame, single column,
// integer family) and requests the engine cast to the u32 index type.
func castIndices(ctx context.Context, v value.Value) rail.Result[*frame.Series] {
	f, err := v.AsFrame()
	if err != nil {
		return rail.Fail[*frame.Series](err)
	}

	s, err := f.AsSeries()
	if err != nil {
		return rail.Fail[*frame.Series](value.TypeMismatch(v.Tag,
			"can only use a series for the take command", ""))
	}

	if !frame.IsIntegerType(s.DataType()) {
		return rail.Fail[*frame.Series](value.TypeMismatch(v.Tag,
			fmt.Sprintf("series with incorrect type %s", s.DataType()),
			"use an integer-typed series"))
	}

	casted, err := frame.CastToIndex(s)
	if err != nil {
		return rail.Fail[*frame.Series](value.CastError(v.Tag, err))
	}
	return rail.Success(casted)
}

// takeFromInput pulls the subject frame from the upstream stream and
// delegates row selection to the engine. Engine errors (bounds included)
// propagate untouched.
func takeFromInput(call *Call) func(ctx context.Context, idx *frame.Series) rail.Result[value.Value] {
	return func(ctx context.Context, idx *frame.Series) rail.Result[value.Value] {
		subject, ok := call.Input.Next(ctx)
		if !ok {
			return rail.Fail[value.Value](value.EmptyStream(call.Tag))
		}

		df, err := subject.AsFrame()
		if err != nil {
			return rail.Fail[value.Value](err)
		}

		res, err := frame.Take(df, idx)
		if err != nil {
			return rail.Fail[value.Value](err)
		}
		return rail.Success(value.Frame(res).WithTag(call.Tag))
	}
}

func mustFrame(cols ...*frame.Series) *frame.Frame {
	f, err := frame.New(cols...)
	if err != nil {
		panic(err)
	}
	return f
}
