package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framerail/framerail/pkg/frame"
	"github.com/framerail/framerail/pkg/stream"
	"github.com/framerail/framerail/pkg/value"
)

func takeCall(ctx context.Context, indices value.Value, input ...value.Value) *Call {
	return &Call{
		Tag:   value.Tag{Origin: "take-test", Line: 1, Column: 1},
		Args:  []value.Value{indices},
		Input: stream.FromValues(ctx, input...),
	}
}

func indicesFrame(vals ...int64) value.Value {
	return value.Frame(frame.FromSeries(frame.IntSeries("idx", vals...)))
}

func TestTake_ExamplesWorkAsExpected(t *testing.T) {
	t.Parallel()

	assert.NoError(t, RunExamples(context.Background(), NewTake()))
}

func TestTake_SelectsRows(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	df := mustFrame(frame.IntSeries("a", 4, 5, 4), frame.IntSeries("b", 1, 2, 3))

	out, err := NewTake().Run(ctx, takeCall(ctx, indicesFrame(0, 2), value.Frame(df)))
	require.NoError(t, err)

	got := out.Collect(ctx)
	require.Len(t, got, 1)
	require.True(t, got[0].IsSuccess())

	want := mustFrame(frame.IntSeries("a", 4, 4), frame.IntSeries("b", 1, 3))
	assert.True(t, value.Equal(got[0].Value(), value.Frame(want)))
	assert.Equal(t, "take-test", got[0].Value().Tag.Origin)
}

func TestTake_AcceptsEveryIntegerFamily(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	df := mustFrame(frame.IntSeries("a", 10, 20, 30))

	for _, idx := range []*frame.Series{
		frame.IntSeries("idx", 1),
		frame.Int32Series("idx", 1),
		frame.Uint32Series("idx", 1),
		frame.Uint64Series("idx", 1),
	} {
		out, err := NewTake().Run(ctx,
			takeCall(ctx, value.Frame(frame.FromSeries(idx)), value.Frame(df)))
		require.NoError(t, err, idx.DataType().Name())

		got := out.Collect(ctx)
		require.Len(t, got, 1)
		require.True(t, got[0].IsSuccess())
		assert.Equal(t, []any{int64(20)}, got[0].Value().FrameVal().Row(0))
	}
}

func TestTake_FloatIndicesAreTypeMismatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	df := mustFrame(frame.IntSeries("a", 1, 2))
	floats := value.Frame(frame.FromSeries(frame.Float64Series("idx", 0, 1)))

	_, err := NewTake().Run(ctx, takeCall(ctx, floats, value.Frame(df)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, value.ErrTypeMismatch))
	assert.Contains(t, err.Error(), "integer-typed series")
}

func TestTake_StringIndicesAreTypeMismatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	df := mustFrame(frame.IntSeries("a", 1, 2))
	strs := value.Frame(frame.FromSeries(frame.StringSeries("idx", "0")))

	_, err := NewTake().Run(ctx, takeCall(ctx, strs, value.Frame(df)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, value.ErrTypeMismatch))
}

func TestTake_NonFrameIndicesAreTypeMismatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := NewTake().Run(ctx, takeCall(ctx, value.String("0,2")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, value.ErrTypeMismatch))
}

func TestTake_MultiColumnIndicesAreTypeMismatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	two := value.Frame(mustFrame(frame.IntSeries("a", 0), frame.IntSeries("b", 1)))

	_, err := NewTake().Run(ctx, takeCall(ctx, two))
	require.Error(t, err)
	assert.True(t, errors.Is(err, value.ErrTypeMismatch))
	assert.Contains(t, err.Error(), "series")
}

func TestTake_NegativeIndicesAreCastError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := NewTake().Run(ctx, takeCall(ctx, indicesFrame(0, -1)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, value.ErrCast))
	assert.Contains(t, err.Error(), "negative index -1")
}

func TestTake_ExhaustedStreamIsEmptyStream(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := NewTake().Run(ctx, takeCall(ctx, indicesFrame(0)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, value.ErrEmptyStream))
}

func TestTake_NonFrameSubjectIsTypeMismatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := NewTake().Run(ctx, takeCall(ctx, indicesFrame(0), value.String("not a frame")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, value.ErrTypeMismatch))
	assert.Contains(t, err.Error(), "expected dataframe or series")
}

func TestTake_OutOfRangeComesFromEngine(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	df := mustFrame(frame.IntSeries("a", 1, 2))

	_, err := NewTake().Run(ctx, takeCall(ctx, indicesFrame(9), value.Frame(df)))
	require.Error(t, err)
	// bounds are the engine's concern; its diagnostic passes through untouched
	assert.False(t, errors.Is(err, value.ErrCast))
	assert.Contains(t, err.Error(), "index 9 out of bounds")
}

func TestTake_MissingArgument(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	call := &Call{Tag: value.UnknownTag(), Input: stream.FromValues(ctx)}

	_, err := NewTake().Run(ctx, call)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required positional argument")
}

func TestTake_Signature(t *testing.T) {
	t.Parallel()

	sig := NewTake().Signature()
	assert.Equal(t, "take", sig.Name)
	require.Len(t, sig.Positional, 1)
	assert.Equal(t, "indices", sig.Positional[0].Name)
	assert.Nil(t, sig.Rest)
}
