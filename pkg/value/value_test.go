package value

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/framerail/framerail/pkg/frame"
)

func TestKinds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindString, String("x").Kind())
	assert.Equal(t, KindInt, Int(1).Kind())
	assert.Equal(t, KindFloat, Float(1.5).Kind())
	assert.Equal(t, KindBool, Bool(true).Kind())
	assert.Equal(t, KindBinary, Binary([]byte{1}).Kind())
	assert.Equal(t, KindDecimal, Decimal(decimal.NewFromInt(3)).Kind())
	assert.Equal(t, KindRecord, FromRecord(NewRecord()).Kind())
	assert.Equal(t, KindList, List(Int(1)).Kind())
	assert.Equal(t, KindFrame, Frame(frame.FromSeries(frame.IntSeries("a", 1))).Kind())
}

func TestAsString(t *testing.T) {
	t.Parallel()

	s, err := String("hello").AsString()
	assert.NoError(t, err)
	assert.Equal(t, "hello", s)

	_, err = Int(1).AsString()
	assert.True(t, errors.Is(err, ErrTypeMismatch))
}

func TestAsFrame(t *testing.T) {
	t.Parallel()

	f := frame.FromSeries(frame.IntSeries("a", 1, 2))
	got, err := Frame(f).AsFrame()
	assert.NoError(t, err)
	assert.Same(t, f, got)

	_, err = String("not a frame").AsFrame()
	assert.True(t, errors.Is(err, ErrTypeMismatch))
	assert.Contains(t, err.Error(), "expected dataframe or series")
}

func TestWithTag(t *testing.T) {
	t.Parallel()

	tag := Tag{Origin: "stdin", Line: 3, Column: 7}
	v := String("x").WithTag(tag)

	assert.Equal(t, tag, v.Tag)
	assert.True(t, tag.IsKnown())
	assert.Equal(t, "stdin:3:7", tag.String())
	assert.False(t, UnknownTag().IsKnown())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, Equal(String("a"), String("a")))
	assert.False(t, Equal(String("a"), String("b")))
	assert.False(t, Equal(String("1"), Int(1)))
	assert.True(t, Equal(Binary([]byte{1, 2}), Binary([]byte{1, 2})))
	assert.False(t, Equal(Binary([]byte{1, 2}), Binary([]byte{1})))
	assert.True(t, Equal(
		Decimal(decimal.RequireFromString("1.50")),
		Decimal(decimal.RequireFromString("1.5"))))

	a := List(Int(1), String("x"))
	b := List(Int(1), String("x"))
	assert.True(t, Equal(a, b))

	// tags are diagnostics only
	assert.True(t, Equal(String("a").WithTag(Tag{Origin: "x", Line: 1}), String("a")))
}

func TestEqual_Frames(t *testing.T) {
	t.Parallel()

	a := frame.FromSeries(frame.IntSeries("a", 1, 2))
	b := frame.FromSeries(frame.IntSeries("a", 1, 2))
	c := frame.FromSeries(frame.IntSeries("a", 1, 3))

	assert.True(t, Equal(Frame(a), Frame(b)))
	assert.False(t, Equal(Frame(a), Frame(c)))
}

func TestRecord_Order(t *testing.T) {
	t.Parallel()

	r := NewRecord()
	r.Set("b", Int(1))
	r.Set("a", Int(2))
	r.Set("b", Int(3)) // replace keeps position

	assert.Equal(t, []string{"b", "a"}, r.Keys())
	v, ok := r.Get("b")
	assert.True(t, ok)
	assert.Equal(t, int64(3), v.IntVal())
}

func TestRecord_Equal(t *testing.T) {
	t.Parallel()

	a := RecordOf("x", Int(1), "y", String("s"))
	b := RecordOf("x", Int(1), "y", String("s"))
	assert.True(t, a.Equal(b))

	// same fields, different order
	c := RecordOf("y", String("s"), "x", Int(1))
	assert.False(t, a.Equal(c))
}

func TestRecord_Clone(t *testing.T) {
	t.Parallel()

	a := RecordOf("x", Int(1))
	b := a.Clone()
	b.Set("x", Int(2))

	v, _ := a.Get("x")
	assert.Equal(t, int64(1), v.IntVal())
}

func TestValueString(t *testing.T) {
	t.Parallel()

	r := RecordOf("name", String("ed"), "n", Int(2))
	assert.Equal(t, "{name: ed, n: 2}", FromRecord(r).String())
	assert.Equal(t, "[1, x]", List(Int(1), String("x")).String())
}
