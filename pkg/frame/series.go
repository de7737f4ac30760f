package frame

import (
	"fmt"

	"github.com/apache/arrow/go/v7/arrow"
	"github.com/apache/arrow/go/v7/arrow/array"
	"github.com/apache/arrow/go/v7/arrow/memory"
)

// Series is a named, immutable Arrow array. The array is reference-counted
// by Arrow internally; a Series never mutates it, every transformation
// builds a new array.
type Series struct {
	name string
	arr  arrow.Array
}

func NewSeries(name string, arr arrow.Array) *Series {
	return &Series{name: name, arr: arr}
}

func (s *Series) Name() string {
	return s.name
}

func (s *Series) Len() int {
	return s.arr.Len()
}

func (s *Series) DataType() arrow.DataType {
	return s.arr.DataType()
}

func (s *Series) Array() arrow.Array {
	return s.arr
}

// ValueAt returns the element at row i as a Go value, with ok=false for a
// null cell.
func (s *Series) ValueAt(i int) (any, bool) {
	if s.arr.IsNull(i) {
		return nil, false
	}
	switch a := s.arr.(type) {
	case *array.Int32:
		return a.Value(i), true
	case *array.Int64:
		return a.Value(i), true
	case *array.Uint32:
		return a.Value(i), true
	case *array.Uint64:
		return a.Value(i), true
	case *array.Float64:
		return a.Value(i), true
	case *array.String:
		return a.Value(i), true
	case *array.Boolean:
		return a.Value(i), true
	}
	return nil, false
}

func IntSeries(name string, vals ...int64) *Series {
	b := array.NewInt64Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return NewSeries(name, b.NewArray())
}

func Int32Series(name string, vals ...int32) *Series {
	b := array.NewInt32Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return NewSeries(name, b.NewArray())
}

func Uint32Series(name string, vals ...uint32) *Series {
	b := array.NewUint32Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return NewSeries(name, b.NewArray())
}

func Uint64Series(name string, vals ...uint64) *Series {
	b := array.NewUint64Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return NewSeries(name, b.NewArray())
}

func Float64Series(name string, vals ...float64) *Series {
	b := array.NewFloat64Builder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return NewSeries(name, b.NewArray())
}

func StringSeries(name string, vals ...string) *Series {
	b := array.NewStringBuilder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return NewSeries(name, b.NewArray())
}

func BoolSeries(name string, vals ...bool) *Series {
	b := array.NewBooleanBuilder(memory.DefaultAllocator)
	defer b.Release()
	b.AppendValues(vals, nil)
	return NewSeries(name, b.NewArray())
}

func (s *Series) String() string {
	return fmt.Sprintf("%s<%s>[%d]", s.name, s.DataType(), s.Len())
}
