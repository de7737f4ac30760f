package frame

import (
	"fmt"
	"math"

	"github.com/apache/arrow/go/v7/arrow"
	"github.com/apache/arrow/go/v7/arrow/array"
	"github.com/apache/arrow/go/v7/arrow/memory"
)

// IsIntegerType reports whether dt belongs to the integer family accepted
// as index input: signed or unsigned, 32 or 64 bit.
func IsIntegerType(dt arrow.DataType) bool {
	switch dt.ID() {
	case arrow.INT32, arrow.INT64, arrow.UINT32, arrow.UINT64:
		return true
	}
	return false
}

// CastToIndex converts an integer-family series to the uint32 index type
// used by Take. Negative values, values above MaxUint32 and null entries
// are conversion errors naming the offending row.
func CastToIndex(s *Series) (*Series, error) {
	switch src := s.arr.(type) {
	case *array.Uint32:
		return NewSeries(s.name, src), nil
	case *array.Int32:
		b := array.NewUint32Builder(memory.DefaultAllocator)
		defer b.Release()
		for i := 0; i < src.Len(); i++ {
			if src.IsNull(i) {
				return nil, fmt.Errorf("null index at row %d", i)
			}
			v := src.Value(i)
			if v < 0 {
				return nil, fmt.Errorf("cannot use negative index %d at row %d", v, i)
			}
			b.Append(uint32(v))
		}
		return NewSeries(s.name, b.NewArray()), nil
	case *array.Int64:
		b := array.NewUint32Builder(memory.DefaultAllocator)
		defer b.Release()
		for i := 0; i < src.Len(); i++ {
			if src.IsNull(i) {
				return nil, fmt.Errorf("null index at row %d", i)
			}
			v := src.Value(i)
			if v < 0 {
				return nil, fmt.Errorf("cannot use negative index %d at row %d", v, i)
			}
			if v > math.MaxUint32 {
				return nil, fmt.Errorf("index %d at row %d exceeds the u32 range", v, i)
			}
			b.Append(uint32(v))
		}
		return NewSeries(s.name, b.NewArray()), nil
	case *array.Uint64:
		b := array.NewUint32Builder(memory.DefaultAllocator)
		defer b.Release()
		for i := 0; i < src.Len(); i++ {
			if src.IsNull(i) {
				return nil, fmt.Errorf("null index at row %d", i)
			}
			v := src.Value(i)
			if v > math.MaxUint32 {
				return nil, fmt.Errorf("index %d at row %d exceeds the u32 range", v, i)
			}
			b.Append(uint32(v))
		}
		return NewSeries(s.name, b.NewArray()), nil
	}
	return nil, fmt.Errorf("cannot cast %s series to the u32 index type", s.DataType())
}
