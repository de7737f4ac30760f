package frame

import (
	"fmt"

	"github.com/apache/arrow/go/v7/arrow"
	"github.com/apache/arrow/go/v7/arrow/array"
	"github.com/apache/arrow/go/v7/arrow/memory"
)

// Take builds a new frame where output row i equals input row indices[i],
// for every column. indices must already be a u32 series (see CastToIndex);
// out-of-range indices are reported as errors, never clamped.
func Take(f *Frame, indices *Series) (*Frame, error) {
	idx, ok := indices.arr.(*array.Uint32)
	if !ok {
		return nil, fmt.Errorf("take requires a u32 index series, got %s", indices.DataType())
	}

	cols := make([]*Series, len(f.cols))
	for i, col := range f.cols {
		arr, err := takeArray(col.arr, idx)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Name(), err)
		}
		cols[i] = NewSeries(col.Name(), arr)
	}
	return &Frame{cols: cols}, nil
}

func takeArray(a arrow.Array, idx *array.Uint32) (arrow.Array, error) {
	rows := make([]int, idx.Len())
	for i := 0; i < idx.Len(); i++ {
		if idx.IsNull(i) {
			return nil, fmt.Errorf("null index at row %d", i)
		}
		j := int(idx.Value(i))
		if j >= a.Len() {
			return nil, fmt.Errorf("index %d out of bounds for series of length %d", j, a.Len())
		}
		rows[i] = j
	}

	switch src := a.(type) {
	case *array.Int32:
		b := array.NewInt32Builder(memory.DefaultAllocator)
		defer b.Release()
		for _, j := range rows {
			if src.IsNull(j) {
				b.AppendNull()
				continue
			}
			b.Append(src.Value(j))
		}
		return b.NewArray(), nil
	case *array.Int64:
		b := array.NewInt64Builder(memory.DefaultAllocator)
		defer b.Release()
		for _, j := range rows {
			if src.IsNull(j) {
				b.AppendNull()
				continue
			}
			b.Append(src.Value(j))
		}
		return b.NewArray(), nil
	case *array.Uint32:
		b := array.NewUint32Builder(memory.DefaultAllocator)
		defer b.Release()
		for _, j := range rows {
			if src.IsNull(j) {
				b.AppendNull()
				continue
			}
			b.Append(src.Value(j))
		}
		return b.NewArray(), nil
	case *array.Uint64:
		b := array.NewUint64Builder(memory.DefaultAllocator)
		defer b.Release()
		for _, j := range rows {
			if src.IsNull(j) {
				b.AppendNull()
				continue
			}
			b.Append(src.Value(j))
		}
		return b.NewArray(), nil
	case *array.Float64:
		b := array.NewFloat64Builder(memory.DefaultAllocator)
		defer b.Release()
		for _, j := range rows {
			if src.IsNull(j) {
				b.AppendNull()
				continue
			}
			b.Append(src.Value(j))
		}
		return b.NewArray(), nil
	case *array.String:
		b := array.NewStringBuilder(memory.DefaultAllocator)
		defer b.Release()
		for _, j := range rows {
			if src.IsNull(j) {
				b.AppendNull()
				continue
			}
			b.Append(src.Value(j))
		}
		return b.NewArray(), nil
	case *array.Boolean:
		b := array.NewBooleanBuilder(memory.DefaultAllocator)
		defer b.Release()
		for _, j := range rows {
			if src.IsNull(j) {
				b.AppendNull()
				continue
			}
			b.Append(src.Value(j))
		}
		return b.NewArray(), nil
	}
	return nil, fmt.Errorf("take is not implemented for %s series", a.DataType())
}
