package frame

import (
	"fmt"
	"strings"
)

// Frame is an ordered collection of equal-length series: a columnar table,
// or a single-column table standing in for a series. Frames are immutable
// once built.
type Frame struct {
	cols []*Series
}

func New(cols ...*Series) (*Frame, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("a frame needs at least one column")
	}
	seen := make(map[string]struct{}, len(cols))
	n := cols[0].Len()
	for _, c := range cols {
		if c.Len() != n {
			return nil, fmt.Errorf("column %q has length %d, want %d", c.Name(), c.Len(), n)
		}
		if _, ok := seen[c.Name()]; ok {
			return nil, fmt.Errorf("duplicate column name %q", c.Name())
		}
		seen[c.Name()] = struct{}{}
	}
	return &Frame{cols: cols}, nil
}

// FromSeries wraps a single series as a one-column frame.
func FromSeries(s *Series) *Frame {
	return &Frame{cols: []*Series{s}}
}

func (f *Frame) NumRows() int {
	return f.cols[0].Len()
}

func (f *Frame) NumCols() int {
	return len(f.cols)
}

func (f *Frame) Columns() []*Series {
	out := make([]*Series, len(f.cols))
	copy(out, f.cols)
	return out
}

func (f *Frame) Column(name string) (*Series, bool) {
	for _, c := range f.cols {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// AsSeries extracts the frame's single column. Multi-column frames do not
// reduce to a series.
func (f *Frame) AsSeries() (*Series, error) {
	if len(f.cols) != 1 {
		return nil, fmt.Errorf("frame has %d columns, a series must have exactly one", len(f.cols))
	}
	return f.cols[0], nil
}

// Row returns row i across all columns; null cells come back as nil.
func (f *Frame) Row(i int) []any {
	out := make([]any, len(f.cols))
	for c, col := range f.cols {
		v, ok := col.ValueAt(i)
		if !ok {
			out[c] = nil
			continue
		}
		out[c] = v
	}
	return out
}

// Equal reports structural equality: same column names, dtypes, lengths and
// cell values in order.
func Equal(a, b *Frame) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.cols) != len(b.cols) || a.NumRows() != b.NumRows() {
		return false
	}
	for i := range a.cols {
		ac, bc := a.cols[i], b.cols[i]
		if ac.Name() != bc.Name() || ac.DataType().ID() != bc.DataType().ID() {
			return false
		}
		for r := 0; r < ac.Len(); r++ {
			av, aok := ac.ValueAt(r)
			bv, bok := bc.ValueAt(r)
			if aok != bok || av != bv {
				return false
			}
		}
	}
	return true
}

func (f *Frame) String() string {
	var sb strings.Builder
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name()
	}
	fmt.Fprintf(&sb, "[%s]", strings.Join(names, " "))
	for r := 0; r < f.NumRows(); r++ {
		cells := make([]string, len(f.cols))
		for c := range f.cols {
			v, ok := f.cols[c].ValueAt(r)
			if !ok {
				cells[c] = "null"
				continue
			}
			cells[c] = fmt.Sprint(v)
		}
		fmt.Fprintf(&sb, " [%s]", strings.Join(cells, " "))
	}
	return sb.String()
}
