package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/framerail/framerail/pkg/frame"
)

// Tag is a source-location label attached to every value. It is used only
// for diagnostics and never influences how a value is processed.
type Tag struct {
	Origin string
	Line   int
	Column int
}

func UnknownTag() Tag {
	return Tag{}
}

func (t Tag) IsKnown() bool {
	return t.Origin != "" || t.Line > 0
}

func (t Tag) String() string {
	if !t.IsKnown() {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", t.Origin, t.Line, t.Column)
}

// Kind is the discriminant of a Value. Every consumption site switches
// exhaustively over Kind, so adding a new kind is a compile-surfaced change.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindBinary
	KindDecimal
	KindRecord
	KindList
	KindFrame
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindBinary:
		return "binary"
	case KindDecimal:
		return "decimal"
	case KindRecord:
		return "record"
	case KindList:
		return "list"
	case KindFrame:
		return "frame"
	}
	return "invalid"
}

// Value is a closed discriminated union over the primitive, structured and
// frame variants flowing through the pipeline. Only the field matching the
// kind is ever read; the rest stay at their zero values.
type Value struct {
	Tag  Tag
	kind Kind

	str  string
	num  int64
	fl   float64
	bl   bool
	bin  []byte
	dec  decimal.Decimal
	rec  *Record
	list []Value
	fr   *frame.Frame
}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func Int(i int64) Value {
	return Value{kind: KindInt, num: i}
}

func Float(f float64) Value {
	return Value{kind: KindFloat, fl: f}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, bl: b}
}

func Binary(b []byte) Value {
	return Value{kind: KindBinary, bin: b}
}

func Decimal(d decimal.Decimal) Value {
	return Value{kind: KindDecimal, dec: d}
}

func FromRecord(r *Record) Value {
	return Value{kind: KindRecord, rec: r}
}

func List(items ...Value) Value {
	return Value{kind: KindList, list: items}
}

func Frame(f *frame.Frame) Value {
	return Value{kind: KindFrame, fr: f}
}

// WithTag returns a copy of the value carrying the given tag.
func (v Value) WithTag(tag Tag) Value {
	v.Tag = tag
	return v
}

func (v Value) Kind() Kind {
	return v.kind
}

// Unchecked accessors, valid only for the matching kind. Consumption sites
// switch on Kind() first.

func (v Value) StringVal() string           { return v.str }
func (v Value) IntVal() int64               { return v.num }
func (v Value) FloatVal() float64           { return v.fl }
func (v Value) BoolVal() bool               { return v.bl }
func (v Value) BinaryVal() []byte           { return v.bin }
func (v Value) DecimalVal() decimal.Decimal { return v.dec }
func (v Value) RecordVal() *Record          { return v.rec }
func (v Value) ListVal() []Value            { return v.list }
func (v Value) FrameVal() *frame.Frame      { return v.fr }

// AsString returns the string payload or a labeled type mismatch.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", TypeMismatch(v.Tag, fmt.Sprintf("expected string, found %s", v.kind), "")
	}
	return v.str, nil
}

// AsFrame returns the frame handle or a labeled type mismatch.
func (v Value) AsFrame() (*frame.Frame, error) {
	if v.kind != KindFrame {
		return nil, TypeMismatch(v.Tag,
			fmt.Sprintf("expected dataframe or series, found %s", v.kind), "")
	}
	return v.fr, nil
}

// AsRecord returns the record payload or a labeled type mismatch.
func (v Value) AsRecord() (*Record, error) {
	if v.kind != KindRecord {
		return nil, TypeMismatch(v.Tag, fmt.Sprintf("expected record, found %s", v.kind), "")
	}
	return v.rec, nil
}

// Equal reports deep structural equality. Tags are diagnostics only and do
// not participate.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindString:
		return a.str == b.str
	case KindInt:
		return a.num == b.num
	case KindFloat:
		return a.fl == b.fl
	case KindBool:
		return a.bl == b.bl
	case KindBinary:
		if len(a.bin) != len(b.bin) {
			return false
		}
		for i := range a.bin {
			if a.bin[i] != b.bin[i] {
				return false
			}
		}
		return true
	case KindDecimal:
		return a.dec.Equal(b.dec)
	case KindRecord:
		return a.rec.Equal(b.rec)
	case KindList:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	case KindFrame:
		return frame.Equal(a.fr, b.fr)
	}
	return false
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.fl, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.bl)
	case KindBinary:
		return fmt.Sprintf("<binary %d bytes>", len(v.bin))
	case KindDecimal:
		return v.dec.String()
	case KindRecord:
		var sb strings.Builder
		sb.WriteString("{")
		for i, k := range v.rec.Keys() {
			if i > 0 {
				sb.WriteString(", ")
			}
			child, _ := v.rec.Get(k)
			fmt.Fprintf(&sb, "%s: %s", k, child.String())
		}
		sb.WriteString("}")
		return sb.String()
	case KindList:
		var sb strings.Builder
		sb.WriteString("[")
		for i, item := range v.list {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(item.String())
		}
		sb.WriteString("]")
		return sb.String()
	case KindFrame:
		return v.fr.String()
	}
	return "<invalid>"
}
