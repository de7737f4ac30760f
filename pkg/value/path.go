package value

import (
	"strconv"
	"strings"
)

// Member is one selector step in a column path: a record field name or a
// list index.
type Member struct {
	field   string
	index   int
	isIndex bool
}

func FieldMember(name string) Member {
	return Member{field: name}
}

func IndexMember(i int) Member {
	return Member{index: i, isIndex: true}
}

func (m Member) IsIndex() bool {
	return m.isIndex
}

func (m Member) Field() string {
	return m.field
}

func (m Member) Index() int {
	return m.index
}

func (m Member) String() string {
	if m.isIndex {
		return strconv.Itoa(m.index)
	}
	return m.field
}

// ColumnPath is an ordered selector sequence locating a leaf inside a
// structured value. An empty path addresses the whole value.
type ColumnPath struct {
	Members []Member
	Tag     Tag
}

func PathOf(members ...Member) ColumnPath {
	return ColumnPath{Members: members}
}

// ParsePath builds a path from dotted text; all-digit segments become index
// members ("inner.0.name" selects field inner, element 0, field name).
func ParsePath(s string, tag Tag) ColumnPath {
	p := ColumnPath{Tag: tag}
	if s == "" {
		return p
	}
	for _, seg := range strings.Split(s, ".") {
		if i, err := strconv.Atoi(seg); err == nil {
			p.Members = append(p.Members, IndexMember(i))
			continue
		}
		p.Members = append(p.Members, FieldMember(seg))
	}
	return p
}

func (p ColumnPath) String() string {
	parts := make([]string, 0, len(p.Members))
	for _, m := range p.Members {
		parts = append(parts, m.String())
	}
	return strings.Join(parts, ".")
}

// UpdateAt rewrites the leaf addressed by path with fn, copying structure
// along the path only. The input value is never mutated: on error the caller
// still holds the untouched original. An unresolvable member (missing field,
// out-of-range index, or a member applied to a non-container) fails with
// PathNotFound naming that member.
func UpdateAt(v Value, path ColumnPath, fn func(Value) (Value, error)) (Value, error) {
	if len(path.Members) == 0 {
		return fn(v)
	}

	head, rest := path.Members[0], ColumnPath{Members: path.Members[1:], Tag: path.Tag}

	if head.IsIndex() {
		if v.Kind() != KindList {
			return Value{}, PathNotFound(v.Tag, head.String())
		}
		items := v.ListVal()
		i := head.Index()
		if i < 0 || i >= len(items) {
			return Value{}, PathNotFound(v.Tag, head.String())
		}
		child, err := UpdateAt(items[i], rest, fn)
		if err != nil {
			return Value{}, err
		}
		out := make([]Value, len(items))
		copy(out, items)
		out[i] = child
		return List(out...).WithTag(v.Tag), nil
	}

	if v.Kind() != KindRecord {
		return Value{}, PathNotFound(v.Tag, head.String())
	}
	rec := v.RecordVal()
	cur, ok := rec.Get(head.Field())
	if !ok {
		return Value{}, PathNotFound(v.Tag, head.String())
	}
	child, err := UpdateAt(cur, rest, fn)
	if err != nil {
		return Value{}, err
	}
	out := rec.Clone()
	out.Set(head.Field(), child)
	return FromRecord(out).WithTag(v.Tag), nil
}
