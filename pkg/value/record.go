package value

// Record is an insertion-ordered set of named fields. Field order is part of
// the value: transformations that rewrite a field leave the order unchanged.
type Record struct {
	keys []string
	vals map[string]Value
}

func NewRecord() *Record {
	return &Record{vals: make(map[string]Value)}
}

// RecordOf builds a record from alternating key, value pairs.
func RecordOf(pairs ...any) *Record {
	r := NewRecord()
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i].(string), pairs[i+1].(Value))
	}
	return r
}

// Set replaces an existing field in place or appends a new one.
func (r *Record) Set(key string, v Value) {
	if _, ok := r.vals[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.vals[key] = v
}

func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.vals[key]
	return v, ok
}

func (r *Record) Len() int {
	return len(r.keys)
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Clone makes a shallow copy; field values are shared, the key/value
// bookkeeping is not. Used for copy-on-write path rewrites.
func (r *Record) Clone() *Record {
	c := &Record{
		keys: make([]string, len(r.keys)),
		vals: make(map[string]Value, len(r.vals)),
	}
	copy(c.keys, r.keys)
	for k, v := range r.vals {
		c.vals[k] = v
	}
	return c
}

func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}
	if len(r.keys) != len(o.keys) {
		return false
	}
	for i, k := range r.keys {
		if o.keys[i] != k {
			return false
		}
		if !Equal(r.vals[k], o.vals[k]) {
			return false
		}
	}
	return true
}
