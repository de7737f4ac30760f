package command

import (
	"context"
	"encoding/hex"
	"hash"

	"github.com/framerail/framerail/pkg/rail"
	"github.com/framerail/framerail/pkg/stream"
	"github.com/framerail/framerail/pkg/value"
)

// Digest rewrites string and binary leaves with lowercase hex digests of
// their bytes. The traversal is written once, generic over the algorithm:
// each concrete command plugs in a hash.Hash factory (new/update/finalize)
// and everything else is shared.
type Digest struct {
	name     string
	newHash  func() hash.Hash
	examples []Example
}

func NewDigest(name string, newHash func() hash.Hash, examples ...Example) *Digest {
	return &Digest{name: name, newHash: newHash, examples: examples}
}

func (d *Digest) Name() string {
	return d.name
}

func (d *Digest) Usage() string {
	return d.name + " encode a value"
}

func (d *Digest) Signature() Signature {
	return Signature{
		Name: d.name,
		Rest: &Arg{Name: "rest", Desc: "optionally digest data by column paths"},
	}
}

func (d *Digest) Examples() []Example {
	return d.examples
}

// Run lazily digests every upstream value. Targeted-leaf failures surface
// as failure results on the output stream; the untouched original is never
// partially emitted.
func (d *Digest) Run(ctx context.Context, call *Call) (*stream.Output, error) {
	paths, err := restPaths(call)
	if err != nil {
		return nil, err
	}

	return stream.MapInput(ctx, call.Input, func(ctx context.Context, v value.Value) rail.Result[value.Value] {
		out, err := ApplyDigest(d.newHash, v, paths)
		if err != nil {
			return rail.Fail[value.Value](err)
		}
		return rail.Success(out)
	}), nil
}

func restPaths(call *Call) ([]value.ColumnPath, error) {
	args := call.Rest(0)
	paths := make([]value.ColumnPath, 0, len(args))
	for _, a := range args {
		s, err := a.AsString()
		if err != nil {
			return nil, err
		}
		paths = append(paths, value.ParsePath(s, a.Tag))
	}
	return paths, nil
}

// ApplyDigest digests the leaves of v addressed by paths. With no paths the
// whole value is the target: records expand to one path per field (nested
// records keep expanding), anything else is digested directly.
func ApplyDigest(newHash func() hash.Hash, v value.Value, paths []value.ColumnPath) (value.Value, error) {
	if len(paths) == 0 {
		if v.Kind() == value.KindRecord {
			rec := v.RecordVal()
			out := v
			for _, k := range rec.Keys() {
				next, err := value.UpdateAt(out, value.PathOf(value.FieldMember(k)),
					func(leaf value.Value) (value.Value, error) {
						return ApplyDigest(newHash, leaf, nil)
					})
				if err != nil {
					return value.Value{}, err
				}
				out = next
			}
			return out, nil
		}
		return digestLeaf(newHash, v)
	}

	out := v
	for _, p := range paths {
		next, err := value.UpdateAt(out, p, func(leaf value.Value) (value.Value, error) {
			return digestLeaf(newHash, leaf)
		})
		if err != nil {
			return value.Value{}, err
		}
		out = next
	}
	return out, nil
}

func digestLeaf(newHash func() hash.Hash, v value.Value) (value.Value, error) {
	switch v.Kind() {
	case value.KindString:
		return value.String(hexDigest(newHash, []byte(v.StringVal()))).WithTag(v.Tag), nil
	case value.KindBinary:
		return value.String(hexDigest(newHash, v.BinaryVal())).WithTag(v.Tag), nil
	}
	return value.Value{}, value.UnsupportedLeaf(v.Tag, v.Kind())
}

func hexDigest(newHash func() hash.Hash, data []byte) string {
	h := newHash()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
