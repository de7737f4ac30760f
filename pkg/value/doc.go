// Package value defines the tagged values flowing through the pipeline: a
// closed discriminated union over primitives, ordered records, lists and
// opaque frame handles, each carrying a source-location tag used only for
// diagnostics.
//
// It also provides column paths (ordered field/index selector sequences with
// copy-on-write leaf rewriting via UpdateAt) and the labeled error taxonomy
// shared by every command: type mismatch, cast error, empty stream, path not
// found, unsupported leaf type.
package value
