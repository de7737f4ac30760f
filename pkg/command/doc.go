// Package command implements the pipeline commands as railway stages: each
// one validates the shape and runtime type of its inputs, delegates to a
// primitive operation (engine take, hash digest) and repackages the result
// as a fresh tagged value, or fails with one labeled error.
//
// Take is the row selector over frame values; Digest is the generic
// hash-and-rewrite traverser instantiated per algorithm (md5, sha1,
// sha256). Examples declared on a command are replayable through
// RunExamples, so documentation and tests cannot drift apart.
package command
