// Package step contains single-value, synchronous railway primitives that
// operate on Result[T]. These functions form the core building blocks for
// error-aware command pipelines without channels.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee/FailOnError: side-effect and guard helpers
// - Finally: reduce to a concrete value via success/error/cancel handlers
package step
