// Package chain provides a fluent wrapper around Result[T] for building
// synchronous Railway-Oriented chains using step primitives.
//
// It composes functions like Switch, Map, Try, Tee, and Finally behind a
// convenient Chain[T] type. Same-type steps are methods; type-changing steps
// (Result[T] to Result[U]) are free functions, since Go methods cannot
// introduce new type parameters.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value
// - Validate: fail on a rejected predicate
// - Ensure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
