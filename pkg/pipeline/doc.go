// Package pipeline contains the stage driver: it wires a value source
// through a sequence of commands with cooperative one-item handoffs, stops
// the whole line at the first failure and drains the final output. It does
// not define business logic; commands do.
package pipeline
