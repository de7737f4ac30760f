// Package stream defines the upstream and downstream contracts between
// commands: a pull-based Input of values with explicit end-of-stream, and a
// result-carrying Output where per-item failures travel with the data.
//
// All producers hand items over one at a time through channels sized by a
// context-carried buffer option (unbuffered by default), which keeps stage
// execution cooperative and strictly ordered.
package stream
