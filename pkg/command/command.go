package command

import (
	"context"
	"fmt"

	"github.com/framerail/framerail/pkg/stream"
	"github.com/framerail/framerail/pkg/value"
)

// Arg describes one argument in a command signature.
type Arg struct {
	Name string
	Desc string
}

// Signature is the declared argument surface of a command: required
// positional arguments plus an optional trailing rest argument.
type Signature struct {
	Name       string
	Positional []Arg
	Rest       *Arg
}

// Example is a replayable usage sample: input values, argument values and
// the expected outputs. Want may be nil for illustration-only examples.
type Example struct {
	Description string
	Pipeline    string
	Input       []value.Value
	Args        []value.Value
	Want        []value.Value
}

// Call is one command invocation: the invocation tag, the evaluated
// argument values and a handle to the upstream stream. Commands read their
// primary subject from the stream, not from arguments.
type Call struct {
	Tag   value.Tag
	Args  []value.Value
	Input *stream.Input
}

// Req returns the required positional argument at position i.
func (c *Call) Req(i int) (value.Value, error) {
	if i >= len(c.Args) {
		return value.Value{}, fmt.Errorf("missing required positional argument %d", i)
	}
	return c.Args[i], nil
}

// Rest returns the arguments from position i on.
func (c *Call) Rest(i int) []value.Value {
	if i >= len(c.Args) {
		return nil
	}
	return c.Args[i:]
}

// Command is one pipeline stage entry point. Run validates the call,
// executes the transformation and returns the downstream output; argument
// or validation failures surface as the returned error, per-item
// transformation failures ride the output stream.
type Command interface {
	Name() string
	Usage() string
	Signature() Signature
	Examples() []Example
	Run(ctx context.Context, call *Call) (*stream.Output, error)
}
