package command

import (
	"context"
	"fmt"

	"github.com/framerail/framerail/pkg/stream"
	"github.com/framerail/framerail/pkg/value"
)

// RunExamples replays every example of cmd that declares expected outputs
// and reports the first divergence. Tests and docs share the same samples.
func RunExamples(ctx context.Context, cmd Command) error {
	for _, ex := range cmd.Examples() {
		if ex.Want == nil {
			continue
		}

		call := &Call{
			Tag:   value.UnknownTag(),
			Args:  ex.Args,
			Input: stream.FromValues(ctx, ex.Input...),
		}

		out, err := cmd.Run(ctx, call)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", cmd.Name(), ex.Description, err)
		}

		got := out.Collect(ctx)
		if len(got) != len(ex.Want) {
			return fmt.Errorf("%s: %s: got %d values, want %d",
				cmd.Name(), ex.Description, len(got), len(ex.Want))
		}
		for i, r := range got {
			if r.IsFailure() {
				return fmt.Errorf("%s: %s: value %d failed: %w",
					cmd.Name(), ex.Description, i, r.Err())
			}
			if !value.Equal(r.Value(), ex.Want[i]) {
				return fmt.Errorf("%s: %s: value %d is %s, want %s",
					cmd.Name(), ex.Description, i, r.Value(), ex.Want[i])
			}
		}
	}
	return nil
}
