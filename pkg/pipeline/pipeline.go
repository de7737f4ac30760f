package pipeline

import (
	"context"
	"sync"

	"github.com/containerd/log"

	"github.com/framerail/framerail/pkg/command"
	"github.com/framerail/framerail/pkg/stream"
	"github.com/framerail/framerail/pkg/value"
)

// Stage is one command invocation in a pipeline, with its evaluated
// arguments.
type Stage struct {
	Cmd  command.Command
	Args []value.Value
}

// Run wires the source through every stage with one-item channel handoffs
// and drains the final output. The line stops at the first failure: that
// error is returned and nothing after it is produced.
func Run(ctx context.Context, source *stream.Input, stages ...Stage) ([]value.Value, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
		cancel()
	}

	cur := source
	for _, st := range stages {
		lg := log.G(ctx).WithField("command", st.Cmd.Name())
		lg.Debug("starting pipeline stage")

		out, err := st.Cmd.Run(ctx, &command.Call{
			Tag:   value.UnknownTag(),
			Args:  st.Args,
			Input: cur,
		})
		if err != nil {
			// A stage that rejects its call may have been starved by an
			// upstream failure; that failure is the one to report.
			mu.Lock()
			if firstErr != nil {
				err = firstErr
			}
			mu.Unlock()
			lg.WithError(err).Error("pipeline stage failed")
			return nil, err
		}
		cur = relay(ctx, out, fail)
	}

	vals := make([]value.Value, 0)
	for {
		v, ok := cur.Next(ctx)
		if !ok {
			break
		}
		vals = append(vals, v)
	}

	mu.Lock()
	err := firstErr
	mu.Unlock()
	if err != nil {
		log.G(ctx).WithError(err).Error("pipeline failed")
		return nil, err
	}
	return vals, nil
}

// relay forwards success values from a stage output to the next stage
// input and stops the line on the first failure result.
func relay(ctx context.Context, out *stream.Output, fail func(error)) *stream.Input {
	ch := make(chan value.Value, stream.BufferSize(ctx, 0))

	go func() {
		defer close(ch)

		for {
			select {
			case r, ok := <-out.Chan():
				if !ok {
					return
				}
				if r.IsFailure() {
					fail(r.Err())
					return
				}
				select {
				case ch <- r.Value():
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return stream.NewInput(ch)
}
