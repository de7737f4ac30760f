package stream

import "context"

type OptionKey string

const BufferOptionKey OptionKey = "buffer_options"

type BufferOptions struct {
	Size int
}

// WithBufferOption sets the channel buffer used by stream producers.
// The default is an unbuffered one-item-at-a-time handoff.
func WithBufferOption(ctx context.Context, size int) context.Context {
	return context.WithValue(ctx, BufferOptionKey, BufferOptions{Size: size})
}

func BufferSize(ctx context.Context, defaultSize int) int {
	options, ok := ctx.Value(BufferOptionKey).(BufferOptions)
	if ok {
		return options.Size
	}
	return defaultSize
}
