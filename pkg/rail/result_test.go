package rail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	t.Parallel()

	r := Success(42)

	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.False(t, r.IsCancel())
	assert.True(t, r.HasValue())
	assert.Equal(t, 42, r.Value())
	assert.NoError(t, r.Err())
	assert.False(t, r.CreatedAt().IsZero())
}

func TestFail(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := Fail[int](boom)

	assert.False(t, r.IsSuccess())
	assert.True(t, r.IsFailure())
	assert.False(t, r.IsCancel())
	assert.False(t, r.HasValue())
	assert.Equal(t, boom, r.Err())
}

func TestCancel(t *testing.T) {
	t.Parallel()

	r := Cancel[int](context.Canceled)

	assert.True(t, r.IsFailure())
	assert.True(t, r.IsCancel())
	assert.Equal(t, context.Canceled, r.Err())
}

func TestCancelFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()

	from := Fail[int](errors.New("boom"))
	to := CancelFrom[int, string](from)

	assert.Equal(t, from.Id(), to.Id())
	assert.Equal(t, from.CreatedAt(), to.CreatedAt())
	assert.Equal(t, from.Err(), to.Err())
	assert.False(t, to.HasValue())
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetErrors(nil))

	single := errors.New("one")
	assert.Equal(t, []error{single}, GetErrors(single))

	joined := errors.Join(errors.New("one"), errors.New("two"))
	assert.Len(t, GetErrors(joined), 2)
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCancellationError(context.Canceled))
	assert.True(t, IsCancellationError(context.DeadlineExceeded))
	assert.False(t, IsCancellationError(errors.New("boom")))
}
