package validation

import (
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOk_Accessors(t *testing.T) {
	t.Parallel()
	r := Ok[int, string](5)

	assert.True(t, r.IsOk())
	assert.False(t, r.IsErr())
	assert.Equal(t, 5, r.Success())
	assert.NotEqual(t, uuid.Nil, r.Id())
	assert.False(t, r.CreatedAt().IsZero())
	assert.Panics(t, func() { r.Failure() })
}

func TestErr_Accessors(t *testing.T) {
	t.Parallel()
	r := Err[int]("boom")

	assert.True(t, r.IsErr())
	assert.False(t, r.IsOk())
	assert.Equal(t, "boom", r.Failure())
	assert.Panics(t, func() { r.Success() })
}

func TestGet_DoesNotPanic(t *testing.T) {
	t.Parallel()

	s, _, ok := Ok[int, string](3).Get()
	assert.True(t, ok)
	assert.Equal(t, 3, s)

	_, f, ok := Err[int]("bad").Get()
	assert.False(t, ok)
	assert.Equal(t, "bad", f)
}

func TestResult_DistinctIds(t *testing.T) {
	t.Parallel()
	assert.NotEqual(t, Ok[int, string](1).Id(), Ok[int, string](1).Id())
}

func TestNext_ForwardAndStop(t *testing.T) {
	t.Parallel()

	v, ok := Forward("x").Value()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	assert.True(t, Forward(0).IsPresent())

	_, ok = Stop[string]().Value()
	assert.False(t, ok)
	assert.False(t, Stop[int]().IsPresent())
}

func TestPassReject(t *testing.T) {
	t.Parallel()

	res, next := Pass[string, error]("ok", 7)
	assert.True(t, res.IsOk())
	assert.Equal(t, "ok", res.Success())
	v, present := next.Value()
	assert.True(t, present)
	assert.Equal(t, 7, v)

	res, next = Reject[string, error, int](assert.AnError)
	assert.True(t, res.IsErr())
	assert.ErrorIs(t, res.Failure(), assert.AnError)
	assert.False(t, next.IsPresent())
}

func TestFinally(t *testing.T) {
	t.Parallel()

	onOk := func(v int) string { return "ok:" + strconv.Itoa(v) }
	onErr := func(e string) string { return "err:" + e }

	assert.Equal(t, "ok:2", Finally(Ok[int, string](2), onOk, onErr))
	assert.Equal(t, "err:e", Finally(Err[int]("e"), onOk, onErr))
}

func TestMap(t *testing.T) {
	t.Parallel()

	double := func(v int) int { return v * 2 }

	out := Map(Ok[int, string](4), double)
	assert.True(t, out.IsOk())
	assert.Equal(t, 8, out.Success())

	out = Map(Err[int]("nope"), double)
	assert.True(t, out.IsErr())
	assert.Equal(t, "nope", out.Failure())
}
