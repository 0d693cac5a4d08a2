package validation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of a rule or of a whole Ruleset run. Exactly one of the
// success or failure payloads is set.
type Result[S, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	success   S
	failure   E
	isOk      bool
}

func Ok[S, E any](success S) Result[S, E] {
	return Result[S, E]{
		success:   success,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[S, E any](failure E) Result[S, E] {
	return Result[S, E]{
		failure:   failure,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[S, E]) IsOk() bool {
	return r.isOk
}

func (r Result[S, E]) IsErr() bool {
	return !r.isOk
}

// Success returns the success payload. It panics on an error result.
func (r Result[S, E]) Success() S {
	if !r.isOk {
		panic(fmt.Sprintf("validation: Success called on error result %s", r.id))
	}
	return r.success
}

// Failure returns the error payload. It panics on a success result.
func (r Result[S, E]) Failure() E {
	if r.isOk {
		panic(fmt.Sprintf("validation: Failure called on success result %s", r.id))
	}
	return r.failure
}

// Get returns both payloads without panicking; only the one matching ok is meaningful.
func (r Result[S, E]) Get() (success S, failure E, ok bool) {
	return r.success, r.failure, r.isOk
}

func (r Result[S, E]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result[S, E]) CreatedAt() time.Time {
	return r.createdAt
}
