package wrop

import (
	"time"

	"github.com/google/uuid"
)

// Result is a three-way outcome: success, success with a warning, or failure.
// The error side is Go's error interface; the warning payload W is generic.
// Severity is totally ordered: failure > warning > success, and every
// operation in this module preserves that ordering.
type Result[T, W any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	warn      W
	err       error
	isSuccess bool
	hasWarn   bool
}

func Success[T, W any](v T) Result[T, W] {
	return Result[T, W]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Warn[T, W any](v T, w W) Result[T, W] {
	return Result[T, W]{
		value:     v,
		warn:      w,
		isSuccess: true,
		hasWarn:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T, W any](err error) Result[T, W] {
	return Result[T, W]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom lifts the failure residual of one result into a result of a
// different value type, preserving identity and creation time.
func FailFrom[In, Out, W any](from Result[In, W]) Result[Out, W] {
	return Result[Out, W]{
		err:       from.err,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// FailAs lifts a transformed failure residual into a result of different
// value and warning types, preserving identity and creation time. The
// caller supplies the replacement error. Out and WOut come first so call
// sites only spell the types that cannot be inferred.
func FailAs[Out, WOut, In, WIn any](from Result[In, WIn], err error) Result[Out, WOut] {
	return Result[Out, WOut]{
		err:       err,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// FromCarrier lifts a continuation payload back into a result.
func FromCarrier[T, W any](m MaybeWarn[T, W]) Result[T, W] {
	if m.hasWarn {
		return Warn[T, W](m.value, m.warn)
	}
	return Success[T, W](m.value)
}

// FromPair lifts Go's plain (value, error) pair into a result. A pair never
// produces a warning.
func FromPair[T, W any](v T, err error) Result[T, W] {
	if err != nil {
		return Fail[T, W](err)
	}
	return Success[T, W](v)
}

func (r Result[T, W]) Result() T {
	return r.value
}

func (r Result[T, W]) Warning() W {
	return r.warn
}

func (r Result[T, W]) Err() error {
	return r.err
}

func (r Result[T, W]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, W]) IsWarn() bool {
	return r.isSuccess && r.hasWarn
}

func (r Result[T, W]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T, W]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, W]) Id() uuid.UUID {
	return r.id
}

// Branch decomposes the result per the Propagable contract: on success the
// continuation payload is returned and done is false; on failure the residual
// error is returned and done is true, meaning the caller should return the
// residual (lifted via Fail or FailFrom) from the enclosing function.
func (r Result[T, W]) Branch() (MaybeWarn[T, W], error, bool) {
	if !r.isSuccess {
		return MaybeWarn[T, W]{}, r.err, true
	}
	return MaybeWarn[T, W]{value: r.value, warn: r.warn, hasWarn: r.hasWarn}, nil, false
}

// AsRef produces a result of pointers into the receiver. The error side is
// shared as-is.
func (r *Result[T, W]) AsRef() Result[*T, *W] {
	out := Result[*T, *W]{
		id:        r.id,
		createdAt: r.createdAt,
		err:       r.err,
		isSuccess: r.isSuccess,
		hasWarn:   r.hasWarn,
	}
	if r.isSuccess {
		out.value = &r.value
	}
	if r.hasWarn {
		out.warn = &r.warn
	}
	return out
}

// AsMut is AsRef under its mutating name: Go has no const pointers, so one
// pointer view serves both inspection and in-place modification.
func (r *Result[T, W]) AsMut() Result[*T, *W] {
	return r.AsRef()
}
