package wrop

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithWarn extends WithError with a non-fatal diagnostic attached to an
// otherwise successful outcome
type WithWarn[T, W any] interface {
	WithError[T]
	// IsWarn returns true if the operation succeeded with a warning
	IsWarn() bool
	// Warning returns the diagnostic payload when IsWarn is true
	Warning() W
}

// Propagable is the short-circuit contract. Branch splits a value into
// either a continuation output O (done false) or a terminal residual R
// (done true). A residual obtained from one propagable type may be lifted
// into any compatible one; for results that lift is Fail / FailFrom, which
// is how a plain binary failure is absorbed into a warn-carrying chain.
type Propagable[O, R any] interface {
	Branch() (out O, residual R, done bool)
}

var (
	_ WithWarn[int, string]                     = Result[int, string]{}
	_ Propagable[MaybeWarn[int, string], error] = Result[int, string]{}
)
