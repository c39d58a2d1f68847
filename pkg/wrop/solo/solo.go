package solo

import (
	"errors"

	"github.com/ib-77/wrop/pkg/wrop"
)

func Succeed[T, W any](input T) wrop.Result[T, W] {
	return wrop.Success[T, W](input)
}

func Warn[T, W any](input T, warn W) wrop.Result[T, W] {
	return wrop.Warn[T, W](input, warn)
}

func Fail[T, W any](err error) wrop.Result[T, W] {
	return wrop.Fail[T, W](err)
}

// MapVal transforms the value only; a warning stays attached, a failure
// passes through untouched.
func MapVal[In, Out, W any](input wrop.Result[In, W],
	f func(in In) Out) wrop.Result[Out, W] {

	m, _, done := input.Branch()
	if done {
		return wrop.FailFrom[In, Out](input)
	}
	return wrop.FromCarrier(wrop.MapValue(m, f))
}

// MapWarn transforms the warning only; value and failure pass through
// untouched.
func MapWarn[T, WIn, WOut any](input wrop.Result[T, WIn],
	f func(warn WIn) WOut) wrop.Result[T, WOut] {

	m, err, done := input.Branch()
	if done {
		return wrop.FailAs[T, WOut](input, err)
	}
	return wrop.FromCarrier(wrop.MapWarning(m, f))
}

// MapErr transforms the error only; successful outcomes pass through
// untouched.
func MapErr[T, W any](input wrop.Result[T, W],
	f func(err error) error) wrop.Result[T, W] {

	if input.IsFailure() {
		return wrop.FailAs[T, W](input, f(input.Err()))
	}
	return input
}

// Map applies f to the continuation payload and re-wraps; a failure
// short-circuits and f is never invoked.
func Map[In, Out, W any](input wrop.Result[In, W],
	f func(m wrop.MaybeWarn[In, W]) wrop.MaybeWarn[Out, W]) wrop.Result[Out, W] {

	m, _, done := input.Branch()
	if done {
		return wrop.FailFrom[In, Out](input)
	}
	return wrop.FromCarrier(f(m))
}

// AndThen chains a dependent operation over the continuation payload; a
// failure short-circuits and f is never invoked.
func AndThen[In, Out, W any](input wrop.Result[In, W],
	f func(m wrop.MaybeWarn[In, W]) wrop.Result[Out, W]) wrop.Result[Out, W] {

	m, _, done := input.Branch()
	if done {
		return wrop.FailFrom[In, Out](input)
	}
	return f(m)
}

// OrElse is the recovery hook: invoked only on failure, successes and
// warnings pass through untouched.
func OrElse[T, W any](input wrop.Result[T, W],
	f func(err error) wrop.Result[T, W]) wrop.Result[T, W] {

	if input.IsFailure() {
		return f(input.Err())
	}
	return input
}

// Try calls a plain (Out, error) function on the value, converting the
// error to a failure. A warning on the input stays attached to the output.
func Try[In, Out, W any](input wrop.Result[In, W],
	onTryExecute func(in In) (Out, error)) wrop.Result[Out, W] {

	m, _, done := input.Branch()
	if done {
		return wrop.FailFrom[In, Out](input)
	}

	out, err := onTryExecute(m.Value())
	if err != nil {
		return wrop.Fail[Out, W](err)
	}
	if m.HasWarning() {
		return wrop.Warn[Out, W](out, m.Warning())
	}
	return wrop.Success[Out, W](out)
}

// FailOnError downgrades a successful outcome to a failure when maybeErr
// reports one; the attached warning, if any, is discarded with the value.
func FailOnError[T, W any](input wrop.Result[T, W],
	maybeErr func(in T) error) wrop.Result[T, W] {

	if input.IsSuccess() {
		if err := maybeErr(input.Result()); err != nil {
			return wrop.Fail[T, W](err)
		}
	}
	return input
}

// Tee runs a side effect on a successful result (warned or not) and passes
// the input through unchanged.
func Tee[T, W any](input wrop.Result[T, W],
	onSuccess func(r wrop.Result[T, W])) wrop.Result[T, W] {

	if input.IsSuccess() {
		onSuccess(input)
	}
	return input
}

// DoubleTee routes a side effect by severity and passes the input through
// unchanged.
func DoubleTee[T, W any](input wrop.Result[T, W],
	onSuccess func(r T),
	onWarn func(r T, warn W),
	onError func(err error)) wrop.Result[T, W] {

	if input.IsFailure() {
		onError(input.Err())
	} else if input.IsWarn() {
		onWarn(input.Result(), input.Warning())
	} else {
		onSuccess(input.Result())
	}
	return input
}

// Finally collapses the result to a concrete value via per-severity
// handlers.
func Finally[In, Out, W any](input wrop.Result[In, W],
	onSuccess func(r In) Out,
	onWarn func(r In, warn W) Out,
	onError func(err error) Out) Out {

	if input.IsFailure() {
		return onError(input.Err())
	}
	if input.IsWarn() {
		return onWarn(input.Result(), input.Warning())
	}
	return onSuccess(input.Result())
}

// DiscardWarnings narrows the tri-state result to Go's plain (value, error)
// pair, dropping any warning irreversibly. This is the only way down to a
// binary outcome; nothing narrows implicitly.
func DiscardWarnings[T, W any](input wrop.Result[T, W]) (T, error) {
	m, err, done := input.Branch()
	if done {
		var zero T
		return zero, err
	}
	return m.DiscardWarnings(), nil
}

// Validate starts a result from a raw value, failing when the predicate
// rejects it.
func Validate[T, W any](input T,
	validate func(in T) (valid bool, errMsg string)) wrop.Result[T, W] {
	return AndValidate(Succeed[T, W](input), validate)
}

// AndValidate fails an already-built result when the predicate rejects its
// value; a failure passes through without invoking the predicate.
func AndValidate[T, W any](input wrop.Result[T, W],
	validate func(in T) (valid bool, errMsg string)) wrop.Result[T, W] {

	if input.IsSuccess() {
		if valid, errMsg := validate(input.Result()); !valid {
			return wrop.Fail[T, W](errors.New(errMsg))
		}
	}
	return input
}

// Advise is the soft counterpart of Validate: a rejected value keeps
// flowing but picks up the advisor's warning. An earlier warning is kept in
// preference to the new one so no advisor can overwrite the first
// diagnostic on the value.
func Advise[T, W any](input wrop.Result[T, W],
	advise func(in T) (ok bool, warn W)) wrop.Result[T, W] {

	if input.IsSuccess() && !input.IsWarn() {
		if ok, warn := advise(input.Result()); !ok {
			return wrop.Warn[T, W](input.Result(), warn)
		}
	}
	return input
}

// ValidateAll applies every validator, joining the collected errors into a
// single failure. With breakOnError set it stops at the first rejection.
func ValidateAll[T, W any](input wrop.Result[T, W],
	breakOnError bool,
	validators ...func(in T) (valid bool, errMsg string)) wrop.Result[T, W] {

	if input.IsFailure() {
		return input
	}

	var joined error
	for _, v := range validators {
		if valid, errMsg := v(input.Result()); !valid {
			errs := wrop.GetErrors(joined)
			errs = append(errs, errors.New(errMsg))
			joined = errors.Join(errs...)

			if breakOnError {
				break
			}
		}
	}

	if wrop.IsNil(joined) {
		return input
	}
	return wrop.Fail[T, W](joined)
}
