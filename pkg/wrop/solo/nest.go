package solo

import (
	"github.com/ib-77/wrop/pkg/wrop"
)

// FlattenInner collapses a nested result. When both levels carry a warning
// the inner one wins and the outer diagnostic is discarded.
func FlattenInner[T, W any](input wrop.Result[wrop.Result[T, W], W]) wrop.Result[T, W] {
	m, _, done := input.Branch()
	if done {
		return wrop.FailFrom[wrop.Result[T, W], T](input)
	}

	inner := m.Value()
	if inner.IsFailure() {
		return inner
	}
	if inner.IsWarn() {
		return inner
	}
	if m.HasWarning() {
		return wrop.Warn[T, W](inner.Result(), m.Warning())
	}
	return inner
}

// FlattenOuter collapses a nested result. When both levels carry a warning
// the outer one wins and the inner diagnostic is discarded.
func FlattenOuter[T, W any](input wrop.Result[wrop.Result[T, W], W]) wrop.Result[T, W] {
	m, _, done := input.Branch()
	if done {
		return wrop.FailFrom[wrop.Result[T, W], T](input)
	}

	inner := m.Value()
	if inner.IsFailure() {
		return inner
	}
	if m.HasWarning() {
		return wrop.Warn[T, W](inner.Result(), m.Warning())
	}
	return inner
}

// TransposeLossy converts a pointer-valued result into a pointer to a
// result; nil models absence. A nil value collapses to nil even when a
// warning is attached, and that warning is dropped. The loss is the named,
// intended behavior, not an accident.
func TransposeLossy[T, W any](input wrop.Result[*T, W]) *wrop.Result[T, W] {
	if input.IsFailure() {
		r := wrop.FailFrom[*T, T](input)
		return &r
	}

	ptr := input.Result()
	if ptr == nil {
		return nil
	}

	var r wrop.Result[T, W]
	if input.IsWarn() {
		r = wrop.Warn[T, W](*ptr, input.Warning())
	} else {
		r = wrop.Success[T, W](*ptr)
	}
	return &r
}
