package wrop

// MaybeWarn is the continuation payload of a Result: a value that made it
// past the failure gate, optionally carrying a warning. It always holds
// exactly one value; the warning is present iff hasWarn is set. There is no
// failure variant and no propagation, every operation is total.
type MaybeWarn[T, W any] struct {
	value   T
	warn    W
	hasWarn bool
}

func Carry[T, W any](v T) MaybeWarn[T, W] {
	return MaybeWarn[T, W]{value: v}
}

func CarryWarn[T, W any](v T, w W) MaybeWarn[T, W] {
	return MaybeWarn[T, W]{value: v, warn: w, hasWarn: true}
}

func (m MaybeWarn[T, W]) Value() T {
	return m.value
}

// ValueMut returns a pointer to the carried value for in-place modification.
func (m *MaybeWarn[T, W]) ValueMut() *T {
	return &m.value
}

// DiscardWarnings unwraps the value, dropping any warning irreversibly.
func (m MaybeWarn[T, W]) DiscardWarnings() T {
	return m.value
}

func (m MaybeWarn[T, W]) HasWarning() bool {
	return m.hasWarn
}

func (m MaybeWarn[T, W]) Warning() W {
	return m.warn
}

// AsRef produces a carrier of pointers into the receiver for inspection
// without consuming it.
func (m *MaybeWarn[T, W]) AsRef() MaybeWarn[*T, *W] {
	out := MaybeWarn[*T, *W]{value: &m.value, hasWarn: m.hasWarn}
	if m.hasWarn {
		out.warn = &m.warn
	}
	return out
}

// AsMut is AsRef under its mutating name; the same pointer view covers
// modification.
func (m *MaybeWarn[T, W]) AsMut() MaybeWarn[*T, *W] {
	return m.AsRef()
}

// MapValue transforms the carried value, preserving the warning if present.
func MapValue[In, Out, W any](m MaybeWarn[In, W], f func(In) Out) MaybeWarn[Out, W] {
	return MaybeWarn[Out, W]{value: f(m.value), warn: m.warn, hasWarn: m.hasWarn}
}

// MapWarning transforms the warning if present, leaving the value untouched.
func MapWarning[T, WIn, WOut any](m MaybeWarn[T, WIn], f func(WIn) WOut) MaybeWarn[T, WOut] {
	out := MaybeWarn[T, WOut]{value: m.value, hasWarn: m.hasWarn}
	if m.hasWarn {
		out.warn = f(m.warn)
	}
	return out
}
