package early

// Early is an early-return value: a call either produced its final answer
// (done) or a value for the caller to keep working on (todo). It is a plain
// two-variant sum with no diagnostics and no aggregation.
type Early[D, T any] struct {
	done   D
	todo   T
	isDone bool
}

func Done[D, T any](d D) Early[D, T] {
	return Early[D, T]{done: d, isDone: true}
}

func Todo[D, T any](t T) Early[D, T] {
	return Early[D, T]{todo: t}
}

func (e Early[D, T]) IsDone() bool {
	return e.isDone
}

func (e Early[D, T]) IsTodo() bool {
	return !e.isDone
}

// Unwrap returns the done value, panicking if the value is todo.
func (e Early[D, T]) Unwrap() D {
	if !e.isDone {
		panic("early: called Unwrap on a todo value")
	}
	return e.done
}

// UnwrapTodo returns the todo value, panicking if the value is done.
func (e Early[D, T]) UnwrapTodo() T {
	if e.isDone {
		panic("early: called UnwrapTodo on a done value")
	}
	return e.todo
}

// AsRef produces an early value of pointers into the receiver.
func (e *Early[D, T]) AsRef() Early[*D, *T] {
	if e.isDone {
		return Done[*D, *T](&e.done)
	}
	return Todo[*D, *T](&e.todo)
}

// Branch implements the short-circuit contract: a done value is the
// residual the enclosing function should return, a todo value is the
// continuation output.
func (e Early[D, T]) Branch() (T, D, bool) {
	if e.isDone {
		var zero T
		return zero, e.done, true
	}
	var zero D
	return e.todo, zero, false
}

// AndThen continues the computation on a todo value; a done value passes
// through untouched.
func AndThen[D, T, U any](e Early[D, T], f func(t T) Early[D, U]) Early[D, U] {
	if e.isDone {
		return Done[D, U](e.done)
	}
	return f(e.todo)
}
