package assert

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/ib-77/wrop/pkg/wrop"
)

// onLeak is what an unconsumed failed assertion escalates to. Swapped out
// only by tests; the default is an unconditional panic naming the original
// call site.
var onLeak = func(msg string) {
	panic(msg)
}

type failure struct {
	file     string
	line     int
	msg      string
	consumed bool
}

func (f *failure) String() string {
	return fmt.Sprintf("%s at %s:%d", f.msg, f.file, f.line)
}

// Assert is a logical assertion made at runtime. A failed assertion must be
// consumed in some way: propagated via Check, converted with ToPanic, or
// explicitly discarded with Defuse. A failed assertion that is garbage
// collected unconsumed escalates to an unconditional panic, so a forgotten
// check can never be silently swallowed. Successful assertions carry no
// guard and never escalate.
type Assert struct {
	fail *failure
}

func Success() *Assert {
	return &Assert{}
}

func Failure() *Assert {
	return newFailure("Assertion failed")
}

// IsTrue asserts that the condition holds.
func IsTrue(a bool) *Assert {
	if a {
		return Success()
	}
	return newFailure("Expected `true`, got `false`")
}

// IsFalse asserts that the condition does not hold.
func IsFalse(a bool) *Assert {
	if !a {
		return Success()
	}
	return newFailure("Expected `false`, got `true`")
}

// Eq asserts that two values are deeply equal.
func Eq[T any](a, b T) *Assert {
	if reflect.DeepEqual(a, b) {
		return Success()
	}
	return newFailure(fmt.Sprintf("Expected `%#v` to equal `%#v`", a, b))
}

// Ne asserts that two values are not deeply equal.
func Ne[T any](a, b T) *Assert {
	if !reflect.DeepEqual(a, b) {
		return Success()
	}
	return newFailure(fmt.Sprintf("Expected `%#v` to not equal `%#v`", a, b))
}

// From converts a plain error into an assertion: nil is success, anything
// else a failure carrying the error text.
func From(err error) *Assert {
	if wrop.IsNil(err) {
		return Success()
	}
	return newFailure(err.Error())
}

// newFailure records the call site two frames up, i.e. the caller of the
// exported constructor.
func newFailure(msg string) *Assert {
	_, file, line, _ := runtime.Caller(2)
	f := &failure{file: file, line: line, msg: msg}
	a := &Assert{fail: f}

	runtime.AddCleanup(a, func(f *failure) {
		if !f.consumed {
			onLeak(fmt.Sprintf("Failed assertion dropped. (Did you forget Check or ToPanic?)\nAssertion Failed: %s", f))
		}
	}, f)

	return a
}

// Msg replaces the failure message. Discarded on a successful assertion.
func (a *Assert) Msg(msg string) *Assert {
	if a.fail != nil {
		a.fail.msg = msg
	}
	return a
}

// WithMsg replaces the failure message, calling f only if the assertion
// failed.
func (a *Assert) WithMsg(f func() string) *Assert {
	if a.fail != nil {
		a.fail.msg = f()
	}
	return a
}

// Check consumes the assertion and is the propagation bridge: it returns
// nil on success and the failure, as an error naming the call site, on
// failure. The caller is expected to return that error up the chain.
func (a *Assert) Check() error {
	if a.fail == nil {
		return nil
	}
	a.fail.consumed = true
	return fmt.Errorf("%s", a.fail)
}

// ToPanic consumes the assertion, panicking if it failed and doing nothing
// on success.
func (a *Assert) ToPanic() {
	if a.fail == nil {
		return
	}
	a.fail.consumed = true
	panic(a.fail.String())
}

// Defuse consumes the assertion harmlessly. This is probably not what you
// want unless you really need to ignore a failed assertion.
func (a *Assert) Defuse() {
	if a.fail != nil {
		a.fail.consumed = true
	}
}

func (a *Assert) IsFailure() bool {
	return a.fail != nil
}

func (a *Assert) IsSuccess() bool {
	return a.fail == nil
}

func (a *Assert) String() string {
	if a.fail == nil {
		return "Assertion Successful"
	}
	return "Assertion Failed: " + a.fail.String()
}
