package assert

import (
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestIsTrue(t *testing.T) {
	a := IsTrue(true)
	if !a.IsSuccess() {
		t.Fatalf("expected success")
	}
	a.Defuse()

	b := IsTrue(false)
	if !b.IsFailure() {
		t.Fatalf("expected failure")
	}
	if err := b.Check(); err == nil || !strings.Contains(err.Error(), "Expected `true`") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIsFalse(t *testing.T) {
	if err := IsFalse(false).Check(); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if err := IsFalse(true).Check(); err == nil {
		t.Fatalf("expected failure")
	}
}

func TestEq(t *testing.T) {
	if err := Eq(2, 2).Check(); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	err := Eq("hello", "world").Check()
	if err == nil || !strings.Contains(err.Error(), "to equal") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNe(t *testing.T) {
	if err := Ne(1, 2).Check(); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if err := Ne(1.0, 1.0).Check(); err == nil {
		t.Fatalf("expected failure")
	}
}

func TestEq_DeepValues(t *testing.T) {
	if err := Eq([]int{1, 2}, []int{1, 2}).Check(); err != nil {
		t.Fatalf("expected deep equality, got %v", err)
	}
	if err := Eq([]int{1}, []int{2}).Check(); err == nil {
		t.Fatalf("expected deep inequality to fail")
	}
}

func TestFrom(t *testing.T) {
	if !From(nil).IsSuccess() {
		t.Fatalf("nil error must be a successful assertion")
	}

	err := From(errors.New("io broke")).Check()
	if err == nil || !strings.Contains(err.Error(), "io broke") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMsg(t *testing.T) {
	err := Failure().Msg("[Custom Message]").Check()
	if err == nil || !strings.Contains(err.Error(), "[Custom Message]") {
		t.Fatalf("unexpected error: %v", err)
	}

	// a message on a success is discarded
	if err := Success().Msg("ignored").Check(); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestWithMsg(t *testing.T) {
	err := Failure().WithMsg(func() string { return "[Lazy Message]" }).Check()
	if err == nil || !strings.Contains(err.Error(), "[Lazy Message]") {
		t.Fatalf("unexpected error: %v", err)
	}

	called := false
	Success().WithMsg(func() string {
		called = true
		return ""
	}).Defuse()
	if called {
		t.Fatalf("message generator must not run on success")
	}
}

func TestCheck_NamesCallSite(t *testing.T) {
	err := Failure().Check()
	if err == nil || !strings.Contains(err.Error(), "assert_test.go") {
		t.Fatalf("the error must name the call site, got %v", err)
	}
}

func TestToPanic(t *testing.T) {
	Success().ToPanic() // no-op

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic from a failed assertion")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "Assertion failed") {
			t.Fatalf("unexpected panic payload: %v", r)
		}
	}()
	Failure().ToPanic()
}

func TestDroppedFailureEscalates(t *testing.T) {
	leaked := make(chan string, 1)
	prev := onLeak
	onLeak = func(msg string) {
		select {
		case leaked <- msg:
		default:
		}
	}
	defer func() { onLeak = prev }()

	func() {
		_ = Failure().Msg("forgotten")
	}()

	deadline := time.After(2 * time.Second)
	for {
		runtime.GC()
		select {
		case msg := <-leaked:
			if !strings.Contains(msg, "forgotten") || !strings.Contains(msg, "assert_test.go") {
				t.Fatalf("escalation must name the message and call site, got %q", msg)
			}
			return
		case <-deadline:
			t.Fatalf("dropped failed assertion never escalated")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDroppedSuccessNeverEscalates(t *testing.T) {
	leaked := make(chan string, 1)
	prev := onLeak
	onLeak = func(msg string) {
		select {
		case leaked <- msg:
		default:
		}
	}
	defer func() { onLeak = prev }()

	func() {
		_ = IsTrue(true)
	}()

	runtime.GC()
	runtime.GC()
	select {
	case msg := <-leaked:
		t.Fatalf("successful assertion escalated: %q", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestConsumedFailureNeverEscalates(t *testing.T) {
	leaked := make(chan string, 1)
	prev := onLeak
	onLeak = func(msg string) {
		select {
		case leaked <- msg:
		default:
		}
	}
	defer func() { onLeak = prev }()

	func() {
		if err := Failure().Check(); err == nil {
			t.Fatalf("expected failure")
		}
	}()
	func() {
		Failure().Defuse()
	}()

	runtime.GC()
	runtime.GC()
	select {
	case msg := <-leaked:
		t.Fatalf("consumed assertion escalated: %q", msg)
	case <-time.After(100 * time.Millisecond):
	}
}
