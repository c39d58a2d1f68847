package wrop

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReportTo_Success(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	code := ReportTo(&buf, Success[int, string](1))
	if code != ExitSuccess {
		t.Fatalf("expected exit %d, got %d", ExitSuccess, code)
	}
	if buf.Len() != 0 {
		t.Fatalf("plain success must not write, got %q", buf.String())
	}
}

func TestReportTo_Warn(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	code := ReportTo(&buf, Warn[int](1, "deprecated input"))
	if code != ExitSuccess {
		t.Fatalf("a warning must still report success, got %d", code)
	}
	if buf.String() != "Warning: deprecated input\n" {
		t.Fatalf("unexpected line: %q", buf.String())
	}
}

func TestReportTo_Failure(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	code := ReportTo(&buf, Fail[int, string](errors.New("boom")))
	if code != ExitFailure {
		t.Fatalf("expected exit %d, got %d", ExitFailure, code)
	}
	if !strings.HasPrefix(buf.String(), "Error: boom") {
		t.Fatalf("unexpected line: %q", buf.String())
	}
}
