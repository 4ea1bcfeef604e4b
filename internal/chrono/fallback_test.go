package chrono

import (
	"errors"
	"testing"
	"time"
)

type stubInterpreter struct {
	calls  int
	lastS  string
	anchor time.Time
	result time.Time
	err    error
}

func (s *stubInterpreter) Interpret(v string, anchor time.Time) (time.Time, error) {
	s.calls++
	s.lastS = v
	s.anchor = anchor
	return s.result, s.err
}

func TestParserStrictHitSkipsInterpreter(t *testing.T) {
	stub := &stubInterpreter{}
	p := NewParser(stub)
	ins, err := p.Parse("2024-07-01T23:59:59")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !ins.Time().Equal(time.Date(2024, 7, 1, 23, 59, 59, 0, time.UTC)) {
		t.Fatalf("Parse = %v", ins.Time())
	}
	if stub.calls != 0 {
		t.Fatalf("interpreter consulted %d times on a strict hit", stub.calls)
	}
}

func TestParserFallsBackOnUnrecognized(t *testing.T) {
	stub := &stubInterpreter{result: time.Date(2020, 3, 3, 17, 30, 0, 0, time.UTC)}
	p := NewParser(stub)
	ins, err := p.Parse("March 3rd, 2020 5:30 PM")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if stub.calls != 1 || stub.lastS != "March 3rd, 2020 5:30 PM" {
		t.Fatalf("interpreter calls=%d input=%q", stub.calls, stub.lastS)
	}
	if !stub.anchor.Equal(DefaultAnchor) {
		t.Fatalf("anchor = %v, want %v", stub.anchor, DefaultAnchor)
	}
	if ins.Aware() {
		t.Fatal("fallback result should be offset-naive")
	}
	if !ins.Time().Equal(stub.result) {
		t.Fatalf("Parse = %v, want %v", ins.Time(), stub.result)
	}
}

func TestParserDoesNotFallBackOnTypeError(t *testing.T) {
	stub := &stubInterpreter{}
	p := NewParser(stub)
	if _, err := p.Parse(42); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if stub.calls != 0 {
		t.Fatal("interpreter consulted for a non-string value")
	}
}

func TestParserPropagatesInterpreterFailure(t *testing.T) {
	boom := errors.New("no reading")
	p := NewParser(&stubInterpreter{err: boom})
	if _, err := p.Parse("gibberish"); !errors.Is(err, boom) {
		t.Fatalf("expected interpreter error, got %v", err)
	}
}

func TestParserNilInterpreterIsStrictOnly(t *testing.T) {
	p := NewParser(nil)
	if _, err := p.Parse("March 3"); !errors.Is(err, ErrUnrecognized) {
		t.Fatalf("expected ErrUnrecognized, got %v", err)
	}
	if _, err := p.Parse("2024-07-01"); err != nil {
		t.Fatalf("strict parse failed: %v", err)
	}
}

func TestParserExplicitFormatsStillFallBack(t *testing.T) {
	stub := &stubInterpreter{result: time.Date(1900, 3, 3, 0, 0, 0, 0, time.UTC)}
	p := NewParser(stub)
	ins, err := p.Parse("March 3", "%Y-%m-%d")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if stub.calls != 1 {
		t.Fatalf("interpreter calls = %d", stub.calls)
	}
	if !ins.Time().Equal(stub.result) {
		t.Fatalf("Parse = %v", ins.Time())
	}
}
