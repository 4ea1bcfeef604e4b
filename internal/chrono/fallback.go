package chrono

import (
	"errors"
	"fmt"
	"time"
)

// DefaultAnchor fills in date/time components missing from a natural-language
// expression ("March 3" resolves to year 1900), keeping partial inputs
// deterministic.
var DefaultAnchor = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Interpreter is the natural-language collaborator behind the fallback
// parser. Implementations resolve a free-form expression against the anchor
// and return a wall-clock time, treated as offset-naive.
type Interpreter interface {
	Interpret(s string, anchor time.Time) (time.Time, error)
}

// Parser parses date/time-like values, retrying unrecognized strings against
// a natural-language interpreter. The retry is a deterministic one-shot
// fallback: it fires only for unrecognized strings, never for values of the
// wrong type, and never loops.
type Parser struct {
	interp Interpreter
}

// NewParser returns a Parser backed by the given interpreter. A nil
// interpreter yields a strict-only parser.
func NewParser(interp Interpreter) *Parser {
	return &Parser{interp: interp}
}

// Parse behaves like the package-level Parse, delegating unrecognized
// strings to the interpreter anchored at DefaultAnchor.
func (p *Parser) Parse(value any, formats ...string) (Instant, error) {
	ins, err := Parse(value, formats...)
	if err == nil {
		return ins, nil
	}
	if p.interp == nil || !errors.Is(err, ErrUnrecognized) {
		return Instant{}, err
	}
	s, ok := value.(string)
	if !ok {
		return Instant{}, err
	}
	t, ierr := p.interp.Interpret(s, DefaultAnchor)
	if ierr != nil {
		return Instant{}, fmt.Errorf("interpret %q: %w", s, ierr)
	}
	return naive(t), nil
}
