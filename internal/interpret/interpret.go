// Package interpret provides the production natural-language date/time
// interpreter used when strict parsing fails.
package interpret

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Interpreter resolves free-form English date/time expressions. Absolute
// forms ("May 8, 2009 5:57:51 PM") go through a lenient format scanner;
// relative and partial forms ("tomorrow", "March 3") are resolved against
// the anchor, which supplies any missing components.
type Interpreter struct {
	w *when.Parser
}

// New builds an interpreter with the English and common rule sets.
func New() *Interpreter {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Interpreter{w: w}
}

// Interpret resolves s against the anchor. It fails when no reading of the
// expression is found.
func (i *Interpreter) Interpret(s string, anchor time.Time) (time.Time, error) {
	if t, err := dateparse.ParseIn(s, anchor.Location()); err == nil {
		return t, nil
	}
	r, err := i.w.Parse(s, anchor)
	if err != nil {
		return time.Time{}, fmt.Errorf("interpret %q: %w", s, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("no date/time reading of %q", s)
	}
	return r.Time, nil
}
