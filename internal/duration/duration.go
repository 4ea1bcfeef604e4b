// Package duration computes and renders calendar-aware durations between two
// instants.
package duration

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/flarebyte/baldrick-timeteller/internal/chrono"
)

// Delta is the calendar-correct decomposition of the gap between two ordered
// instants. Years and months absorb whole calendar months first, so Days
// stays below the length of the month being crossed; the time fields come
// from uniform arithmetic on the remainder. All fields are non-negative.
type Delta struct {
	Years        int
	Months       int
	Days         int
	Hours        int
	Minutes      int
	Seconds      int
	Microseconds int
}

// Duration is an immutable pair of instants (start ≤ end, swapped at
// construction when needed) together with their calendar decomposition.
// Every accessor is a pure projection; nothing is settable.
type Duration struct {
	start chrono.Instant
	end   chrono.Instant
	delta Delta
}

// Formatter renders a Duration into a caller-defined string.
type Formatter func(*Duration) string

// New parses both values with the given parser (strict-only when nil) and
// returns the duration between them. Argument order does not matter.
func New(p *chrono.Parser, start, end any) (*Duration, error) {
	if p == nil {
		p = chrono.NewParser(nil)
	}
	a, err := p.Parse(start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	b, err := p.Parse(end)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	return Between(a, b)
}

// Between returns the duration between two instants, ordering them so that
// start ≤ end. Mixing offset-naive and offset-aware instants is an error.
func Between(a, b chrono.Instant) (*Duration, error) {
	if a.Aware() != b.Aware() {
		return nil, chrono.ErrIncomparable
	}
	if b.Before(a) {
		a, b = b, a
	}
	return &Duration{start: a, end: b, delta: decompose(a, b)}, nil
}

// decompose splits the gap lo → hi (lo ≤ hi) into whole calendar months
// first, backing off when the clamped month step overshoots, then whole days
// and a uniform time remainder. Adding (years, months, days) calendar-wise to
// lo and then the time fields reproduces hi exactly.
func decompose(lo, hi chrono.Instant) Delta {
	lt, ht := lo.Time(), hi.Time()
	months := (ht.Year()-lt.Year())*12 + int(ht.Month()) - int(lt.Month())
	anchor := lo.AddMonths(months)
	if anchor.Time().After(ht) {
		months--
		anchor = lo.AddMonths(months)
	}
	rem := hi.Sub(anchor)
	days := rem / (24 * time.Hour)
	rem -= days * 24 * time.Hour
	hours := rem / time.Hour
	rem -= hours * time.Hour
	minutes := rem / time.Minute
	rem -= minutes * time.Minute
	seconds := rem / time.Second
	rem -= seconds * time.Second
	return Delta{
		Years:        months / 12,
		Months:       months % 12,
		Days:         int(days),
		Hours:        int(hours),
		Minutes:      int(minutes),
		Seconds:      int(seconds),
		Microseconds: int(rem / time.Microsecond),
	}
}

// Start returns the earlier instant.
func (d *Duration) Start() chrono.Instant { return d.start }

// End returns the later instant.
func (d *Duration) End() chrono.Instant { return d.end }

// Years returns the number of whole years between start and end.
func (d *Duration) Years() int { return d.delta.Years }

// Months returns the number of whole months, excluding years.
func (d *Duration) Months() int { return d.delta.Months }

// Days returns the number of days, excluding months and years.
func (d *Duration) Days() int { return d.delta.Days }

// Hours returns the number of hours, excluding days.
func (d *Duration) Hours() int { return d.delta.Hours }

// Minutes returns the number of minutes, excluding hours.
func (d *Duration) Minutes() int { return d.delta.Minutes }

// Seconds returns the remaining whole seconds, excluding minutes.
func (d *Duration) Seconds() int { return d.delta.Seconds }

// Microseconds returns the number of microseconds, excluding seconds.
func (d *Duration) Microseconds() int { return d.delta.Microseconds }

// TotalSeconds returns the exact elapsed wall-clock seconds between start
// and end. This is the one uniform measure; it is not the naive sum of the
// calendar fields, since years and months vary in length.
func (d *Duration) TotalSeconds() float64 {
	return d.end.Sub(d.start).Seconds()
}

// IsZero reports whether every field of the decomposition is zero.
func (d *Duration) IsZero() bool {
	return d.delta == Delta{}
}

// FormattedSeconds renders seconds and microseconds as "S" or "S.ffffff"
// with trailing zeros stripped, and the decimal point stripped when nothing
// remains after it.
func (d *Duration) FormattedSeconds() string {
	if d.delta.Microseconds != 0 {
		v := fmt.Sprintf("%d.%06d", d.delta.Seconds, d.delta.Microseconds)
		v = strings.TrimRight(v, "0")
		return strings.TrimRight(v, ".")
	}
	if d.delta.Seconds != 0 {
		return strconv.Itoa(d.delta.Seconds)
	}
	return "0"
}

func (d *Duration) String() string { return d.AsDefault() }

// secondsPart merges seconds and microseconds into a single rendered part.
// A literal "0<unit>" appears only when it would be the sole part, so a
// truly zero duration still renders while "1y 0s" never happens.
func (d *Duration) secondsPart(numParts int, unit string) string {
	if fs := d.FormattedSeconds(); fs != "0" {
		return fs + unit
	}
	if numParts == 0 {
		return "0" + unit
	}
	return ""
}

// AsDefault renders the duration as a human-readable string such as
// "1y 2mo 3d 4h 5m 6s", omitting zero-valued parts.
func (d *Duration) AsDefault() string {
	var parts []string
	if d.delta.Years != 0 {
		parts = append(parts, fmt.Sprintf("%dy", d.delta.Years))
	}
	if d.delta.Months != 0 {
		parts = append(parts, fmt.Sprintf("%dmo", d.delta.Months))
	}
	if d.delta.Days != 0 {
		parts = append(parts, fmt.Sprintf("%dd", d.delta.Days))
	}
	if d.delta.Hours != 0 {
		parts = append(parts, fmt.Sprintf("%dh", d.delta.Hours))
	}
	if d.delta.Minutes != 0 {
		parts = append(parts, fmt.Sprintf("%dm", d.delta.Minutes))
	}
	if sp := d.secondsPart(len(parts), "s"); sp != "" {
		parts = append(parts, sp)
	}
	return strings.Join(parts, " ")
}

// AsCompactDays renders a compact string with days as the largest unit,
// recomputed from the total elapsed time with fixed 24h days; years and
// months do not appear.
func (d *Duration) AsCompactDays() string {
	total := int(math.Round(d.TotalSeconds()))
	minutes := total / 60
	hours := minutes / 60
	minutes %= 60
	days := hours / 24
	hours %= 24

	var parts []string
	if days != 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours != 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes != 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if sp := d.secondsPart(len(parts), "s"); sp != "" {
		parts = append(parts, sp)
	}
	return strings.Join(parts, " ")
}

// AsCompactWeeks renders like AsDefault but splits the day count into weeks
// and remainder days.
func (d *Duration) AsCompactWeeks() string {
	weeks, days := d.delta.Days/7, d.delta.Days%7

	var parts []string
	if d.delta.Years != 0 {
		parts = append(parts, fmt.Sprintf("%dy", d.delta.Years))
	}
	if d.delta.Months != 0 {
		parts = append(parts, fmt.Sprintf("%dmo", d.delta.Months))
	}
	if weeks != 0 {
		parts = append(parts, fmt.Sprintf("%dw", weeks))
	}
	if days != 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if d.delta.Hours != 0 {
		parts = append(parts, fmt.Sprintf("%dh", d.delta.Hours))
	}
	if d.delta.Minutes != 0 {
		parts = append(parts, fmt.Sprintf("%dm", d.delta.Minutes))
	}
	if sp := d.secondsPart(len(parts), "s"); sp != "" {
		parts = append(parts, sp)
	}
	return strings.Join(parts, " ")
}

// AsISO renders an ISO-8601 duration: date part PnYnMnD, time part preceded
// by T only when a time field is non-zero. The all-zero duration renders as
// exactly "PT0S".
func (d *Duration) AsISO() string {
	var dateParts, timeParts []string
	if d.delta.Years != 0 {
		dateParts = append(dateParts, fmt.Sprintf("%dY", d.delta.Years))
	}
	if d.delta.Months != 0 {
		dateParts = append(dateParts, fmt.Sprintf("%dM", d.delta.Months))
	}
	if d.delta.Days != 0 {
		dateParts = append(dateParts, fmt.Sprintf("%dD", d.delta.Days))
	}
	if d.delta.Hours != 0 {
		timeParts = append(timeParts, fmt.Sprintf("%dH", d.delta.Hours))
	}
	if d.delta.Minutes != 0 {
		timeParts = append(timeParts, fmt.Sprintf("%dM", d.delta.Minutes))
	}
	if sp := d.secondsPart(len(timeParts), "S"); sp != "0S" && sp != "" {
		timeParts = append(timeParts, sp)
	}
	if len(dateParts) == 0 && len(timeParts) == 0 {
		timeParts = append(timeParts, "0S")
	}

	var b strings.Builder
	b.WriteString("P")
	b.WriteString(strings.Join(dateParts, ""))
	if len(timeParts) > 0 {
		b.WriteString("T")
		b.WriteString(strings.Join(timeParts, ""))
	}
	return b.String()
}

// AsTotalSeconds renders the rounded total seconds, thousands-grouped, with
// an "s" suffix (for example "86_400s").
func (d *Duration) AsTotalSeconds() string {
	return GroupThousands(int(math.Round(d.TotalSeconds()))) + "s"
}

// AsCustom renders the duration through a caller-supplied formatter.
func (d *Duration) AsCustom(f Formatter) string {
	return f(d)
}

// GroupThousands formats n with "_" separators between thousands groups.
func GroupThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('_')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
