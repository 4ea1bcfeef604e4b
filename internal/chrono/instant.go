// Package chrono implements the date/time core: strict and fallback parsing,
// calendar arithmetic, and clock helpers. All values are immutable; every
// operation returns a new Instant.
package chrono

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnsupportedType reports a value whose shape is fundamentally wrong
	// for the operation (not a string, time.Time, civil value or Instant).
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrUnrecognized reports a string that matches no accepted grammar.
	ErrUnrecognized = errors.New("unrecognized date/time string")
	// ErrUnknownUnit reports an unrecognized unit name.
	ErrUnknownUnit = errors.New("invalid choice")
	// ErrUnknownZone reports a timezone name that does not resolve.
	ErrUnknownZone = errors.New("unknown timezone")
	// ErrIncomparable reports a mix of offset-naive and offset-aware instants.
	ErrIncomparable = errors.New("cannot mix offset-naive and offset-aware instants")
)

// sentinelDate anchors time-only values so that deltas between them reduce to
// ordinary date arithmetic.
var sentinelDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Instant is a calendar date and wall-clock time with microsecond resolution,
// optionally carrying a fixed UTC offset. Offset-naive instants are stored on
// a UTC wall clock but compare only among themselves.
type Instant struct {
	t     time.Time
	aware bool
}

// fixedZone returns a fixed-offset location labelled the way parsed offsets
// surface to callers: "UTC" for a zero offset, otherwise "UTC±HH:MM".
func fixedZone(offsetSeconds int) *time.Location {
	if offsetSeconds == 0 {
		return time.UTC
	}
	sign := byte('+')
	abs := offsetSeconds
	if abs < 0 {
		sign = '-'
		abs = -abs
	}
	name := fmt.Sprintf("UTC%c%02d:%02d", sign, abs/3600, abs%3600/60)
	return time.FixedZone(name, offsetSeconds)
}

// FromTime builds an offset-aware Instant from t, pinning its current UTC
// offset as a fixed zone. Sub-microsecond precision is discarded.
func FromTime(t time.Time) Instant {
	_, off := t.Zone()
	return Instant{t: t.In(fixedZone(off)).Truncate(time.Microsecond), aware: true}
}

// naive wraps a wall-clock time as an offset-naive Instant.
func naive(t time.Time) Instant {
	if t.Location() != time.UTC {
		y, m, d := t.Date()
		t = time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	}
	return Instant{t: t.Truncate(time.Microsecond)}
}

// Time returns the underlying time value. For offset-aware instants its
// location is the fixed zone the instant was parsed with.
func (i Instant) Time() time.Time { return i.t }

// Aware reports whether the instant carries a UTC offset.
func (i Instant) Aware() bool { return i.aware }

// Zone returns the offset label ("UTC", "UTC+01:00", ...) or "" when naive.
func (i Instant) Zone() string {
	if !i.aware {
		return ""
	}
	name, _ := i.t.Zone()
	return name
}

// Equal reports whether both instants denote the same point in time.
func (i Instant) Equal(o Instant) bool { return i.t.Equal(o.t) }

// Before reports whether i precedes o in absolute time.
func (i Instant) Before(o Instant) bool { return i.t.Before(o.t) }

// Sub returns the exact elapsed time between two instants.
func (i Instant) Sub(o Instant) time.Duration { return i.t.Sub(o.t) }

// Weekday returns the day of the week of the instant's wall clock.
func (i Instant) Weekday() time.Weekday { return i.t.Weekday() }

// Microsecond returns the microsecond component (0-999999).
func (i Instant) Microsecond() int { return i.t.Nanosecond() / 1000 }

// midnight reports whether the time of day is exactly 00:00:00.000000.
func (i Instant) midnight() bool {
	return i.t.Hour() == 0 && i.t.Minute() == 0 && i.t.Second() == 0 && i.t.Nanosecond() == 0
}

// AddMonths steps the instant by n calendar months, clamping the day of month
// when the target month is shorter (Jan 31 +1 month is Feb 28/29, never a
// March date).
func (i Instant) AddMonths(n int) Instant {
	return Instant{t: addMonths(i.t, n), aware: i.aware}
}

// Add shifts the instant by a fixed amount of uniform time.
func (i Instant) Add(d time.Duration) Instant {
	return Instant{t: i.t.Add(d), aware: i.aware}
}

// String renders the instant the way Isoformat does.
func (i Instant) String() string { return isoformat(i) }

func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	total := y*12 + int(m) - 1 + n
	ny, nm := total/12, total%12
	if nm < 0 {
		nm += 12
		ny--
	}
	month := time.Month(nm + 1)
	if last := daysIn(ny, month); d > last {
		d = last
	}
	return time.Date(ny, month, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ordered checks offset compatibility and returns the pair with a ≤ b,
// along with whether the arguments were swapped.
func ordered(a, b Instant) (Instant, Instant, bool, error) {
	if a.aware != b.aware {
		return Instant{}, Instant{}, false, ErrIncomparable
	}
	if b.Before(a) {
		return b, a, true, nil
	}
	return a, b, false, nil
}
