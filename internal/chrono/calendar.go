package chrono

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

// Offset units. Fixed-duration units shift by exact multiples of their base
// duration; calendar units step months or years with day-of-month clamping.
type offsetUnit int

const (
	unitMicroseconds offsetUnit = iota
	unitMilliseconds
	unitSeconds
	unitMinutes
	unitHours
	unitDays
	unitWeeks
	unitMonths
	unitQuarters
	unitYears
	unitDecades
)

var offsetUnitNames = map[string]offsetUnit{
	"microsecond": unitMicroseconds, "microseconds": unitMicroseconds,
	"millisecond": unitMilliseconds, "milliseconds": unitMilliseconds,
	"second": unitSeconds, "seconds": unitSeconds,
	"minute": unitMinutes, "minutes": unitMinutes,
	"hour": unitHours, "hours": unitHours,
	"day": unitDays, "days": unitDays,
	"week": unitWeeks, "weeks": unitWeeks,
	"month": unitMonths, "months": unitMonths,
	"quarter": unitQuarters, "quarters": unitQuarters,
	"year": unitYears, "years": unitYears,
	"decade": unitDecades, "decades": unitDecades,
}

func resolveOffsetUnit(name string) (offsetUnit, error) {
	u, ok := offsetUnitNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w %q; expected a value such as \"days\", \"months\" or \"years\"", ErrUnknownUnit, name)
	}
	return u, nil
}

var fixedUnitBase = map[offsetUnit]time.Duration{
	unitMicroseconds: time.Microsecond,
	unitMilliseconds: time.Millisecond,
	unitSeconds:      time.Second,
	unitMinutes:      time.Minute,
	unitHours:        time.Hour,
	unitDays:         24 * time.Hour,
	unitWeeks:        7 * 24 * time.Hour,
}

var calendarUnitMonths = map[offsetUnit]int{
	unitMonths:   1,
	unitQuarters: 3,
	unitYears:    12,
	unitDecades:  120,
}

// Offset shifts a date/time-like reference by amount units. Unit names are
// case-insensitive, whitespace-tolerant, and accepted in singular or plural
// form. Fixed-duration units (microseconds through weeks) move by uniform
// time; months, quarters, years and decades step the calendar, clamping the
// day of month when the target month is shorter. A zero amount returns the
// converted reference unchanged.
func Offset(reference any, amount int, unit string) (Instant, error) {
	ins, err := Parse(reference)
	if err != nil {
		return Instant{}, err
	}
	u, err := resolveOffsetUnit(unit)
	if err != nil {
		return Instant{}, err
	}
	return applyOffset(ins, amount, u), nil
}

func applyOffset(ins Instant, amount int, u offsetUnit) Instant {
	if base, ok := fixedUnitBase[u]; ok {
		return ins.Add(time.Duration(amount) * base)
	}
	return ins.AddMonths(amount * calendarUnitMonths[u])
}

// Count returns an infinite arithmetic progression of instants starting at
// the converted reference, each step offset by amount units. Zero and
// negative steps are allowed. Unit and reference errors surface before the
// first element is produced.
func Count(reference any, amount int, unit string) (iter.Seq[Instant], error) {
	ins, err := Parse(reference)
	if err != nil {
		return nil, err
	}
	u, err := resolveOffsetUnit(unit)
	if err != nil {
		return nil, err
	}
	return func(yield func(Instant) bool) {
		cur := ins
		for {
			if !yield(cur) {
				return
			}
			cur = applyOffset(cur, amount, u)
		}
	}, nil
}

// Datesub unit families. The year, month and day aliases are matched
// case-sensitively; hour, minute and second aliases are matched after
// lowercasing.
type diffUnit int

const (
	diffYear diffUnit = iota
	diffMonth
	diffDay
	diffHour
	diffMinute
	diffSecond
)

var diffUnitNames = map[string]diffUnit{
	"year": diffYear, "years": diffYear, "y": diffYear, "yr": diffYear, "yrs": diffYear,
	"month": diffMonth, "months": diffMonth, "mon": diffMonth, "mons": diffMonth,
	"day": diffDay, "days": diffDay, "d": diffDay, "dayofmonth": diffDay,
}

var diffTimeUnitNames = map[string]diffUnit{
	"hour": diffHour, "hours": diffHour, "h": diffHour, "hr": diffHour, "hrs": diffHour,
	"min": diffMinute, "mins": diffMinute, "minute": diffMinute, "minutes": diffMinute,
	"sec": diffSecond, "secs": diffSecond, "second": diffSecond, "seconds": diffSecond, "s": diffSecond,
}

func resolveDiffUnit(name string) (diffUnit, error) {
	if u, ok := diffUnitNames[name]; ok {
		return u, nil
	}
	if u, ok := diffTimeUnitNames[strings.ToLower(name)]; ok {
		return u, nil
	}
	return 0, fmt.Errorf("%w %q for datesub", ErrUnknownUnit, name)
}

// Datesub returns the truncated, sign-aware count of whole calendar units
// between start and end: the number of whole units that can be added to
// start without passing end. The result is negated when end precedes start,
// so Datesub(u, a, b) == -Datesub(u, b, a) and Datesub(u, x, x) == 0.
func Datesub(unit string, start, end any) (int, error) {
	u, err := resolveDiffUnit(unit)
	if err != nil {
		return 0, err
	}
	a, err := Parse(start)
	if err != nil {
		return 0, err
	}
	b, err := Parse(end)
	if err != nil {
		return 0, err
	}
	lo, hi, swapped, err := ordered(a, b)
	if err != nil {
		return 0, err
	}
	n := wholeUnits(u, lo, hi)
	if swapped {
		n = -n
	}
	return n, nil
}

// wholeUnits counts whole units from lo up to hi (lo ≤ hi). Calendar units
// compute the naive field difference, then back off by one if stepping lo
// forward by that many units would overshoot hi.
func wholeUnits(u diffUnit, lo, hi Instant) int {
	switch u {
	case diffYear:
		n := hi.t.Year() - lo.t.Year()
		if lo.AddMonths(n * 12).t.After(hi.t) {
			n--
		}
		return n
	case diffMonth:
		n := (hi.t.Year()-lo.t.Year())*12 + int(hi.t.Month()) - int(lo.t.Month())
		if lo.AddMonths(n).t.After(hi.t) {
			n--
		}
		return n
	case diffDay:
		return int(hi.Sub(lo) / (24 * time.Hour))
	case diffHour:
		return int(hi.Sub(lo) / time.Hour)
	case diffMinute:
		return int(hi.Sub(lo) / time.Minute)
	default:
		return int(hi.Sub(lo) / time.Second)
	}
}
