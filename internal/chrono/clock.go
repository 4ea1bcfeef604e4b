package chrono

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	timefmt "github.com/itchyny/timefmt-go"
)

// nowFunc reads the system clock; tests swap it to pin the current instant.
var nowFunc = time.Now

// LoadZone resolves a timezone name against the host zone database (with the
// embedded fallback). An empty name resolves to UTC. An unresolvable name is
// reported as ErrUnknownZone; other lookup failures pass through wrapped.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		if strings.Contains(err.Error(), "unknown time zone") {
			return nil, fmt.Errorf("%w %q", ErrUnknownZone, name)
		}
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

// Now returns the current instant in the named zone (UTC when empty), always
// offset-aware with the zone's current UTC offset pinned.
func Now(zone string) (Instant, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return Instant{}, err
	}
	return FromTime(nowFunc().In(loc)), nil
}

// Timestamp renders the current instant in the named zone. An empty format
// yields ISO-8601 with an explicit offset; otherwise format is a
// strftime-style pattern handed to the formatter unchanged.
func Timestamp(zone, format string) (string, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return "", err
	}
	t := nowFunc().In(loc).Truncate(time.Microsecond)
	if format == "" {
		return isoDateTime(FromTime(t)), nil
	}
	return timefmt.Format(t, format), nil
}

// Isoformat renders a date/time-like value in ISO-8601 form: date-only when
// the time of day is exactly midnight, otherwise full date and time with
// microseconds only when non-zero and the offset only when the value is
// offset-aware.
func Isoformat(value any) (string, error) {
	ins, err := Parse(value)
	if err != nil {
		return "", err
	}
	return isoformat(ins), nil
}

func isoformat(ins Instant) string {
	if ins.midnight() {
		return ins.t.Format("2006-01-02")
	}
	return isoDateTime(ins)
}

func isoDateTime(ins Instant) string {
	var b strings.Builder
	b.WriteString(ins.t.Format("2006-01-02T15:04:05"))
	if us := ins.Microsecond(); us != 0 {
		fmt.Fprintf(&b, ".%06d", us)
	}
	if ins.aware {
		b.WriteString(ins.t.Format("-07:00"))
	}
	return b.String()
}

// LastDay returns midnight on the last calendar day of the month containing
// the input, preserving the input's offset.
func LastDay(value any) (Instant, error) {
	ins, err := Parse(value)
	if err != nil {
		return Instant{}, err
	}
	t := ins.t
	last := daysIn(t.Year(), t.Month())
	return Instant{
		t:     time.Date(t.Year(), t.Month(), last, 0, 0, 0, 0, t.Location()),
		aware: ins.aware,
	}, nil
}
