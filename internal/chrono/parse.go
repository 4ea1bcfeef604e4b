package chrono

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	timefmt "github.com/itchyny/timefmt-go"
)

var (
	// ISO-8601 offset suffix: Z, +HH:MM or -HH:MM.
	offsetSuffixRe = regexp.MustCompile(`(Z|[+-]\d{2}:\d{2})$`)
	// Fractional seconds beyond microsecond resolution (7-9 digits).
	longFractionRe = regexp.MustCompile(`([.,])(\d{7,9})$`)
)

// Parse converts a date/time-like value into an Instant.
//
// Structural values convert directly: a civil.Date becomes midnight on that
// date, a civil.Time becomes that time on the 1900-01-01 sentinel date, a
// civil.DateTime passes through as offset-naive, and a time.Time is taken as
// offset-aware with its current UTC offset pinned.
//
// Strings are matched against the given strptime formats when provided (first
// match wins). Without explicit formats, ISO-8601 offset suffixes are
// recognized first, then the fixed pattern registry is tried in order.
// Fractional seconds of 1-9 digits are accepted and truncated, not rounded,
// to microsecond resolution.
func Parse(value any, formats ...string) (Instant, error) {
	switch v := value.(type) {
	case Instant:
		return v, nil
	case time.Time:
		return FromTime(v), nil
	case civil.Date:
		return naive(time.Date(v.Year, v.Month, v.Day, 0, 0, 0, 0, time.UTC)), nil
	case civil.Time:
		return naive(time.Date(1900, time.January, 1, v.Hour, v.Minute, v.Second, v.Nanosecond, time.UTC)), nil
	case civil.DateTime:
		return naive(time.Date(v.Date.Year, v.Date.Month, v.Date.Day,
			v.Time.Hour, v.Time.Minute, v.Time.Second, v.Time.Nanosecond, time.UTC)), nil
	case string:
		return parseString(v, formats)
	default:
		return Instant{}, fmt.Errorf("%w %T; expected a string, time.Time, civil date/time value or chrono.Instant", ErrUnsupportedType, value)
	}
}

func parseString(s string, formats []string) (Instant, error) {
	if len(formats) > 0 {
		for _, f := range formats {
			v := s
			if strings.Contains(f, "%f") {
				v = truncateFraction(v)
			}
			if t, err := timefmt.Parse(v, f); err == nil {
				return naive(t), nil
			}
		}
		return Instant{}, fmt.Errorf("%w: %q does not match %v", ErrUnrecognized, s, formats)
	}

	// ISO-8601 offset forms first: strip the suffix, parse the remainder as
	// a naive value, then attach the fixed offset. Z, +00:00 and -00:00 all
	// normalize to UTC.
	if loc := offsetSuffixRe.FindStringIndex(s); loc != nil && loc[0] > 0 {
		if ins, ok := tryPatterns(s[:loc[0]], kindDate, kindDateTime, kindTime); ok {
			off := parseOffset(s[loc[0]:])
			t := ins.t
			t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), fixedZone(off))
			return Instant{t: t, aware: true}, nil
		}
	}

	if ins, ok := tryPatterns(s, kindDate, kindDateTime, kindTime); ok {
		return ins, nil
	}

	// A leading "T" marks a bare time string ("T12:30:00").
	if strings.HasPrefix(s, "T") {
		if ins, ok := tryPatterns(s[1:], kindTime); ok {
			return ins, nil
		}
	}

	return Instant{}, fmt.Errorf("%w: %q", ErrUnrecognized, s)
}

func tryPatterns(s string, kinds ...patternKind) (Instant, bool) {
	s = truncateFraction(s)
	for _, p := range patterns {
		match := false
		for _, k := range kinds {
			if p.kind == k {
				match = true
				break
			}
		}
		if !match {
			continue
		}
		if t, err := timefmt.Parse(s, p.layout); err == nil {
			return naive(t), true
		}
	}
	return Instant{}, false
}

// truncateFraction cuts fractional seconds of 7-9 digits down to the 6 the
// microsecond resolution can hold. Digits beyond 6 are discarded, never
// rounded.
func truncateFraction(s string) string {
	return longFractionRe.ReplaceAllStringFunc(s, func(m string) string {
		return m[:1] + m[1:7]
	})
}

// parseOffset converts a recognized suffix into seconds east of UTC.
func parseOffset(suffix string) int {
	if suffix == "Z" {
		return 0
	}
	sign := 1
	if suffix[0] == '-' {
		sign = -1
	}
	hh := int(suffix[1]-'0')*10 + int(suffix[2]-'0')
	mm := int(suffix[4]-'0')*10 + int(suffix[5]-'0')
	return sign * (hh*3600 + mm*60)
}
