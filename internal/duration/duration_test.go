package duration

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/flarebyte/baldrick-timeteller/internal/chrono"
)

func between(t *testing.T, start, end any) *Duration {
	t.Helper()
	d, err := New(nil, start, end)
	require.NoError(t, err)
	return d
}

func TestDecomposition(t *testing.T) {
	cases := []struct {
		start, end string
		delta      Delta
	}{
		{"2024-07-01", "2025-08-02", Delta{Years: 1, Months: 1, Days: 1}},
		{"2024-07-01T13:00:00", "2025-08-02T14:01:01", Delta{Years: 1, Months: 1, Days: 1, Hours: 1, Minutes: 1, Seconds: 1}},
		// month borrowing: Jan 31 to Mar 1 is a month and a day, not "30 days"
		{"2024-01-31", "2024-03-01", Delta{Months: 1, Days: 1}},
		{"2023-01-31", "2023-03-01", Delta{Months: 1, Days: 1}},
		{"2024-01-31", "2024-02-29", Delta{Months: 1}},
		{"2024-02-29", "2024-03-01", Delta{Days: 1}},
		{"2024-07-01", "2024-07-01", Delta{}},
		{"2024-07-01T12:00:00", "2024-07-01T12:00:01.500000", Delta{Seconds: 1, Microseconds: 500000}},
		{"12:30", "14:45:30", Delta{Hours: 2, Minutes: 15, Seconds: 30}},
	}
	for _, c := range cases {
		d := between(t, c.start, c.end)
		require.Equal(t, c.delta, Delta{
			Years:        d.Years(),
			Months:       d.Months(),
			Days:         d.Days(),
			Hours:        d.Hours(),
			Minutes:      d.Minutes(),
			Seconds:      d.Seconds(),
			Microseconds: d.Microseconds(),
		}, "decompose(%s, %s)", c.start, c.end)
	}
}

func TestReassemblyInvariant(t *testing.T) {
	pairs := [][2]string{
		{"2024-07-01", "2025-08-02"},
		{"2024-01-31", "2024-03-01"},
		{"2020-02-29", "2021-03-01"},
		{"2024-07-01T13:00:00", "2025-08-02T14:01:01.123456"},
		{"2023-12-31T23:59:59", "2024-01-01T00:00:01"},
	}
	for _, p := range pairs {
		d := between(t, p[0], p[1])
		rebuilt := d.Start().
			AddMonths(d.Years()*12 + d.Months()).
			Add(time.Duration(d.Days())*24*time.Hour +
				time.Duration(d.Hours())*time.Hour +
				time.Duration(d.Minutes())*time.Minute +
				time.Duration(d.Seconds())*time.Second +
				time.Duration(d.Microseconds())*time.Microsecond)
		require.True(t, rebuilt.Equal(d.End()),
			"start + delta should reproduce end for (%s, %s): got %v want %v",
			p[0], p[1], rebuilt.Time(), d.End().Time())
	}
}

func TestOrderIndependence(t *testing.T) {
	a := between(t, "2024-07-01", "2025-08-02")
	b := between(t, "2025-08-02", "2024-07-01")
	require.True(t, a.Start().Equal(b.Start()))
	require.True(t, a.End().Equal(b.End()))
	require.Equal(t, a.AsDefault(), b.AsDefault())
	require.Equal(t, a.AsISO(), b.AsISO())
	require.Equal(t, a.TotalSeconds(), b.TotalSeconds())
}

func TestMixedAwarenessRejected(t *testing.T) {
	naive, err := chrono.Parse("2024-07-01")
	require.NoError(t, err)
	aware, err := chrono.Parse("2024-07-02T00:00:00Z")
	require.NoError(t, err)
	_, err = Between(naive, aware)
	require.ErrorIs(t, err, chrono.ErrIncomparable)
}

func TestAsDefault(t *testing.T) {
	cases := []struct {
		start, end string
		expected   string
	}{
		{"2024-07-01", "2025-08-02", "1y 1mo 1d"},
		{"2024-07-01T13:00:00", "2025-08-02T14:01:01", "1y 1mo 1d 1h 1m 1s"},
		{"2024-07-01", "2024-07-01", "0s"},
		{"2024-07-01T12:00:00", "2024-07-01T12:00:01.500000", "1.5s"},
		{"2024-07-01T12:00:00", "2024-07-01T12:30:00", "30m"},
		{"2024-01-31", "2024-03-01", "1mo 1d"},
	}
	for _, c := range cases {
		d := between(t, c.start, c.end)
		require.Equal(t, c.expected, d.AsDefault(), "AsDefault(%s, %s)", c.start, c.end)
		require.Equal(t, c.expected, d.String())
	}
}

func TestAsCompactDays(t *testing.T) {
	cases := []struct {
		start, end string
		expected   string
	}{
		{"2024-07-01T13:00:00", "2025-08-02T14:01:01", "397d 1h 1m 1s"},
		{"2024-07-01", "2024-07-02", "1d"},
		{"2024-07-01T12:00:00", "2024-07-01T14:30:00", "2h 30m"},
		{"2024-07-01", "2024-07-01", "0s"},
	}
	for _, c := range cases {
		d := between(t, c.start, c.end)
		require.Equal(t, c.expected, d.AsCompactDays(), "AsCompactDays(%s, %s)", c.start, c.end)
	}
}

func TestAsCompactWeeks(t *testing.T) {
	cases := []struct {
		start, end string
		expected   string
	}{
		{"2024-07-01", "2024-07-25", "3w 3d"},
		{"2024-07-01", "2024-07-08", "1w"},
		{"2024-07-01", "2025-08-02", "1y 1mo 1d"},
		{"2024-07-01", "2024-08-31", "1mo 4w 2d"},
		{"2024-07-01", "2024-07-01", "0s"},
	}
	for _, c := range cases {
		d := between(t, c.start, c.end)
		require.Equal(t, c.expected, d.AsCompactWeeks(), "AsCompactWeeks(%s, %s)", c.start, c.end)
	}
}

func TestAsISO(t *testing.T) {
	cases := []struct {
		start, end string
		expected   string
	}{
		{"2024-07-01", "2025-08-02", "P1Y1M1D"},
		{"2024-07-01T13:00:00", "2025-08-02T14:01:01", "P1Y1M1DT1H1M1S"},
		{"2024-07-01", "2024-07-01", "PT0S"},
		{"2024-07-01T12:00:00", "2024-07-01T12:30:00", "PT30M"},
		{"2024-07-01T12:00:00", "2024-07-01T12:00:01.500000", "PT1.5S"},
		{"2024-01-31", "2024-03-01", "P1M1D"},
	}
	for _, c := range cases {
		d := between(t, c.start, c.end)
		require.Equal(t, c.expected, d.AsISO(), "AsISO(%s, %s)", c.start, c.end)
	}
}

func TestAsTotalSeconds(t *testing.T) {
	cases := []struct {
		start, end string
		expected   string
	}{
		{"2024-07-01", "2024-07-02", "86_400s"},
		{"2024-07-01T12:00:00", "2024-07-01T12:00:45", "45s"},
		{"2024-07-01", "2024-07-01", "0s"},
		{"2024-07-01", "2025-07-01", "31_536_000s"},
	}
	for _, c := range cases {
		d := between(t, c.start, c.end)
		require.Equal(t, c.expected, d.AsTotalSeconds(), "AsTotalSeconds(%s, %s)", c.start, c.end)
	}
}

func TestAsCustom(t *testing.T) {
	d := between(t, "2024-07-01", "2025-08-02")
	got := d.AsCustom(func(d *Duration) string {
		return fmt.Sprintf("%d/%d/%d", d.Years(), d.Months(), d.Days())
	})
	require.Equal(t, "1/1/1", got)
}

func TestFormattedSeconds(t *testing.T) {
	cases := []struct {
		start, end string
		expected   string
	}{
		{"2024-07-01", "2024-07-01", "0"},
		{"12:00:00", "12:00:45", "45"},
		{"12:00:00", "12:00:01.500000", "1.5"},
		{"12:00:00", "12:00:00.000001", "0.000001"},
		{"12:00:00", "12:00:00.123450", "0.12345"},
		{"12:00:00", "12:00:02.030000", "2.03"},
	}
	for _, c := range cases {
		d := between(t, c.start, c.end)
		got := d.FormattedSeconds()
		require.Equal(t, c.expected, got, "FormattedSeconds(%s, %s)", c.start, c.end)
		// never a trailing zero after the point, never a bare trailing point
		require.NotRegexp(t, `\.\d*0$`, got)
		require.NotRegexp(t, `\.$`, got)
	}
}

func TestTotalSecondsAndIsZero(t *testing.T) {
	d := between(t, "2024-07-01", "2024-07-02")
	require.Equal(t, 86400.0, d.TotalSeconds())
	require.False(t, d.IsZero())

	z := between(t, "2024-07-01T12:00:00", "2024-07-01T12:00:00")
	require.True(t, z.IsZero())
	require.Equal(t, 0.0, z.TotalSeconds())
}

func TestNewParseErrors(t *testing.T) {
	_, err := New(nil, "not a date", "2024-07-01")
	require.ErrorIs(t, err, chrono.ErrUnrecognized)
	require.ErrorContains(t, err, "start")

	_, err = New(nil, "2024-07-01", 42)
	require.ErrorIs(t, err, chrono.ErrUnsupportedType)
	require.ErrorContains(t, err, "end")
}

func TestGroupThousands(t *testing.T) {
	cases := map[int]string{
		0:         "0",
		7:         "7",
		999:       "999",
		1000:      "1_000",
		86400:     "86_400",
		1234567:   "1_234_567",
		100000000: "100_000_000",
	}
	for n, expected := range cases {
		require.Equal(t, expected, GroupThousands(n), "GroupThousands(%d)", n)
	}
}
