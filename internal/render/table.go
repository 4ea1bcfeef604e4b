// Package render prints duration summaries as terminal tables.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/flarebyte/baldrick-timeteller/internal/chrono"
	"github.com/flarebyte/baldrick-timeteller/internal/duration"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"
)

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB270"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEC71"))
	commentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// Options selects the duration renderer and whether rows are colorized.
type Options struct {
	Output string // default|compact-days|compact-weeks|iso|total-seconds
	Color  string // auto|always|never
}

// Format renders a duration with the named renderer.
func Format(d *duration.Duration, output string) (string, error) {
	switch output {
	case "", "default":
		return d.AsDefault(), nil
	case "compact-days":
		return d.AsCompactDays(), nil
	case "compact-weeks":
		return d.AsCompactWeeks(), nil
	case "iso":
		return d.AsISO(), nil
	case "total-seconds":
		return d.AsTotalSeconds(), nil
	default:
		return "", fmt.Errorf("unknown output %q; expected default, compact-days, compact-weeks, iso or total-seconds", output)
	}
}

// DayCountText renders the inclusive day count row value ("1 day",
// "1_000 days").
func DayCountText(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%s days", duration.GroupThousands(days))
}

func colorize(color string, w io.Writer) bool {
	switch color {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

// DurationTable writes the duration summary table: start and end with their
// weekdays, the rendered duration, and the inclusive day count.
func DurationTable(w io.Writer, d *duration.Duration, opts Options) error {
	rendered, err := Format(d, opts.Output)
	if err != nil {
		return err
	}
	days, err := chrono.Datesub("days", d.Start(), d.End())
	if err != nil {
		return err
	}

	label := func(s string) string { return s }
	value := label
	comment := label
	if colorize(opts.Color, w) {
		label = func(s string) string { return labelStyle.Render(s) }
		value = func(s string) string { return valueStyle.Render(s) }
		comment = func(s string) string { return commentStyle.Render(s) }
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"", "VALUE", "COMMENT"})
	tw.SetAutoWrapText(false)
	for _, row := range []struct {
		name    string
		ins     chrono.Instant
	}{{"start", d.Start()}, {"end", d.End()}} {
		tw.Append([]string{
			label(row.name),
			value(row.ins.String()),
			comment(row.ins.Weekday().String()),
		})
	}
	tw.Append([]string{label("duration"), value(rendered), comment("elapsed time")})
	tw.Append([]string{label("day count"), value(DayCountText(days + 1)), comment("start/end incl.")})
	tw.Render()
	return nil
}
