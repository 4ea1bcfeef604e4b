package duration

import (
	"encoding/json"
	"os"
	"time"

	"cloud.google.com/go/civil"
	"github.com/flarebyte/baldrick-timeteller/internal/chrono"
	cfgpkg "github.com/flarebyte/baldrick-timeteller/internal/config"
	dur "github.com/flarebyte/baldrick-timeteller/internal/duration"
	"github.com/flarebyte/baldrick-timeteller/internal/interpret"
	"github.com/flarebyte/baldrick-timeteller/internal/render"
	"github.com/spf13/cobra"
)

var (
	flagOutput string
	flagColor  string
	flagJSON   bool
)

var DurationCmd = &cobra.Command{
	Use:   "duration START [END]",
	Short: "Print a duration summary between two dates or times",
	Long:  "Print a duration summary between two dates or times. END defaults to today when START is date-only, otherwise to the current instant.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		p := chrono.NewParser(interpret.New())
		start, err := p.Parse(args[0])
		if err != nil {
			return err
		}
		end, err := endValue(p, start, args)
		if err != nil {
			return err
		}
		d, err := dur.Between(start, end)
		if err != nil {
			return err
		}

		output := flagOutput
		if output == "" {
			output = cfg.Duration.Output
		}
		color := flagColor
		if color == "" {
			color = cfg.Duration.Color
		}

		if flagJSON {
			rendered, err := render.Format(d, output)
			if err != nil {
				return err
			}
			days, err := chrono.Datesub("days", d.Start(), d.End())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"start":    d.Start().String(),
				"end":      d.End().String(),
				"duration": rendered,
				"iso":      d.AsISO(),
				"dayCount": days + 1,
			})
		}
		return render.DurationTable(os.Stdout, d, render.Options{Output: output, Color: color})
	},
}

// endValue resolves the END argument, defaulting to today for date-only
// starts and to the current instant otherwise, matching the start's offset
// awareness so the pair stays comparable.
func endValue(p *chrono.Parser, start chrono.Instant, args []string) (chrono.Instant, error) {
	if len(args) == 2 {
		return p.Parse(args[1])
	}
	if start.Aware() {
		return chrono.Now("")
	}
	now := time.Now()
	if len(start.String()) == len("2006-01-02") {
		return p.Parse(civil.DateOf(now))
	}
	return p.Parse(civil.DateTimeOf(now))
}

func init() {
	DurationCmd.Flags().StringVar(&flagOutput, "output", "", "Renderer: default, compact-days, compact-weeks, iso or total-seconds")
	DurationCmd.Flags().StringVar(&flagColor, "color", "", "Colorize the table: auto, always or never")
	DurationCmd.Flags().BoolVar(&flagJSON, "json", false, "Output in JSON")
}
