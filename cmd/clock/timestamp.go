package clock

import (
	"fmt"

	"github.com/flarebyte/baldrick-timeteller/internal/chrono"
	cfgpkg "github.com/flarebyte/baldrick-timeteller/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagTimestampZone   string
	flagTimestampFormat string
)

var TimestampCmd = &cobra.Command{
	Use:   "timestamp",
	Short: "Print the current instant rendered via a strftime pattern",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		zone := flagTimestampZone
		if zone == "" {
			zone = cfg.Clock.Zone
		}
		format := flagTimestampFormat
		if format == "" {
			format = cfg.Clock.Format
		}
		ts, err := chrono.Timestamp(zone, format)
		if err != nil {
			return err
		}
		fmt.Println(ts)
		return nil
	},
}

func init() {
	TimestampCmd.Flags().StringVar(&flagTimestampZone, "zone", "", "Timezone name (default UTC)")
	TimestampCmd.Flags().StringVar(&flagTimestampFormat, "format", "", "strftime pattern (default ISO-8601 with offset)")
}
