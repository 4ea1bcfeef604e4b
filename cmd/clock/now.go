package clock

import (
	"fmt"

	"github.com/flarebyte/baldrick-timeteller/internal/chrono"
	cfgpkg "github.com/flarebyte/baldrick-timeteller/internal/config"
	"github.com/spf13/cobra"
)

var flagNowZone string

var NowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current instant in a timezone",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		zone := flagNowZone
		if zone == "" {
			zone = cfg.Clock.Zone
		}
		ins, err := chrono.Now(zone)
		if err != nil {
			return err
		}
		fmt.Println(ins.String())
		return nil
	},
}

func init() {
	NowCmd.Flags().StringVar(&flagNowZone, "zone", "", "Timezone name (default UTC)")
}
