package clock

import (
	"fmt"

	"github.com/flarebyte/baldrick-timeteller/internal/chrono"
	"github.com/spf13/cobra"
)

var LastdayCmd = &cobra.Command{
	Use:   "lastday VALUE",
	Short: "Print midnight on the last day of the month containing VALUE",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ins, err := chrono.LastDay(args[0])
		if err != nil {
			return err
		}
		fmt.Println(ins.String())
		return nil
	},
}
