package calendar

import (
	"fmt"

	"github.com/flarebyte/baldrick-timeteller/internal/chrono"
	"github.com/spf13/cobra"
)

var DatesubCmd = &cobra.Command{
	Use:   "datesub UNIT START END",
	Short: "Count whole calendar units between two dates, truncated toward START",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := chrono.Datesub(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Println(n)
		return nil
	},
}
