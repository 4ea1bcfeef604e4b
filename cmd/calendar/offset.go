package calendar

import (
	"fmt"
	"strconv"

	"github.com/flarebyte/baldrick-timeteller/internal/chrono"
	"github.com/spf13/cobra"
)

var OffsetCmd = &cobra.Command{
	Use:   "offset REFERENCE AMOUNT UNIT",
	Short: "Shift a date or time by a number of calendar or fixed units",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("amount %q is not an integer", args[1])
		}
		ins, err := chrono.Offset(args[0], amount, args[2])
		if err != nil {
			return err
		}
		fmt.Println(ins.String())
		return nil
	},
}
