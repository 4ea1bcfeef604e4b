package calendar

import (
	"fmt"
	"strconv"

	"github.com/flarebyte/baldrick-timeteller/internal/chrono"
	"github.com/spf13/cobra"
)

var flagCountMax int

var CountCmd = &cobra.Command{
	Use:   "count REFERENCE AMOUNT UNIT",
	Short: "Print an arithmetic progression of instants",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("amount %q is not an integer", args[1])
		}
		seq, err := chrono.Count(args[0], amount, args[2])
		if err != nil {
			return err
		}
		n := 0
		for ins := range seq {
			fmt.Println(ins.String())
			n++
			if n >= flagCountMax {
				break
			}
		}
		return nil
	},
}

func init() {
	CountCmd.Flags().IntVar(&flagCountMax, "max-results", 20, "Max results to return")
}
