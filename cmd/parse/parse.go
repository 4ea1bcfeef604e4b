package parse

import (
	"fmt"
	"os"

	"github.com/flarebyte/baldrick-timeteller/internal/chrono"
	"github.com/flarebyte/baldrick-timeteller/internal/interpret"
	"github.com/spf13/cobra"
)

var (
	flagFormats []string
	flagStrict  bool
)

var ParseCmd = &cobra.Command{
	Use:   "parse VALUE",
	Short: "Parse a date/time string and print it in ISO-8601 form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var interp chrono.Interpreter
		if !flagStrict {
			interp = interpret.New()
		}
		p := chrono.NewParser(interp)
		ins, err := p.Parse(args[0], flagFormats...)
		if err != nil {
			return err
		}
		if zone := ins.Zone(); zone != "" {
			fmt.Fprintf(os.Stderr, "zone: %s\n", zone)
		}
		fmt.Println(ins.String())
		return nil
	},
}

func init() {
	ParseCmd.Flags().StringArrayVar(&flagFormats, "format", nil, "strptime pattern to try, in order (repeatable)")
	ParseCmd.Flags().BoolVar(&flagStrict, "strict", false, "Disable the natural-language fallback")
}
