package cmd

import (
	"fmt"

	calcmd "github.com/flarebyte/baldrick-timeteller/cmd/calendar"
	clockcmd "github.com/flarebyte/baldrick-timeteller/cmd/clock"
	configcmd "github.com/flarebyte/baldrick-timeteller/cmd/config"
	durcmd "github.com/flarebyte/baldrick-timeteller/cmd/duration"
	parsecmd "github.com/flarebyte/baldrick-timeteller/cmd/parse"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "timeteller",
	Short:   "Tell durations, dates and times from the command line",
	Long:    "timeteller parses dates and times in a wide range of shapes and reports calendar-aware durations, offsets and truncated differences between them.",
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("No command provided. Run with --help to see available commands.")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(durcmd.DurationCmd)
	rootCmd.AddCommand(parsecmd.ParseCmd)
	rootCmd.AddCommand(clockcmd.NowCmd)
	rootCmd.AddCommand(clockcmd.TimestampCmd)
	rootCmd.AddCommand(clockcmd.LastdayCmd)
	rootCmd.AddCommand(calcmd.OffsetCmd)
	rootCmd.AddCommand(calcmd.DatesubCmd)
	rootCmd.AddCommand(calcmd.CountCmd)
	rootCmd.AddCommand(configcmd.ConfigCmd)
}
