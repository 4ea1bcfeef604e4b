package configcmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/flarebyte/baldrick-timeteller/internal/config"
	"github.com/flarebyte/baldrick-timeteller/internal/paths"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	flagOverwrite bool
	flagDryRun    bool

	flagClockZone   string
	flagClockFormat string
	flagDurOutput   string
	flagDurColor    string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or update the global config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := paths.EnsureHome(); err != nil {
			return err
		}
		path := cfgpkg.Path()
		if !flagOverwrite && !flagDryRun {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config already exists at %s (use --overwrite to replace)", path)
			}
		}

		// Start from existing config (or defaults if missing)
		cfg, _ := cfgpkg.Load()

		if cmd.Flags().Changed("zone") {
			cfg.Clock.Zone = flagClockZone
		}
		if cmd.Flags().Changed("format") {
			cfg.Clock.Format = flagClockFormat
		}
		if cmd.Flags().Changed("output") {
			cfg.Duration.Output = flagDurOutput
		}
		if cmd.Flags().Changed("color") {
			cfg.Duration.Color = flagDurColor
		}

		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		if flagDryRun {
			os.Stdout.Write(b)
			if len(b) == 0 || b[len(b)-1] != '\n' {
				fmt.Fprintln(os.Stdout)
			}
			fmt.Fprintf(os.Stderr, "dry-run: not writing %s\n", path)
			return nil
		}
		if err := os.WriteFile(path, b, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote config to %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&flagOverwrite, "overwrite", false, "Overwrite existing config.yaml if present")
	initCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print merged config to stdout without writing")

	initCmd.Flags().StringVar(&flagClockZone, "zone", "", "Default timezone for now/timestamp (IANA name)")
	initCmd.Flags().StringVar(&flagClockFormat, "format", "", "Default strftime pattern for timestamp")
	initCmd.Flags().StringVar(&flagDurOutput, "output", cfgpkg.DefaultOutput, "Default duration output style")
	initCmd.Flags().StringVar(&flagDurColor, "color", cfgpkg.DefaultColor, "Default color mode (auto|always|never)")
}
