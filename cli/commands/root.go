package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/spanned-go/cli/internal/config"
	"github.com/satishbabariya/spanned-go/cli/internal/version"
	"github.com/satishbabariya/spanned-go/internal/debug"
)

var (
	noColor     bool
	debugOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "spanned",
	Short: "Source located configuration tooling",
	Long: `spanned checks configuration files and reports every problem with an
annotated snippet of the exact source bytes it came from, across
include boundaries.`,
	Version:      version.Get().String(),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.Init(debugOutput)

		if cfg, err := config.LoadConfig(); err == nil && cfg.NoColor {
			color.NoColor = true
		}
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugOutput, "debug", false, "Enable debug logging")
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute is the main entry point for the CLI
func Execute() error {
	return rootCmd.Execute()
}
