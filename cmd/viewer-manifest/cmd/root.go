package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/viewer-manifest/internal/config"
	"github.com/oshokin/viewer-manifest/internal/logger"
	"github.com/oshokin/viewer-manifest/internal/service/common"
	"github.com/oshokin/viewer-manifest/internal/version"
)

// m64FlagName is checked with Flags().Changed: passing the flag marks a 64-bit build
// even as --m64=false, like the m64 key in the build arguments file.
const m64FlagName = "m64"

var (
	// configPath to the build arguments YAML file.
	configPath string
	// logLevel selects the minimum log level.
	logLevel string
	// overrides collects build argument flags.
	overrides common.Overrides
	// gridFlag and m64Flag back the optional overrides.
	gridFlag string
	m64Flag  bool

	// rootCmd represents the base command.
	rootCmd = &cobra.Command{
		Use:           "viewer-manifest",
		Short:         "Derive installer substitution strings and sign Windows viewer builds",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, ok := logger.ParseLogLevel(logLevel)
			if !ok {
				return fmt.Errorf("unknown log level %q", logLevel)
			}

			logger.SetLevel(level)
			collectOptionalOverrides(cmd)

			return nil
		},
	}
)

// Execute runs the viewer-manifest CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.ErrorKV(context.Background(), "Command failed", "error", err)
		os.Exit(1)
	}
}

// signalContext returns a context canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
}

// collectOptionalOverrides turns explicitly passed flags into set pointers.
func collectOptionalOverrides(cmd *cobra.Command) {
	flags := cmd.Flags()

	if flags.Changed("grid") {
		grid := gridFlag
		overrides.Grid = &grid
	}

	if flags.Changed(m64FlagName) {
		overrides.M64 = true
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to build arguments file")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&overrides.Version, "viewer-version", "", "dotted viewer version, e.g. 7.1.9.12345")
	flags.StringVar(&overrides.ViewerFlavor, "flavor", "", "viewer flavor (oss or hvk)")
	flags.StringVar(&gridFlag, "grid", "", "target grid")
	flags.BoolVar(&m64Flag, m64FlagName, false, "mark the build as 64-bit")
	flags.StringVar(&overrides.Configuration, "configuration", "", "build configuration directory, e.g. Release")
	flags.StringVar(&overrides.Channel, "channel", "", "release channel name")
	flags.StringVar(&overrides.AppName, "app-name", "", "application name")
	flags.StringVar(&overrides.FinalExe, "final-exe", "", "final executable file name")
	flags.StringVar(&overrides.InstallerFile, "installer-file", "", "installer file name")

	rootCmd.AddCommand(stringsCmd, signCmd)
}
