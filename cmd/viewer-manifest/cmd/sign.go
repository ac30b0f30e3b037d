package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/viewer-manifest/internal/service/signing"
)

var (
	// substitutionsPath is a YAML file saved by the strings command.
	substitutionsPath string

	// signCmd groups the signing subcommands.
	signCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign Windows build artifacts with signtool",
	}

	// signBinariesCmd signs the viewer binaries.
	signBinariesCmd = &cobra.Command{
		Use:   "binaries",
		Short: "Sign the viewer binaries and the final executable",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return signing.RunBinaries(ctx, &signing.Options{
				ConfigPath: configPath,
				Overrides:  &overrides,
			})
		},
	}

	// signInstallerCmd signs the installer.
	signInstallerCmd = &cobra.Command{
		Use:   "installer",
		Short: "Sign the Windows installer",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return signing.RunInstaller(ctx, &signing.Options{
				ConfigPath:        configPath,
				SubstitutionsPath: substitutionsPath,
				Overrides:         &overrides,
			})
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	signInstallerCmd.Flags().StringVarP(&substitutionsPath, "substitutions", "s", "",
		"read installer_file from this substitutions YAML file")

	signCmd.AddCommand(signBinariesCmd, signInstallerCmd)
}
