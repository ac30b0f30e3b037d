package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/viewer-manifest/internal/service/substitution"
)

var (
	// outputPath is where the substitutions YAML is saved.
	outputPath string

	// stringsCmd prints and optionally saves the installer substitution strings.
	stringsCmd = &cobra.Command{
		Use:   "strings",
		Short: "Derive installer template substitution strings",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			_, err := substitution.Run(ctx, &substitution.Options{
				ConfigPath: configPath,
				OutputPath: outputPath,
				Overrides:  &overrides,
			})

			return err
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	stringsCmd.Flags().StringVarP(&outputPath, "output", "o", "", "save substitutions to this YAML file")
}
