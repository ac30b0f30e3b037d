//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"errors"
	"fmt"
	"os"

	"github.com/oshokin/viewer-manifest/internal/config"
)

// Overrides are command-line values applied on top of the build arguments file.
// Empty strings and nil pointers leave the file value untouched.
type Overrides struct {
	// Version is a dotted version string, e.g. 7.1.9.12345.
	Version string
	// ViewerFlavor overrides viewer_flavor.
	ViewerFlavor string
	// Grid overrides grid when set.
	Grid *string
	// M64 marks the build as 64-bit when true. False keeps the file value.
	M64 bool
	// Configuration overrides configuration.
	Configuration string
	// Channel overrides channel.
	Channel string
	// AppName overrides app_name.
	AppName string
	// FinalExe overrides final_exe.
	FinalExe string
	// InstallerFile overrides installer_file.
	InstallerFile string
}

// LoadBuildArgs reads build arguments from path, applies overrides and validates the result.
// A missing default file is not an error: the arguments then come from overrides only.
func LoadBuildArgs(path string, overrides *Overrides) (*config.BuildArgs, error) {
	if path == "" {
		path = config.DefaultConfigFilename
	}

	args, err := config.Read(path)

	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist) && path == config.DefaultConfigFilename:
		args = new(config.BuildArgs)
	default:
		return nil, err
	}

	overrides.apply(args)

	if err = config.Validate(args); err != nil {
		return nil, fmt.Errorf("validate build arguments: %w", err)
	}

	return args, nil
}

// apply copies the set override values into args.
func (o *Overrides) apply(args *config.BuildArgs) {
	if o == nil {
		return
	}

	if o.Version != "" {
		args.Version = config.ParseVersion(o.Version)
	}

	if o.Grid != nil {
		grid := *o.Grid
		args.Grid = &grid
	}

	if o.M64 {
		args.M64 = true
	}

	setIfNotEmpty(&args.ViewerFlavor, o.ViewerFlavor)
	setIfNotEmpty(&args.Configuration, o.Configuration)
	setIfNotEmpty(&args.Channel, o.Channel)
	setIfNotEmpty(&args.AppName, o.AppName)
	setIfNotEmpty(&args.FinalExe, o.FinalExe)
	setIfNotEmpty(&args.InstallerFile, o.InstallerFile)
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
