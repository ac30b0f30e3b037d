package signing

import (
	"context"
	"errors"
	"fmt"

	"github.com/oshokin/viewer-manifest/internal/config"
	"github.com/oshokin/viewer-manifest/internal/domain/manifest"
	"github.com/oshokin/viewer-manifest/internal/logger"
	repository "github.com/oshokin/viewer-manifest/internal/repository/substitution"
	"github.com/oshokin/viewer-manifest/internal/service/common"
	"github.com/oshokin/viewer-manifest/internal/signer"
)

// Options contains inputs for the signing commands.
type Options struct {
	// ConfigPath is the path to the build arguments YAML file.
	ConfigPath string
	// SubstitutionsPath is an optional YAML file saved by the strings command.
	// RunInstaller reads installer_file from it when set.
	SubstitutionsPath string
	// Overrides are command-line values applied on top of the file.
	Overrides *common.Overrides
	// SignerOptions customize the signer, e.g. the command runner in tests.
	SignerOptions []signer.Option
}

// RunBinaries signs the Windows viewer binaries.
func RunBinaries(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "sign-binaries")

	args, err := loadSigningArgs(opts)
	if err != nil {
		return err
	}

	ctx = logger.WithKV(ctx, "configuration", args.Configuration)

	newSigner(args, opts).SignWindowsBinaries(ctx)

	return nil
}

// RunInstaller signs the Windows installer.
func RunInstaller(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "sign-installer")

	args, err := loadSigningArgs(opts)
	if err != nil {
		return err
	}

	ctx = logger.WithKV(ctx, "configuration", args.Configuration)

	subst, err := loadSubstitutions(ctx, opts.SubstitutionsPath, args)
	if err != nil {
		return err
	}

	newSigner(args, opts).SignWindowsInstaller(ctx, subst)

	return nil
}

// loadSubstitutions reads the saved mapping, or derives it when no file is given.
// An installer file passed on the command line wins over the saved value.
func loadSubstitutions(ctx context.Context, path string, args *config.BuildArgs) (manifest.Substitutions, error) {
	if path == "" {
		return manifest.NewProvider(args, nil).GetSubstitutionStrings(), nil
	}

	subst, err := repository.NewFileRepository(path).Load(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err != nil {
		return nil, err
	}

	if args.InstallerFile != "" {
		subst[manifest.KeyInstallerFile] = args.InstallerFile
	}

	return subst, nil
}

// loadSigningArgs loads build arguments and checks the output directory is known.
func loadSigningArgs(opts *Options) (*config.BuildArgs, error) {
	args, err := common.LoadBuildArgs(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return nil, err
	}

	if err = config.RequireConfiguration(args); err != nil {
		return nil, err
	}

	return args, nil
}

func newSigner(args *config.BuildArgs, opts *Options) *signer.Signer {
	return signer.New(args.Sign, args.Configuration, args.FinalExe, opts.SignerOptions...)
}
