package substitution

import (
	"context"
	"fmt"

	"github.com/oshokin/viewer-manifest/internal/domain/manifest"
	"github.com/oshokin/viewer-manifest/internal/logger"
	repository "github.com/oshokin/viewer-manifest/internal/repository/substitution"
	"github.com/oshokin/viewer-manifest/internal/service/common"
)

// Options contains inputs for the strings command.
type Options struct {
	// ConfigPath is the path to the build arguments YAML file.
	ConfigPath string
	// OutputPath is an optional path to save the substitutions as YAML.
	OutputPath string
	// Overrides are command-line values applied on top of the file.
	Overrides *common.Overrides
}

// Run derives the substitutions, logs every key and saves them when requested.
func Run(ctx context.Context, opts *Options) (manifest.Substitutions, error) {
	ctx = logger.WithName(ctx, "strings")

	args, err := common.LoadBuildArgs(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return nil, err
	}

	provider := manifest.NewProvider(args, nil)
	subst := provider.GetSubstitutionStrings()

	logger.InfoKV(ctx, "Derived substitution strings",
		"flavor", provider.Flavor(),
		"64bit", provider.Is64BitBuild(),
		"count", len(subst),
	)

	for _, key := range subst.Keys() {
		logger.InfoKV(ctx, "Substitution", "key", key, "value", subst[key])
	}

	if opts.OutputPath == "" {
		return subst, nil
	}

	if err = repository.NewFileRepository(opts.OutputPath).Save(ctx, subst); err != nil {
		return nil, fmt.Errorf("save substitutions: %w", err)
	}

	logger.InfoKV(ctx, "Saved substitution strings", "path", opts.OutputPath)

	return subst, nil
}
