package manifest

import (
	"strings"

	"github.com/oshokin/viewer-manifest/internal/config"
)

// Provider derives installer template substitutions from build arguments.
type Provider struct {
	// args holds the build arguments supplied by the framework.
	args *config.BuildArgs
	// viewer supplies channel and naming values.
	viewer Viewer
}

// NewProvider creates a Provider. A nil viewer falls back to NewViewer(args).
func NewProvider(args *config.BuildArgs, viewer Viewer) *Provider {
	if viewer == nil {
		viewer = NewViewer(args)
	}

	return &Provider{
		args:   args,
		viewer: viewer,
	}
}

// Is64BitBuild reports whether the 64-bit flag was passed.
func (p *Provider) Is64BitBuild() bool {
	return p.args.M64
}

// Flavor returns the raw viewer flavor argument.
func (p *Provider) Flavor() string {
	return p.args.ViewerFlavor
}

// SpliceGridSubstitutionStrings sets the grid keys on subst and returns it.
// Both keys are empty when no grid was given.
func (p *Provider) SpliceGridSubstitutionStrings(subst Substitutions) Substitutions {
	if subst == nil {
		subst = make(Substitutions, 2)
	}

	if grid := p.args.Grid; grid != nil && *grid != "" {
		subst[KeyGrid] = *grid
		subst[KeyGridCaps] = strings.ToUpper(*grid)
	} else {
		subst[KeyGrid] = ""
		subst[KeyGridCaps] = ""
	}

	return subst
}

// GetSubstitutionStrings builds the full substitution mapping for the installer template.
func (p *Provider) GetSubstitutionStrings() Substitutions {
	var (
		parts         = p.args.Version
		channelUnique = p.viewer.ChannelUnique()
	)

	subst := Substitutions{
		KeyVersion:               strings.Join(parts, "."),
		KeyVersionShort:          strings.Join(allButLast(parts), "."),
		KeyVersionDashes:         strings.Join(parts, "-"),
		KeyChannel:               p.viewer.Channel(),
		KeyChannelOneword:        p.viewer.ChannelOneword(),
		KeyChannelUnique:         channelUnique,
		KeySubchannelUnderscores: strings.Join(strings.Fields(channelUnique), "_"),
		KeyAppName:               p.viewer.AppName(),
	}

	if p.args.InstallerFile != "" {
		subst[KeyInstallerFile] = p.args.InstallerFile
	}

	return p.SpliceGridSubstitutionStrings(subst)
}

// ChannelLegacyOneword returns the channel name with all whitespace removed.
func (p *Provider) ChannelLegacyOneword() string {
	return removeWhitespace(p.viewer.Channel())
}

// allButLast drops the last element of parts.
func allButLast(parts []string) []string {
	if len(parts) == 0 {
		return nil
	}

	return parts[:len(parts)-1]
}
