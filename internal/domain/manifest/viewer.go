package manifest

import (
	"strings"

	"github.com/oshokin/viewer-manifest/internal/config"
)

// Viewer supplies the channel and naming values the packaging framework owns.
type Viewer interface {
	// Channel returns the human-readable release channel, e.g. "Firestorm Release".
	Channel() string
	// ChannelOneword returns the channel as a single word.
	ChannelOneword() string
	// ChannelUnique returns the channel name that distinguishes this build.
	ChannelUnique() string
	// AppName returns the application name.
	AppName() string
	// FinalExe returns the final executable file name.
	FinalExe() string
}

// argsViewer derives Viewer values from build arguments.
type argsViewer struct {
	// args holds the validated build arguments.
	args *config.BuildArgs
}

// NewViewer returns the default Viewer backed by validated build arguments.
//
//nolint:ireturn // Callers only depend on the contract.
func NewViewer(args *config.BuildArgs) Viewer {
	return &argsViewer{args: args}
}

func (v *argsViewer) Channel() string {
	return v.args.Channel
}

func (v *argsViewer) ChannelOneword() string {
	return removeWhitespace(v.args.Channel)
}

func (v *argsViewer) ChannelUnique() string {
	return v.args.Channel
}

func (v *argsViewer) AppName() string {
	return v.args.AppName
}

func (v *argsViewer) FinalExe() string {
	return v.args.FinalExe
}

// removeWhitespace drops every whitespace run from s.
func removeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
