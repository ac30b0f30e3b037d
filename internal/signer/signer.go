package signer

import (
	"context"
	"os"
	"strings"

	"github.com/oshokin/viewer-manifest/internal/config"
	"github.com/oshokin/viewer-manifest/internal/domain/manifest"
	"github.com/oshokin/viewer-manifest/internal/logger"
)

const (
	// opSignBinaries names the binaries signing step in diagnostics.
	opSignBinaries = "sign binaries"
	// opSignInstaller names the installer signing step in diagnostics.
	opSignInstaller = "sign installer"
	// windowsPathSeparator joins the configuration directory and file names.
	windowsPathSeparator = `\`
	// unknownDirectory is logged when the working directory cannot be determined.
	unknownDirectory = "<unknown>"
)

// windowsBinaries are signed before the final executable, in this order.
//
//nolint:gochecknoglobals // Fixed list of viewer artifacts.
var windowsBinaries = []string{
	"firestorm-bin.exe",
	"slplugin.exe",
	"SLVoice.exe",
}

// Signer runs the external code-signing tool over viewer build artifacts.
// Signing failures are reported as NonFatalError warnings and never returned.
type Signer struct {
	// cfg describes the signing tool invocation.
	cfg config.SignConfig
	// configuration is the build output directory holding the artifacts.
	configuration string
	// finalExe is the final viewer executable name.
	finalExe string
	// runner executes the signing tool.
	runner Runner
	// listProcesses lists running executables; nil disables the lock hint.
	listProcesses ProcessLister
}

// Option configures the Signer.
type Option func(*Signer)

// WithRunner replaces the command runner.
func WithRunner(r Runner) Option {
	return func(s *Signer) {
		if r != nil {
			s.runner = r
		}
	}
}

// WithProcessLister replaces the running process lookup. Passing nil disables it.
func WithProcessLister(l ProcessLister) Option {
	return func(s *Signer) {
		s.listProcesses = l
	}
}

// New creates a Signer for artifacts under the configuration directory.
func New(cfg config.SignConfig, configuration, finalExe string, opts ...Option) *Signer {
	s := &Signer{
		cfg:           cfg,
		configuration: configuration,
		finalExe:      finalExe,
		runner:        ExecRunner{},
		listProcesses: runningExecutables,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// TargetPaths returns the binaries signed by SignWindowsBinaries, in order.
func (s *Signer) TargetPaths() []string {
	paths := make([]string, 0, len(windowsBinaries)+1)
	for _, name := range windowsBinaries {
		paths = append(paths, windowsPath(s.configuration, name))
	}

	return append(paths, windowsPath(s.configuration, s.finalExe))
}

// SignWindowsBinaries signs the viewer binaries and the final executable.
// It stops at the first failure and logs it as a warning.
func (s *Signer) SignWindowsBinaries(ctx context.Context) {
	paths := s.TargetPaths()

	for _, path := range paths {
		if err := s.sign(ctx, path); err != nil {
			s.report(ctx, &NonFatalError{Op: opSignBinaries, Path: path, Err: err})

			return
		}
	}

	logger.InfoKV(ctx, "Signed Windows binaries", "count", len(paths))
}

// SignWindowsInstaller signs the installer named by the installer_file substitution.
// Failures are logged together with the working directory.
func (s *Signer) SignWindowsInstaller(ctx context.Context, subst manifest.Substitutions) {
	name, ok := subst.Get(manifest.KeyInstallerFile)
	if !ok || name == "" {
		s.report(ctx, &NonFatalError{Op: opSignInstaller, Err: errInstallerFileMissing})

		return
	}

	path := windowsPath(s.configuration, name)

	if err := s.sign(ctx, path); err != nil {
		logger.WarnKV(ctx, "Working directory", "path", workingDirectory())
		s.report(ctx, &NonFatalError{Op: opSignInstaller, Path: path, Err: err})

		return
	}

	logger.InfoKV(ctx, "Signed Windows installer", "path", path)
}

// Args returns the signing tool arguments for path.
func (s *Signer) Args(path string) []string {
	return []string{
		"sign",
		"/n", s.cfg.Subject,
		"/d", s.cfg.Description,
		"/du", s.cfg.URL,
		path,
	}
}

// sign runs the tool once for path.
func (s *Signer) sign(ctx context.Context, path string) error {
	s.warnIfRunning(ctx, path)

	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	output, err := s.runner.Run(callCtx, s.cfg.Tool, s.Args(path)...)
	if err != nil {
		logger.DebugKV(ctx, "Signing tool output", "path", path, "output", string(output))

		return err
	}

	logger.DebugKV(ctx, "Signed file", "path", path)

	return nil
}

// callContext applies the configured timeout, if any.
func (s *Signer) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, s.cfg.Timeout)
	}

	return context.WithCancel(ctx)
}

// warnIfRunning logs a hint when the target executable is running and likely locked.
func (s *Signer) warnIfRunning(ctx context.Context, path string) {
	if s.listProcesses == nil {
		return
	}

	names, err := s.listProcesses()
	if err != nil {
		logger.DebugKV(ctx, "Unable to list processes", "error", err)

		return
	}

	if isRunning(names, baseName(path)) {
		logger.WarnKV(ctx, "Signing target is running and may be locked", "path", path)
	}
}

// report logs a non-fatal signing failure.
func (s *Signer) report(ctx context.Context, err *NonFatalError) {
	logger.WarnKV(ctx, "Signing failed, continuing without signature",
		"operation", err.Op,
		"path", err.Path,
		"error", err.Err,
	)
}

// windowsPath joins dir and name with a backslash.
func windowsPath(dir, name string) string {
	if dir == "" {
		return name
	}

	return strings.TrimRight(dir, `\/`) + windowsPathSeparator + name
}

// baseName returns the file name after the last path separator.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[i+1:]
	}

	return path
}

// workingDirectory returns the current directory for diagnostics.
func workingDirectory() string {
	wd, err := os.Getwd()
	if err != nil {
		return unknownDirectory
	}

	return wd
}
