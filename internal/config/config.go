package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// BuildArgs holds the build arguments supplied by the packaging framework.
// Optional value arguments are pointers: a set pointer means the argument was passed.
type BuildArgs struct {
	// Version is the ordered list of version parts, e.g. ["7", "1", "9", "12345"].
	Version []string `yaml:"version"`
	// ViewerFlavor is the viewer flavor (oss or hvk). It is passed through as is.
	ViewerFlavor string `yaml:"viewer_flavor"`
	// Grid is the optional target grid identifier.
	Grid *string `yaml:"grid,omitempty"`
	// M64 reports that the m64 key was present, whatever its value (even null).
	M64 bool `yaml:"-"`
	// Configuration is the build configuration and output directory, e.g. Release.
	Configuration string `yaml:"configuration"`
	// Channel is the human-readable release channel name.
	Channel string `yaml:"channel"`
	// AppName is the application name used in templates.
	AppName string `yaml:"app_name"`
	// FinalExe is the name of the final viewer executable.
	FinalExe string `yaml:"final_exe"`
	// InstallerFile is the installer file name, if already known.
	InstallerFile string `yaml:"installer_file,omitempty"`
	// Sign holds the code-signing tool settings.
	Sign SignConfig `yaml:"sign"`
}

// SignConfig describes how the external code-signing tool is invoked.
type SignConfig struct {
	// Tool is the signing executable.
	Tool string `yaml:"tool"`
	// Subject is the certificate subject name passed with /n.
	Subject string `yaml:"subject"`
	// Description is the signed content description passed with /d.
	Description string `yaml:"description"`
	// URL is the publisher URL passed with /du.
	URL string `yaml:"url"`
	// Timeout bounds a single signing call. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout"`
}

const (
	// DefaultConfigFilename is the default filename for build arguments.
	DefaultConfigFilename = "viewer-manifest.yaml"

	// DefaultFilePermissions is the default file permission for written files.
	DefaultFilePermissions = 0o600

	// DefaultChannel is used when no channel is configured.
	DefaultChannel = "Firestorm Release"

	// DefaultAppName is used when no application name is configured.
	DefaultAppName = "Firestorm"

	// DefaultSignTool is the Windows SDK signing utility.
	DefaultSignTool = "signtool.exe"

	// DefaultSignSubject is the certificate subject used for signing.
	DefaultSignSubject = "Phoenix"

	// DefaultSignDescription is the description attached to signatures.
	DefaultSignDescription = "Firestorm"

	// DefaultSignURL is the publisher URL attached to signatures.
	DefaultSignURL = "http://www.phoenixviewer.com"

	// versionSeparator separates parts of a dotted version string.
	versionSeparator = "."

	// m64Key is the build argument whose presence marks a 64-bit build.
	m64Key = "m64"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// ErrVersionRequired is returned when no version parts are provided.
	ErrVersionRequired = errors.New("version must be provided")
	// ErrConfigurationRequired is returned when the build configuration is missing.
	ErrConfigurationRequired = errors.New("build configuration must be provided")
	// errNegativeTimeout is returned when the signing timeout is negative.
	errNegativeTimeout = errors.New("signing timeout must not be negative")
)

// Load reads build arguments from the provided path and validates them.
func Load(path string) (*BuildArgs, error) {
	args, err := Read(path)
	if err != nil {
		return nil, err
	}

	if err = Validate(args); err != nil {
		return nil, err
	}

	return args, nil
}

// Read parses build arguments from the provided path without validating them,
// so that command-line overrides can complete a partial file.
func Read(path string) (*BuildArgs, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read build arguments: %w", err)
	}

	var args BuildArgs
	if err = yaml.Unmarshal(contents, &args); err != nil {
		return nil, fmt.Errorf("unmarshal build arguments: %w", err)
	}

	return &args, nil
}

// Save writes build arguments to the provided path.
func Save(path string, args *BuildArgs) error {
	if args == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(args); err != nil {
		return err
	}

	data, err := yaml.Marshal(args)
	if err != nil {
		return fmt.Errorf("marshal build arguments: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write build arguments: %w", err)
	}

	return nil
}

// Validate checks required arguments and fills in defaults for the optional ones.
func Validate(args *BuildArgs) error {
	if args == nil {
		return errConfigIsNotSet
	}

	if len(args.Version) == 0 {
		return ErrVersionRequired
	}

	if args.Channel == "" {
		args.Channel = DefaultChannel
	}

	if args.AppName == "" {
		args.AppName = DefaultAppName
	}

	if args.FinalExe == "" {
		args.FinalExe = strings.Join(strings.Fields(args.AppName), "") + ".exe"
	}

	return validateSign(&args.Sign)
}

// RequireConfiguration checks that the build output directory is set.
// Only steps that touch build artifacts, such as signing, need it.
func RequireConfiguration(args *BuildArgs) error {
	if args == nil {
		return errConfigIsNotSet
	}

	if strings.TrimSpace(args.Configuration) == "" {
		return ErrConfigurationRequired
	}

	return nil
}

// ParseVersion splits a dotted version string into its parts.
func ParseVersion(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return strings.Split(s, versionSeparator)
}

// validateSign fills signing defaults and checks the publisher URL.
func validateSign(sign *SignConfig) error {
	if sign.Tool == "" {
		sign.Tool = DefaultSignTool
	}

	if sign.Subject == "" {
		sign.Subject = DefaultSignSubject
	}

	if sign.Description == "" {
		sign.Description = DefaultSignDescription
	}

	if sign.URL == "" {
		sign.URL = DefaultSignURL
	}

	if sign.Timeout < 0 {
		return errNegativeTimeout
	}

	if _, err := url.ParseRequestURI(sign.URL); err != nil {
		return fmt.Errorf("invalid publisher URL: %w", err)
	}

	return nil
}
