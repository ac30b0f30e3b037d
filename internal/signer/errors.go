package signer

import (
	"errors"
	"fmt"
)

// errInstallerFileMissing is reported when the substitutions lack the installer file name.
var errInstallerFileMissing = errors.New("installer file is not set in substitutions")

// NonFatalError is a signing failure that is logged but never aborts the build.
type NonFatalError struct {
	// Op names the signing step, e.g. "sign binaries".
	Op string
	// Path is the file the tool was asked to sign.
	Path string
	// Err is the underlying tool or invocation error.
	Err error
}

func (e *NonFatalError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
}

func (e *NonFatalError) Unwrap() error {
	return e.Err
}

// IsNonFatal reports whether err is, or wraps, a NonFatalError.
func IsNonFatal(err error) bool {
	var nonFatal *NonFatalError

	return errors.As(err, &nonFatal)
}
