package signer

import (
	"strings"

	"github.com/mitchellh/go-ps"
)

// ProcessLister returns the executable names of running processes.
type ProcessLister func() ([]string, error)

// runningExecutables lists running process executables via go-ps.
func runningExecutables() ([]string, error) {
	processList, err := ps.Processes()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(processList))
	for _, process := range processList {
		names = append(names, process.Executable())
	}

	return names, nil
}

// isRunning reports whether an executable named like base is in names.
// Windows file names are case-insensitive.
func isRunning(names []string, base string) bool {
	for _, name := range names {
		if strings.EqualFold(name, base) {
			return true
		}
	}

	return false
}
