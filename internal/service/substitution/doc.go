// Package substitution implements the "strings" command: it derives the
// installer template substitutions from build arguments, logs them and
// optionally saves them for later build hooks.
package substitution
