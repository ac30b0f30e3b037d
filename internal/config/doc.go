// Package config defines the build arguments handed over by the packaging
// framework and provides helpers to load, validate and save them in YAML format.
//
// BuildArgs replaces a loose option mapping: optional arguments such as the
// grid or the 64-bit flag are pointers, so "key present" becomes "field is set".
package config
