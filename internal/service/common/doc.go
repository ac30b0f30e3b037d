// Package common holds helpers shared by several services.
//
// It loads build arguments from YAML and applies command-line overrides on
// top, so every command sees the same validated config.BuildArgs.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
