// Package manifest derives the substitution strings that fill the viewer
// installer template: version forms, channel names, application name and grid.
//
// Viewer is the contract for values owned by the packaging framework;
// NewViewer provides a default backed by config.BuildArgs.
package manifest
