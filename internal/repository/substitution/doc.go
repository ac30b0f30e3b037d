// Package substitution persists substitution mappings as YAML so that a later
// build hook, such as installer signing, can reuse the values computed earlier.
package substitution
