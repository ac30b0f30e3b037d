// Package signer runs the external code-signing tool (signtool.exe) over
// Windows viewer binaries and the installer.
//
// Signing is best effort: a failing or missing tool is logged at warning
// level as a NonFatalError and the build carries on unsigned.
package signer
