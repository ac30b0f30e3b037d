// Package signing implements the "sign binaries" and "sign installer" commands.
//
// Both commands fail only on invalid build arguments. Signing tool failures
// are logged by the signer and the command still succeeds.
package signing
