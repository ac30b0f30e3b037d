// Package logger wraps zap with a global sugared console logger and
// context helpers (ToContext, FromContext, WithName, WithKV).
//
// Commands store a named logger in the context and every package below
// them logs through it, so signing diagnostics carry the command name.
package logger
