// Package logger wraps zap with:
//   - a global sugared logger that discards output until configured,
//   - file output, since the terminal itself is taken by the UI,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and convenience functions (Info, DebugKV, ErrorKV).
//
// Code that logs takes a context and extracts the logger from it, so
// names and fields set by callers travel with the call.
package logger
