// Package logx configures noticeboard's structured logging.
//
// It is a small wrapper (logx.Logger) on top of zerolog that keeps:
//   - Console output readable (short timestamp + short caller)
//   - File output JSON-structured
//   - An optional board sink that forwards warn-and-above records into the
//     activity log (min-level + rate limiting)
package logx
