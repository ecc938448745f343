// Package output renders HTTP responses for the terminal.
//
// The console renderer prints the status line and headers, then picks a
// body presentation from the Content-Type header:
//   - application/json: pretty-printed and syntax highlighted
//   - text/html: syntax highlighted
//   - anything else: written verbatim
//
// Highlighting uses chroma; with color disabled the body text is left as is.
package output
