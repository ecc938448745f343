// Package logging provides the leveled diagnostic logger used by minihttp.
//
// Records are written as slog text lines to stderr so they never mix with
// the rendered response on stdout. The default level is warn; --verbose
// lowers it to debug.
package logging
