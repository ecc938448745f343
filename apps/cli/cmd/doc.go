// Package cmd implements the minihttp CLI commands using Cobra.
//
// Available commands:
//   - get: Send a GET request and print the response
//   - post: Send a POST request with a JSON body built from key=value pairs
//   - version: Show minihttp version information
//   - completion: Generate shell completion scripts
//
// Global flags control the request timeout, redirect cap, colors,
// highlighting style and diagnostic logging. Each can also be set through
// a MINIHTTP_* environment variable.
package cmd
