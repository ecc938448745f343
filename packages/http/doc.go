// Package http builds and sends the single request of a minihttp run.
//
// It covers:
//   - Request construction and validation (absolute URL, key=value body pairs)
//   - Ordered JSON body encoding for POST
//   - Dispatch through a resty client with explicit timeout and redirect cap
//   - Response descriptors with ordered headers and UTF-8 body access
//   - Typed errors for invalid input, transport failures and undecodable bodies
package http
