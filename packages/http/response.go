package http

import (
	"mime"
	"strings"
	"time"
	"unicode/utf8"
)

// Header is a single response header line.
type Header struct {
	Name  string
	Value string
}

// Response is the result of a completed HTTP exchange. Renderers treat it as
// read-only.
//
// Headers are sorted by name since net/http does not keep the order in which
// different headers arrived. Values of a repeated header keep their arrival
// order.
type Response struct {
	HTTPVersion string
	StatusCode  int
	StatusText  string
	Headers     []Header
	Body        []byte
	Duration    time.Duration
}

// Header returns the first value of the named header, matched
// case-insensitively.
func (r *Response) Header(name string) string {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// HeaderValues returns every value of the named header in arrival order.
func (r *Response) HeaderValues(name string) []string {
	var values []string
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			values = append(values, h.Value)
		}
	}
	return values
}

func (r *Response) ContentType() string {
	return r.Header("Content-Type")
}

// MediaType returns the lower-cased Content-Type without parameters.
func (r *Response) MediaType() string {
	return MediaType(r.ContentType())
}

// BodyText returns the body as text, or an UndecodableBodyError if it is not
// valid UTF-8.
func (r *Response) BodyText() (string, error) {
	if !utf8.Valid(r.Body) {
		return "", &UndecodableBodyError{Offset: invalidUTF8Offset(r.Body)}
	}
	return string(r.Body), nil
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

func (r *Response) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

func (r *Response) IsServerError() bool {
	return r.StatusCode >= 500
}

// MediaType strips parameters from a Content-Type value and lower-cases it.
func MediaType(contentType string) string {
	if contentType == "" {
		return ""
	}
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		return mt
	}
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}

func invalidUTF8Offset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}
