package http

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/minihttp/packages/core/logging"
	"github.com/go-resty/resty/v2"
	"golang.org/x/text/encoding/htmlindex"
)

const (
	// DefaultTimeout bounds the whole exchange, redirects included
	DefaultTimeout = 30 * time.Second
	// DefaultMaxRedirects is the maximum number of redirects to follow
	DefaultMaxRedirects = 10
	// DefaultUserAgent is sent when no other user agent is configured
	DefaultUserAgent = "minihttp/dev"
)

// Client executes Requests. It never retries and treats every HTTP status
// as a successful exchange.
type Client struct {
	rc           *resty.Client
	timeout      time.Duration
	maxRedirects int
	userAgent    string
	logger       *logging.Logger
}

type ClientOption func(*Client)

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		timeout:      DefaultTimeout,
		maxRedirects: DefaultMaxRedirects,
		userAgent:    DefaultUserAgent,
		logger:       logging.Discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	redirectPolicy := resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
		if len(via) > c.maxRedirects {
			return http.ErrUseLastResponse
		}
		return nil
	})

	c.rc = resty.New().
		SetTimeout(c.timeout).
		SetRetryCount(0).
		SetRedirectPolicy(redirectPolicy).
		SetHeader("User-Agent", c.userAgent).
		SetLogger(c.logger).
		SetDebug(c.logger.Level() == logging.LevelDebug)

	return c
}

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithMaxRedirects caps followed redirects. Zero disables following and the
// redirect response itself is returned.
func WithMaxRedirects(max int) ClientOption {
	return func(c *Client) {
		c.maxRedirects = max
	}
}

func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

func WithLogger(l *logging.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// Dispatch sends req and returns the response. Only failures to complete the
// exchange are errors; they are reported as *TransportError.
func (c *Client) Dispatch(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}

	method := req.Method().String()
	log := c.logger.WithRequest(method, req.URL())

	r := c.rc.R().SetContext(ctx)

	switch req.Method() {
	case MethodGet:
	case MethodPost:
		payload, err := EncodeJSONBody(req.Body())
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		r.SetHeader("Content-Type", "application/json").SetBody(payload)
		log.Debug("request body", "bytes", len(payload))
	default:
		return nil, fmt.Errorf("unsupported method %s", method)
	}

	log.Debug("sending request")

	start := time.Now()
	resp, err := r.Execute(method, req.URL())
	duration := time.Since(start)

	if err != nil {
		log.Debug("request failed", "error", err, "duration", duration)
		return nil, &TransportError{Method: method, URL: req.URL(), Err: err}
	}
	if resp == nil || resp.RawResponse == nil {
		return nil, &TransportError{Method: method, URL: req.URL(), Err: errors.New("no response received")}
	}

	raw := resp.RawResponse
	out := &Response{
		HTTPVersion: raw.Proto,
		StatusCode:  raw.StatusCode,
		StatusText:  statusText(raw.StatusCode, raw.Status),
		Headers:     orderedHeaders(raw.Header),
		Duration:    duration,
	}
	out.Body = decodeBody(out.ContentType(), resp.Body(), log)

	log.Debug("response received",
		"status", out.StatusCode,
		"proto", out.HTTPVersion,
		"bytes", len(out.Body),
		"duration", duration)

	return out, nil
}

// statusText strips the numeric code from a net/http status line such as
// "404 Not Found".
func statusText(code int, status string) string {
	text := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	if text == "" {
		return http.StatusText(code)
	}
	return text
}

// orderedHeaders flattens h with names sorted. Values of a repeated header
// keep the order they arrived in.
func orderedHeaders(h http.Header) []Header {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	headers := make([]Header, 0, len(names))
	for _, name := range names {
		for _, v := range h[name] {
			headers = append(headers, Header{Name: name, Value: v})
		}
	}
	return headers
}

// decodeBody transcodes body to UTF-8 when contentType names another known
// charset. Unknown charsets and failed conversions leave body untouched.
func decodeBody(contentType string, body []byte, log *logging.Logger) []byte {
	if contentType == "" || len(body) == 0 {
		return body
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body
	}
	charset := strings.ToLower(strings.TrimSpace(params["charset"]))
	if charset == "" || charset == "utf-8" || charset == "utf8" {
		return body
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		log.Debug("unknown response charset", "charset", charset)
		return body
	}
	if name, _ := htmlindex.Name(enc); name == "utf-8" {
		return body
	}

	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		log.Debug("charset conversion failed", "charset", charset, "error", err)
		return body
	}
	return decoded
}
