package http

import (
	"bytes"
	"encoding/json"
	neturl "net/url"
	"strings"
)

// Method is the closed set of verbs the client can send.
type Method int

const (
	MethodGet Method = iota
	MethodPost
)

func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	default:
		return "UNKNOWN"
	}
}

// KeyValuePair is one body field given on the command line as key=value.
type KeyValuePair struct {
	Key   string
	Value string
}

// Request describes what to send. It is immutable once built.
type Request struct {
	method Method
	rawURL string
	url    *neturl.URL
	body   []KeyValuePair
}

// NewGet builds a GET request for rawURL.
func NewGet(rawURL string) (*Request, error) {
	u, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	return &Request{method: MethodGet, rawURL: rawURL, url: u}, nil
}

// NewPost builds a POST request for rawURL whose JSON body is made of the
// given key=value tokens, in order.
func NewPost(rawURL string, tokens ...string) (*Request, error) {
	u, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}

	pairs := make([]KeyValuePair, 0, len(tokens))
	for _, tok := range tokens {
		kv, err := ParseKeyValuePair(tok)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, kv)
	}

	return &Request{method: MethodPost, rawURL: rawURL, url: u, body: pairs}, nil
}

func (r *Request) Method() Method {
	return r.method
}

// URL returns the URL exactly as it was given.
func (r *Request) URL() string {
	return r.rawURL
}

// Host returns the authority component of the URL.
func (r *Request) Host() string {
	return r.url.Host
}

// Body returns a copy of the body pairs. It is always empty for GET.
func (r *Request) Body() []KeyValuePair {
	out := make([]KeyValuePair, len(r.body))
	copy(out, r.body)
	return out
}

// ParseURL parses rawURL and requires it to be absolute, with both a scheme
// and a host.
func ParseURL(rawURL string) (*neturl.URL, error) {
	u, err := neturl.Parse(rawURL)
	if err != nil {
		return nil, &InvalidURLError{Input: rawURL, Err: err}
	}
	if u.Scheme == "" {
		return nil, &InvalidURLError{Input: rawURL, Reason: "missing scheme"}
	}
	if u.Hostname() == "" {
		return nil, &InvalidURLError{Input: rawURL, Reason: "missing host"}
	}
	return u, nil
}

// ParseKeyValuePair splits token on its first '='. Everything after it,
// further '=' included, is the value.
func ParseKeyValuePair(token string) (KeyValuePair, error) {
	key, value, found := strings.Cut(token, "=")
	if !found {
		return KeyValuePair{}, &InvalidKeyValuePairError{Input: token, Reason: "missing '='"}
	}
	if key == "" {
		return KeyValuePair{}, &InvalidKeyValuePairError{Input: token, Reason: "empty key"}
	}
	return KeyValuePair{Key: key, Value: value}, nil
}

// EncodeJSONBody serializes pairs as a JSON object of strings. Keys appear in
// order of first occurrence; a repeated key overwrites the earlier value.
func EncodeJSONBody(pairs []KeyValuePair) ([]byte, error) {
	order := make([]string, 0, len(pairs))
	values := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		if _, seen := values[kv.Key]; !seen {
			order = append(order, kv.Key)
		}
		values[kv.Key] = kv.Value
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range order {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, values[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSONString appends s as a JSON string literal. '<', '>' and '&' are
// written as is.
func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
