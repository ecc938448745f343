package output

import (
	"github.com/abdul-hamid-achik/minihttp/packages/http"
)

// ContentKind selects how a response body is presented.
type ContentKind int

const (
	ContentOther ContentKind = iota
	ContentJSON
	ContentHTML
)

func (k ContentKind) String() string {
	switch k {
	case ContentJSON:
		return "json"
	case ContentHTML:
		return "html"
	default:
		return "other"
	}
}

// Classify derives the ContentKind from the response's Content-Type header,
// ignoring parameters such as charset.
func Classify(resp *http.Response) ContentKind {
	return ClassifyContentType(resp.ContentType())
}

func ClassifyContentType(contentType string) ContentKind {
	switch http.MediaType(contentType) {
	case "application/json":
		return ContentJSON
	case "text/html":
		return ContentHTML
	default:
		return ContentOther
	}
}
