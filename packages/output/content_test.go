package output

import (
	"testing"

	"github.com/abdul-hamid-achik/minihttp/packages/http"
	"github.com/stretchr/testify/assert"
)

func TestClassifyContentType(t *testing.T) {
	tests := []struct {
		contentType string
		expected    ContentKind
	}{
		{"application/json", ContentJSON},
		{"application/json; charset=utf-8", ContentJSON},
		{"Application/JSON", ContentJSON},
		{"text/html", ContentHTML},
		{"text/html; charset=ISO-8859-1", ContentHTML},
		{"text/plain", ContentOther},
		{"application/problem+json", ContentOther},
		{"application/xml", ContentOther},
		{"", ContentOther},
		{"text/html;;broken=", ContentHTML},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyContentType(tt.contentType))
		})
	}
}

func TestClassify_MissingHeader(t *testing.T) {
	resp := &http.Response{StatusCode: 200, Headers: []http.Header{{Name: "Server", Value: "stub"}}}
	assert.Equal(t, ContentOther, Classify(resp))
}

func TestClassify_CaseInsensitiveHeaderName(t *testing.T) {
	resp := &http.Response{Headers: []http.Header{{Name: "content-type", Value: "text/html"}}}
	assert.Equal(t, ContentHTML, Classify(resp))
}

func TestContentKind_String(t *testing.T) {
	assert.Equal(t, "json", ContentJSON.String())
	assert.Equal(t, "html", ContentHTML.String())
	assert.Equal(t, "other", ContentOther.String())
}
