package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHighlighter_Singleton(t *testing.T) {
	assert.Same(t, DefaultHighlighter(), DefaultHighlighter())

	h, err := NewChromaHighlighter(DefaultStyle)
	require.NoError(t, err)
	assert.Same(t, DefaultHighlighter(), h)
}

func TestChromaHighlighter_PreservesText(t *testing.T) {
	tests := []struct {
		lang string
		text string
	}{
		{"json", "{\n  \"a\": \"1\",\n  \"b\": [1, 2]\n}"},
		{"json", "{\"a\":1}\n"},
		{"html", "<html>\n  <body><p class=\"x\">hi</p></body>\n</html>"},
		{"html", "<p>one line</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			out, err := DefaultHighlighter().Highlight(tt.text, tt.lang)

			require.NoError(t, err)
			assert.Contains(t, out, "\x1b[")
			assert.Equal(t, tt.text, ansiEscape.ReplaceAllString(out, ""))
		})
	}
}

func TestChromaHighlighter_UnknownLanguageFallsBack(t *testing.T) {
	out, err := DefaultHighlighter().Highlight("just text", "no-such-lexer")

	require.NoError(t, err)
	assert.Equal(t, "just text", ansiEscape.ReplaceAllString(out, ""))
}

func TestNewChromaHighlighter_Styles(t *testing.T) {
	h, err := NewChromaHighlighter("dracula")
	require.NoError(t, err)
	assert.NotSame(t, DefaultHighlighter(), h)

	_, err = NewChromaHighlighter("no-such-style")
	assert.Error(t, err)
}

func TestStyleExists(t *testing.T) {
	assert.True(t, StyleExists("monokai"))
	assert.True(t, StyleExists("github"))
	assert.False(t, StyleExists("no-such-style"))
	assert.False(t, StyleExists(""))
}

func TestTrimAddedNewline(t *testing.T) {
	assert.Equal(t, "abc\x1b[0m", trimAddedNewline("abc\n\x1b[0m"))
	assert.Equal(t, "abc", trimAddedNewline("abc\n"))
	assert.Equal(t, "a\nb", trimAddedNewline("a\nb"))
	assert.Equal(t, "plain", trimAddedNewline("plain"))
}

func TestPlainHighlighter(t *testing.T) {
	out, err := plainHighlighter{}.Highlight("<p>x</p>", "html")
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", out)
}
