package output

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const (
	// DefaultStyle is the chroma style used when none is configured
	DefaultStyle = "monokai"
	// DefaultFormatter emits 256-color ANSI escapes
	DefaultFormatter = "terminal256"
)

// Highlighter turns source text into terminal-formatted text. lang is a
// lexer name such as "json" or "html".
type Highlighter interface {
	Highlight(text, lang string) (string, error)
}

// ChromaHighlighter highlights with chroma. Lexers are resolved once and
// reused.
type ChromaHighlighter struct {
	style     *chroma.Style
	formatter chroma.Formatter

	mu     sync.Mutex
	lexers map[string]chroma.Lexer
}

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

var (
	defaultHighlighterOnce sync.Once
	defaultHighlighter     *ChromaHighlighter
)

// DefaultHighlighter returns the process-wide highlighter for DefaultStyle,
// loading its definitions on first use.
func DefaultHighlighter() *ChromaHighlighter {
	defaultHighlighterOnce.Do(func() {
		defaultHighlighter = newChromaHighlighter(styles.Get(DefaultStyle))
	})
	return defaultHighlighter
}

// NewChromaHighlighter returns a highlighter for the named style.
func NewChromaHighlighter(style string) (*ChromaHighlighter, error) {
	if style == "" || strings.EqualFold(style, DefaultStyle) {
		return DefaultHighlighter(), nil
	}
	if !StyleExists(style) {
		return nil, fmt.Errorf("unknown highlight style %q", style)
	}
	return newChromaHighlighter(styles.Get(style)), nil
}

// StyleExists reports whether chroma knows the named style.
func StyleExists(name string) bool {
	if name == "" {
		return false
	}
	s := styles.Get(name)
	return s != styles.Fallback || strings.EqualFold(name, styles.Fallback.Name)
}

func newChromaHighlighter(style *chroma.Style) *ChromaHighlighter {
	return &ChromaHighlighter{
		style:     style,
		formatter: formatters.Get(DefaultFormatter),
		lexers:    make(map[string]chroma.Lexer),
	}
}

func (h *ChromaHighlighter) Highlight(text, lang string) (string, error) {
	lexer := h.lexer(lang)

	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", fmt.Errorf("tokenise %s: %w", lang, err)
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, it); err != nil {
		return "", fmt.Errorf("format %s: %w", lang, err)
	}

	out := buf.String()
	if !strings.HasSuffix(text, "\n") {
		out = trimAddedNewline(out)
	}
	return out, nil
}

// trimAddedNewline drops a final newline that a lexer appended to its input,
// keeping any escape sequences that follow it.
func trimAddedNewline(out string) string {
	i := strings.LastIndexByte(out, '\n')
	if i < 0 {
		return out
	}
	tail := out[i+1:]
	if ansiEscape.ReplaceAllString(tail, "") != "" {
		return out
	}
	return out[:i] + tail
}

func (h *ChromaHighlighter) lexer(lang string) chroma.Lexer {
	h.mu.Lock()
	defer h.mu.Unlock()

	if l, ok := h.lexers[lang]; ok {
		return l
	}
	l := lexers.Get(lang)
	if l == nil {
		l = lexers.Fallback
	}
	l = chroma.Coalesce(l)
	h.lexers[lang] = l
	return l
}

// plainHighlighter returns text unchanged. Used when color is off.
type plainHighlighter struct{}

func (plainHighlighter) Highlight(text, _ string) (string, error) {
	return text, nil
}
