package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/minihttp/packages/core/logging"
	"github.com/abdul-hamid-achik/minihttp/packages/http"
	"github.com/fatih/color"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// ConsoleRenderer writes a response as status line, headers and a body
// formatted according to its content type.
type ConsoleRenderer struct {
	writer      io.Writer
	noColor     bool
	highlighter Highlighter
	logger      *logging.Logger
}

type ConsoleOption func(*ConsoleRenderer)

func NewConsoleRenderer(opts ...ConsoleOption) *ConsoleRenderer {
	r := &ConsoleRenderer{
		writer: os.Stdout,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.noColor {
		r.highlighter = plainHighlighter{}
	} else if r.highlighter == nil {
		r.highlighter = DefaultHighlighter()
	}
	return r
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(r *ConsoleRenderer) {
		r.writer = w
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(r *ConsoleRenderer) {
		r.noColor = nc
	}
}

// WithHighlighter replaces the default chroma highlighter. It has no effect
// when color is disabled.
func WithHighlighter(h Highlighter) ConsoleOption {
	return func(r *ConsoleRenderer) {
		r.highlighter = h
	}
}

func WithLogger(l *logging.Logger) ConsoleOption {
	return func(r *ConsoleRenderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// Render writes the formatted response to the renderer's writer.
func (r *ConsoleRenderer) Render(resp *http.Response) error {
	out, err := r.Format(resp)
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.writer, out)
	return err
}

// Format returns the rendered response. The result depends only on resp and
// the renderer's options.
func (r *ConsoleRenderer) Format(resp *http.Response) (string, error) {
	body, err := resp.BodyText()
	if err != nil {
		return "", err
	}

	status := r.paint(color.FgBlue)
	name := r.paint(color.FgGreen)

	var b strings.Builder
	b.WriteString(status(fmt.Sprintf("%s %d %s", resp.HTTPVersion, resp.StatusCode, resp.StatusText)))
	b.WriteString("\n\n")

	for _, h := range resp.Headers {
		fmt.Fprintf(&b, "%s: %s\n", name(h.Name), h.Value)
	}
	b.WriteString("\n")

	kind := Classify(resp)
	r.logger.Debug("rendering body", "kind", kind.String(), "bytes", len(body))

	switch kind {
	case ContentJSON:
		b.WriteString(r.formatJSON(body))
	case ContentHTML:
		b.WriteString(r.highlight(body, "html"))
	default:
		b.WriteString(body)
	}
	b.WriteString("\n")

	return b.String(), nil
}

// FormatError writes err as a single line, tagged with its kind when it has
// one.
func (r *ConsoleRenderer) FormatError(err error) {
	red := r.paint(color.FgRed)

	var kinded interface{ Kind() string }
	if errors.As(err, &kinded) {
		fmt.Fprintf(r.writer, "%s %v\n", red(fmt.Sprintf("Error [%s]:", kinded.Kind())), err)
		return
	}
	fmt.Fprintf(r.writer, "%s %v\n", red("Error:"), err)
}

func (r *ConsoleRenderer) formatJSON(body string) string {
	if gjson.Valid(body) {
		body = strings.TrimSuffix(string(pretty.Pretty([]byte(body))), "\n")
	}
	return r.highlight(body, "json")
}

func (r *ConsoleRenderer) highlight(text, lang string) string {
	out, err := r.highlighter.Highlight(text, lang)
	if err != nil {
		r.logger.Debug("highlighting failed, using plain text", "lang", lang, "error", err)
		return text
	}
	return out
}

func (r *ConsoleRenderer) paint(attr color.Attribute) func(a ...any) string {
	c := color.New(attr)
	if r.noColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c.SprintFunc()
}
