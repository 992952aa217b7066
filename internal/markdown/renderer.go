package markdown

import (
	"bytes"
	"fmt"
	"html"
	"log"
	"regexp"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Options configures a Renderer.
type Options struct {
	// Sanitize strips the rendered HTML down to the allow-listed tag and
	// attribute set. Disable only for trusted content.
	Sanitize bool
	// Highlight enables syntax highlighting of fenced code blocks.
	Highlight bool
	// Breaks renders single newlines as line breaks.
	Breaks bool
}

// DefaultOptions returns the safe defaults: sanitize, highlight and breaks
// all on.
func DefaultOptions() Options {
	return Options{Sanitize: true, Highlight: true, Breaks: true}
}

// Renderer converts markdown to HTML. Parse never panics past its boundary;
// malformed input degrades to HTML-escaped text.
type Renderer struct {
	opts   Options
	md     goldmark.Markdown
	policy *sanitizer
}

// NewRenderer builds a Renderer for the given options.
func NewRenderer(opts Options) *Renderer {
	exts := []goldmark.Extender{
		extension.GFM,
		extension.Typographer,
	}
	if opts.Highlight {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
			highlighting.WithGuessLanguage(false),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true),
				chromahtml.PreventSurroundingPre(true),
			),
			highlighting.WithWrapperRenderer(wrapCodeBlock),
		))
	}

	ropts := []renderer.Option{goldmarkhtml.WithUnsafe()}
	if opts.Breaks {
		ropts = append(ropts, goldmarkhtml.WithHardWraps())
	}

	r := &Renderer{
		opts: opts,
		md: goldmark.New(
			goldmark.WithExtensions(exts...),
			goldmark.WithRendererOptions(ropts...),
		),
	}
	if opts.Sanitize {
		r.policy = newSanitizer()
	}
	return r
}

var (
	defaultRenderer = NewRenderer(DefaultOptions())
	unsafeRenderer  = NewRenderer(Options{Sanitize: false, Highlight: true, Breaks: true})
)

// Default returns the shared sanitizing renderer.
func Default() *Renderer { return defaultRenderer }

// Unsafe returns the shared renderer that preserves raw HTML embedded in
// the markdown source. Use it only for trusted content.
func Unsafe() *Renderer { return unsafeRenderer }

// Parse converts markdown to HTML. Empty or whitespace-only input yields an
// empty string. Any failure during parsing falls back to the HTML-escaped
// raw input rather than propagating.
func (r *Renderer) Parse(text string) (out string) {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("markdown: render panic: %v", rec)
			out = EscapeHTML(text)
		}
	}()

	src := Preprocess(text)

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		log.Printf("markdown: convert: %v", err)
		return EscapeHTML(text)
	}

	rendered := ensureAnchorTargets(buf.String())
	if r.policy != nil {
		rendered = r.policy.Sanitize(rendered)
	}
	return rendered
}

// ParseValue renders arbitrary input. Nil yields an empty string; anything
// that is not a string is coerced to text and HTML-escaped with a warning
// instead of being parsed as markdown.
func (r *Renderer) ParseValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return r.Parse(s)
	default:
		log.Printf("markdown: expected string input, got %T; escaping", v)
		return EscapeHTML(fmt.Sprint(v))
	}
}

// EscapeHTML escapes the five HTML-sensitive characters (& < > " ').
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// wrapCodeBlock renders the container around fenced code output. The same
// shape is used whether or not the block was highlighted, so unrecognized
// languages fall through to escaped plain text in an identical wrapper.
func wrapCodeBlock(w util.BufWriter, c highlighting.CodeBlockContext, entering bool) {
	if entering {
		_, _ = w.WriteString(`<pre class="hljs"><code>`)
		return
	}
	_, _ = w.WriteString("</code></pre>\n")
}

var anchorOpenTag = regexp.MustCompile(`<a\s[^>]*>`)

// ensureAnchorTargets forces every anchor tag to carry a target attribute,
// regardless of the source markdown.
func ensureAnchorTargets(s string) string {
	return anchorOpenTag.ReplaceAllStringFunc(s, func(tag string) string {
		if strings.Contains(tag, "target=") {
			return tag
		}
		return strings.TrimSuffix(tag, ">") + ` target="_blank" rel="noopener noreferrer">`
	})
}
