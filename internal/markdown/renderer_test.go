package markdown

import (
	"strings"
	"testing"
)

func TestParseEmptyInput(t *testing.T) {
	r := Default()
	for _, input := range []string{"", "   ", "\n\t\n"} {
		if got := r.Parse(input); got != "" {
			t.Errorf("Parse(%q) = %q, want empty string", input, got)
		}
	}
}

func TestParseValueCoercion(t *testing.T) {
	r := Default()
	if got := r.ParseValue(nil); got != "" {
		t.Errorf("ParseValue(nil) = %q, want empty string", got)
	}
	if got := r.ParseValue(42); got != "42" {
		t.Errorf("ParseValue(42) = %q, want %q", got, "42")
	}
	if got := r.ParseValue("**hi**"); !strings.Contains(got, "<strong>hi</strong>") {
		t.Errorf("ParseValue(string) must parse markdown, got %q", got)
	}
}

func TestParseBasicMarkdown(t *testing.T) {
	got := Default().Parse("**bold** and *italic*")
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("missing bold in %q", got)
	}
	if !strings.Contains(got, "<em>italic</em>") {
		t.Errorf("missing italic in %q", got)
	}
}

func TestParseDeterministic(t *testing.T) {
	input := "# Title\n\nSome *text* with a [link](https://example.com).\n\n```go\nfmt.Println(1)\n```"
	r := Default()
	first := r.Parse(input)
	second := r.Parse(input)
	if first != second {
		t.Errorf("Parse is not deterministic:\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestParseRepairsTable(t *testing.T) {
	got := Default().Parse("| a | b |\n| 1 | 2 |")
	for _, want := range []string{"<table>", "<thead>", "<th>a</th>", "<tbody>", "<td>1</td>"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestParseBreaks(t *testing.T) {
	got := Default().Parse("line one\nline two")
	if !strings.Contains(got, "<br") {
		t.Errorf("single newline should break with default options, got %q", got)
	}

	noBreaks := NewRenderer(Options{Sanitize: true, Highlight: true, Breaks: false})
	if got := noBreaks.Parse("line one\nline two"); strings.Contains(got, "<br") {
		t.Errorf("breaks disabled but got %q", got)
	}
}

func TestParseAutolinks(t *testing.T) {
	got := Default().Parse("visit https://example.com now")
	if !strings.Contains(got, `<a href="https://example.com"`) {
		t.Errorf("bare URL not autolinked: %q", got)
	}
}

func TestParseForcesAnchorTarget(t *testing.T) {
	for _, input := range []string{
		"[click](https://example.com)",
		"see https://example.com",
	} {
		got := Default().Parse(input)
		if !strings.Contains(got, `target="_blank"`) {
			t.Errorf("anchor without target for %q: %q", input, got)
		}
	}
}

func TestParseHighlightWrapsCode(t *testing.T) {
	r := Default()

	// Highlighted, unrecognized-language and untagged blocks must all share
	// one container shape: a single outer wrapper with no nested pre.
	cases := []struct {
		name  string
		input string
	}{
		{"highlighted", "```go\nfmt.Println(\"hi\")\n```"},
		{"unrecognized", "```nosuchlanguage\na < b\n```"},
		{"untagged", "```\nplain\n```"},
	}
	for _, tc := range cases {
		got := r.Parse(tc.input)
		if !strings.HasPrefix(got, `<pre class="hljs"><code>`) {
			t.Errorf("%s block does not start with wrapper: %q", tc.name, got)
		}
		if n := strings.Count(got, "<pre"); n != 1 {
			t.Errorf("%s block has %d pre tags, want 1: %q", tc.name, n, got)
		}
		if n := strings.Count(got, "<code"); n != 1 {
			t.Errorf("%s block has %d code tags, want 1: %q", tc.name, n, got)
		}
	}

	got := r.Parse("```go\nfmt.Println(\"hi\")\n```")
	if !strings.Contains(got, "<span") {
		t.Errorf("highlighted block has no highlight spans: %q", got)
	}
	got = r.Parse("```nosuchlanguage\na < b\n```")
	if !strings.Contains(got, "a &lt; b") {
		t.Errorf("plain block not escaped: %q", got)
	}
}

func TestSanitizeStripsScripts(t *testing.T) {
	r := Default()
	inputs := []string{
		"<script>alert('x')</script>",
		"hello <script src=\"https://evil.example/x.js\"></script> world",
		"<img src=\"x\" onerror=\"alert(1)\">",
		"<p onclick=\"alert(1)\">text</p>",
		"[link](javascript:alert(1))",
		"<div data-secret=\"1\">d</div>",
	}
	for _, input := range inputs {
		got := r.Parse(input)
		lower := strings.ToLower(got)
		if strings.Contains(lower, "<script") {
			t.Errorf("script tag survived for %q: %q", input, got)
		}
		if strings.Contains(lower, "onerror") || strings.Contains(lower, "onclick") {
			t.Errorf("event attribute survived for %q: %q", input, got)
		}
		if strings.Contains(lower, "javascript:") {
			t.Errorf("javascript URL survived for %q: %q", input, got)
		}
		if strings.Contains(lower, "data-secret") {
			t.Errorf("data attribute survived for %q: %q", input, got)
		}
	}
}

func TestSanitizeKeepsAllowedTags(t *testing.T) {
	got := Default().Parse("> quote\n\n- item\n\n# Head\n\n`code`")
	for _, want := range []string{"<blockquote>", "<li>", "<h1", "<code>"} {
		if !strings.Contains(got, want) {
			t.Errorf("allowed tag %q stripped from %q", want, got)
		}
	}
}

func TestUnsafePreservesRawHTML(t *testing.T) {
	input := "before <marquee>raw</marquee> after"
	got := Unsafe().Parse(input)
	if !strings.Contains(got, "<marquee>raw</marquee>") {
		t.Errorf("unsafe renderer must preserve raw HTML, got %q", got)
	}

	if safe := Default().Parse(input); strings.Contains(safe, "<marquee>") {
		t.Errorf("safe renderer must strip unknown tags, got %q", safe)
	}
}

func TestEscapeHTML(t *testing.T) {
	got := EscapeHTML(`& < > " '`)
	for _, want := range []string{"&amp;", "&lt;", "&gt;"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
	for _, raw := range []string{"<", ">", `"`} {
		if strings.Contains(got, raw) {
			t.Errorf("unescaped %q in %q", raw, got)
		}
	}
}
