package markdown

import (
	"strings"
	"testing"
)

func TestPreprocessNoPipes(t *testing.T) {
	input := "# Heading\n\nplain paragraph with a - dash\n"
	if got := Preprocess(input); got != input {
		t.Errorf("text without pipes must pass through unchanged, got %q", got)
	}
}

func TestPreprocessInsertsSeparator(t *testing.T) {
	input := "| a | b |\n| 1 | 2 |"
	want := "| a | b |\n| --- | --- |\n| 1 | 2 |"
	if got := Preprocess(input); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPreprocessKeepsExistingSeparator(t *testing.T) {
	input := "| a | b |\n| --- | --- |\n| 1 | 2 |"
	if got := Preprocess(input); got != input {
		t.Errorf("well-formed table must pass through unchanged, got %q", got)
	}
}

func TestPreprocessNormalizesMalformedSeparator(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "missing outer pipes",
			input: "| a | b |\n---|---",
			want:  "| a | b |\n| --- | --- |",
		},
		{
			name:  "alignment colons",
			input: "| a | b |\n|:---|---:|",
			want:  "| a | b |\n| --- | --- |",
		},
		{
			name:  "single column",
			input: "| a |\n|---|",
			want:  "| a |\n| --- |",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preprocess(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreprocessDropsBlankTableRows(t *testing.T) {
	input := "| a | b |\n| --- | --- |\n|  |  |\n| 1 | 2 |"
	want := "| a | b |\n| --- | --- |\n| 1 | 2 |"
	if got := Preprocess(input); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPreprocessSeparatorSynthesisIsOneShot(t *testing.T) {
	// Only the first table in a document gets the synthesized separator.
	input := "| a | b |\n| 1 | 2 |\n\ntext\n\n| c | d |\n| 3 | 4 |"
	got := Preprocess(input)
	if n := strings.Count(got, "| --- | --- |"); n != 1 {
		t.Errorf("expected exactly one synthesized separator, got %d in %q", n, got)
	}
}

func TestPreprocessColumnCountNeverZero(t *testing.T) {
	// A degenerate separator still yields at least one column.
	got := Preprocess("| - |")
	if !strings.Contains(got, "| --- |") {
		t.Errorf("got %q, want a one-column separator", got)
	}
}

func TestPreprocessIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"no tables here",
		"| a | b |\n| 1 | 2 |",
		"| a | b |\n---|---\n| 1 | 2 |",
		"| a | b |\n| --- | --- |\n|  |  |\n| 1 | 2 |",
		"text\n\n| x |\n| y |\n\nmore text",
		"broken | fragment without table shape",
	}
	for _, input := range inputs {
		once := Preprocess(input)
		twice := Preprocess(once)
		if once != twice {
			t.Errorf("not idempotent for %q:\nonce:  %q\ntwice: %q", input, once, twice)
		}
	}
}

func TestPreprocessPreservesNonTableLines(t *testing.T) {
	input := "before | inline pipe\n| a | b |\n| 1 | 2 |\nafter"
	got := Preprocess(input)
	if !strings.Contains(got, "before | inline pipe") || !strings.Contains(got, "after") {
		t.Errorf("non-table lines must survive, got %q", got)
	}
}
