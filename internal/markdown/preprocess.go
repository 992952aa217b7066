package markdown

import (
	"regexp"
	"strings"
)

// Preprocess repairs common invalid table markup produced by upstream text
// generators before the text is handed to the renderer. Non-table content
// passes through untouched.
func Preprocess(text string) string {
	if !strings.Contains(text, "|") {
		return text
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	headerSeen := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case isBlankTableRow(trimmed):
			// Spurious empty row, drop it.
			continue
		case isSeparatorRow(line):
			out = append(out, separatorRow(countSeparatorColumns(line)))
		case !headerSeen && isTableRow(trimmed):
			out = append(out, line)
			// Synthesize the separator the generator forgot, unless the
			// next source line already is one.
			if i+1 >= len(lines) || !isSeparatorRow(lines[i+1]) {
				out = append(out, separatorRow(countCells(trimmed)))
			}
			headerSeen = true
		default:
			out = append(out, line)
		}
	}

	return strings.Join(out, "\n")
}

// separatorPattern matches a row made only of pipes, dashes, colons and
// whitespace.
var separatorPattern = regexp.MustCompile(`^[\s|:\-]+$`)

func isSeparatorRow(line string) bool {
	return strings.Contains(line, "|") && strings.Contains(line, "-") &&
		separatorPattern.MatchString(line)
}

// isBlankTableRow reports whether the trimmed line consists only of pipes
// and whitespace with every cell empty.
func isBlankTableRow(trimmed string) bool {
	if !strings.Contains(trimmed, "|") || strings.Contains(trimmed, "-") {
		return false
	}
	return strings.Trim(trimmed, "| \t") == ""
}

// isTableRow reports whether the trimmed line looks like a table content
// row: delimited by pipes on both ends, no dashes.
func isTableRow(trimmed string) bool {
	return strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|") &&
		!strings.Contains(trimmed, "-")
}

// countSeparatorColumns derives the column count of a malformed separator
// row: pipe-delimited segments that hold anything, or at least a dash.
func countSeparatorColumns(line string) int {
	n := 0
	for _, seg := range strings.Split(line, "|") {
		if strings.TrimSpace(seg) != "" || strings.Contains(seg, "-") {
			n++
		}
	}
	if n < 1 {
		n = 1
	}
	return n
}

// countCells counts the cells of a pipe-delimited content row. The row is
// already trimmed and starts and ends with a pipe, so the outer split
// segments are empty.
func countCells(trimmed string) int {
	n := len(strings.Split(trimmed, "|")) - 2
	if n < 1 {
		n = 1
	}
	return n
}

// separatorRow builds a canonical separator with one --- cell per column.
func separatorRow(columns int) string {
	return "|" + strings.Repeat(" --- |", columns)
}
