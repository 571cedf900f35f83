// Package diffview turns git's unified diff output into rows suitable for
// side-by-side or inline rendering. It never computes content diffs itself;
// the hunks come from git.
package diffview

import (
	"bufio"
	"strconv"
	"strings"
)

// RowKind represents the semantic type of a presentation row.
type RowKind int

const (
	RowContext RowKind = iota
	RowAdd
	RowDel
	RowReplace
	RowHunk
	RowMeta
)

// Span marks a changed byte range within a row's text.
type Span struct {
	Start int
	End   int
}

// Row represents a single visual row. OldLine/NewLine are 1-based and zero
// when the side has no line (pure additions or deletions).
type Row struct {
	Left       string
	Right      string
	OldLine    int
	NewLine    int
	Kind       RowKind
	Meta       string // hunk header or metadata line text
	LeftSpans  []Span // changed ranges in Left, replace rows only
	RightSpans []Span // changed ranges in Right, replace rows only
}

type pendingLine struct {
	text string
	line int
}

// BuildRows parses a unified diff string into rows. Deletions are paired
// with subsequent additions as replacements within each hunk; leftovers stay
// as left-only or right-only rows.
func BuildRows(unified string) []Row {
	s := bufio.NewScanner(strings.NewReader(unified))
	s.Buffer(make([]byte, 0, 64*1024), 10*1024*1024) // allow large lines

	rows := make([]Row, 0, 256)
	pendingDel := make([]pendingLine, 0)

	flushPending := func() {
		for _, dl := range pendingDel {
			rows = append(rows, Row{Left: dl.text, OldLine: dl.line, Kind: RowDel})
		}
		pendingDel = pendingDel[:0]
	}

	inHunk := false
	oldLine, newLine := 0, 0
	for s.Scan() {
		line := s.Text()
		if strings.HasPrefix(line, "diff --git ") || strings.HasPrefix(line, "index ") ||
			strings.HasPrefix(line, "--- ") || strings.HasPrefix(line, "+++ ") ||
			strings.HasPrefix(line, "new file mode ") || strings.HasPrefix(line, "deleted file mode ") {
			flushPending()
			rows = append(rows, Row{Kind: RowMeta, Meta: line})
			continue
		}
		if strings.HasPrefix(line, "@@ ") {
			flushPending()
			oldLine, newLine = parseHunkHeader(line)
			rows = append(rows, Row{Kind: RowHunk, Meta: line})
			inHunk = true
			continue
		}
		if !inHunk {
			continue
		}

		if len(line) == 0 {
			// blank line inside hunk: treat as context
			flushPending()
			rows = append(rows, Row{OldLine: oldLine, NewLine: newLine, Kind: RowContext})
			oldLine++
			newLine++
			continue
		}

		switch line[0] {
		case ' ':
			flushPending()
			t := line[1:]
			rows = append(rows, Row{Left: t, Right: t, OldLine: oldLine, NewLine: newLine, Kind: RowContext})
			oldLine++
			newLine++
		case '-':
			pendingDel = append(pendingDel, pendingLine{text: line[1:], line: oldLine})
			oldLine++
		case '+':
			if len(pendingDel) > 0 {
				dl := pendingDel[0]
				pendingDel = pendingDel[1:]
				r := Row{Left: dl.text, Right: line[1:], OldLine: dl.line, NewLine: newLine, Kind: RowReplace}
				markIntraline(&r)
				rows = append(rows, r)
			} else {
				rows = append(rows, Row{Right: line[1:], NewLine: newLine, Kind: RowAdd})
			}
			newLine++
		case '\\':
			// "\ No newline at end of file"
			flushPending()
			rows = append(rows, Row{Kind: RowMeta, Meta: line})
		}
	}
	flushPending()
	return rows
}

// parseHunkHeader extracts the starting line numbers from "@@ -a,b +c,d @@".
func parseHunkHeader(line string) (oldStart, newStart int) {
	oldStart, newStart = 1, 1
	fields := strings.Fields(line)
	for _, f := range fields {
		switch {
		case strings.HasPrefix(f, "-"):
			oldStart = hunkStart(f[1:])
		case strings.HasPrefix(f, "+"):
			newStart = hunkStart(f[1:])
		}
	}
	return oldStart, newStart
}

func hunkStart(spec string) int {
	if i := strings.IndexByte(spec, ','); i >= 0 {
		spec = spec[:i]
	}
	n, err := strconv.Atoi(spec)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
