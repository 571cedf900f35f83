package diffview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleUnified = `diff --git a/f1.txt b/f1.txt
index 1234567..89abcde 100644
--- a/f1.txt
+++ b/f1.txt
@@ -1,3 +1,4 @@
 line1
-line2
+line2 changed
 line3
+line4
`

func TestBuildRows_PairsReplacements(t *testing.T) {
	rows := BuildRows(sampleUnified)

	var kinds []RowKind
	for _, r := range rows {
		kinds = append(kinds, r.Kind)
	}
	assert.Equal(t, []RowKind{
		RowMeta, RowMeta, RowMeta, RowMeta,
		RowHunk,
		RowContext, RowReplace, RowContext, RowAdd,
	}, kinds)

	replace := rows[6]
	assert.Equal(t, "line2", replace.Left)
	assert.Equal(t, "line2 changed", replace.Right)

	add := rows[8]
	assert.Equal(t, "", add.Left)
	assert.Equal(t, "line4", add.Right)
}

func TestBuildRows_LineNumbers(t *testing.T) {
	rows := BuildRows(sampleUnified)

	ctx := rows[5]
	assert.Equal(t, 1, ctx.OldLine)
	assert.Equal(t, 1, ctx.NewLine)

	replace := rows[6]
	assert.Equal(t, 2, replace.OldLine)
	assert.Equal(t, 2, replace.NewLine)

	add := rows[8]
	assert.Equal(t, 0, add.OldLine)
	assert.Equal(t, 4, add.NewLine)
}

func TestBuildRows_UnpairedDeletions(t *testing.T) {
	unified := "@@ -1,3 +1,1 @@\n line1\n-line2\n-line3\n"
	rows := BuildRows(unified)

	require.Len(t, rows, 4)
	assert.Equal(t, RowDel, rows[2].Kind)
	assert.Equal(t, "line2", rows[2].Left)
	assert.Equal(t, 2, rows[2].OldLine)
	assert.Equal(t, RowDel, rows[3].Kind)
	assert.Equal(t, 3, rows[3].OldLine)
}

func TestBuildRows_LaterHunkNumbers(t *testing.T) {
	unified := "@@ -10,2 +20,2 @@ func foo() {\n context\n-a\n+b\n"
	rows := BuildRows(unified)

	require.Len(t, rows, 3)
	assert.Equal(t, 10, rows[1].OldLine)
	assert.Equal(t, 20, rows[1].NewLine)
	assert.Equal(t, 11, rows[2].OldLine)
	assert.Equal(t, 21, rows[2].NewLine)
}

func TestBuildRows_EmptyInput(t *testing.T) {
	assert.Empty(t, BuildRows(""))
}

func TestParseHunkHeader(t *testing.T) {
	tests := []struct {
		line    string
		oldWant int
		newWant int
	}{
		{"@@ -1,3 +1,4 @@", 1, 1},
		{"@@ -10,2 +20,5 @@", 10, 20},
		{"@@ -7 +9 @@", 7, 9},
		{"@@ -0,0 +1,3 @@", 1, 1},
	}
	for _, tt := range tests {
		o, n := parseHunkHeader(tt.line)
		assert.Equal(t, tt.oldWant, o, tt.line)
		assert.Equal(t, tt.newWant, n, tt.line)
	}
}

func TestMarkIntraline(t *testing.T) {
	r := Row{Left: "the quick fox", Right: "the slow fox", Kind: RowReplace}
	markIntraline(&r)

	require.NotEmpty(t, r.LeftSpans)
	require.NotEmpty(t, r.RightSpans)

	left := r.Left[r.LeftSpans[0].Start:r.LeftSpans[0].End]
	right := r.Right[r.RightSpans[0].Start:r.RightSpans[0].End]
	assert.Contains(t, "quick", left)
	assert.Contains(t, "slow", right)
}

func TestMarkIntraline_WholeLineRewriteUnmarked(t *testing.T) {
	r := Row{Left: "aaaa", Right: "zzzz", Kind: RowReplace}
	markIntraline(&r)

	assert.Empty(t, r.LeftSpans)
	assert.Empty(t, r.RightSpans)
}
