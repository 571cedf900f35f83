package diffview

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// intralineMax caps the line length considered for intraline marking; past
// that the character diff costs more than the highlight is worth.
const intralineMax = 2048

// markIntraline computes the changed character ranges between the two sides
// of a replace row so the renderer can emphasize just the edits.
func markIntraline(r *Row) {
	if r.Kind != RowReplace {
		return
	}
	if len(r.Left) > intralineMax || len(r.Right) > intralineMax {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(r.Left, r.Right, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	leftOff, rightOff := 0, 0
	for _, d := range diffs {
		n := len(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			leftOff += n
			rightOff += n
		case diffmatchpatch.DiffDelete:
			r.LeftSpans = append(r.LeftSpans, Span{Start: leftOff, End: leftOff + n})
			leftOff += n
		case diffmatchpatch.DiffInsert:
			r.RightSpans = append(r.RightSpans, Span{Start: rightOff, End: rightOff + n})
			rightOff += n
		}
	}
	// Whole-line rewrites gain nothing from the marks; drop them.
	if spansCover(r.LeftSpans, len(r.Left)) && spansCover(r.RightSpans, len(r.Right)) {
		r.LeftSpans = nil
		r.RightSpans = nil
	}
}

func spansCover(spans []Span, length int) bool {
	if length == 0 {
		return false
	}
	covered := 0
	for _, s := range spans {
		covered += s.End - s.Start
	}
	return covered == length
}
