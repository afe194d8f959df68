package align

import (
	"fmt"

	"github.com/dirhq88/hangul-dtw/jamo"
)

// unitSteps decodes the alignment path into one Step per edge: a diagonal
// move is a match (zero cost) or substitution, a vertical move deletes a
// ground-truth unit, a horizontal move inserts a raw unit.
//
// The dimension and step-shape checks guard the programming contract; a
// path produced by fillMatrix can never trip them.
func unitSteps(path []Coord, gt, raw jamo.Sequence, mx Matrix, c Costs) ([]Step, error) {
	if mx.Rows() != gt.Len()+1 || mx.Cols() != raw.Len()+1 {
		return nil, fmt.Errorf("%w: matrix %dx%d, sequences %d and %d",
			ErrDimensionMismatch, mx.Rows(), mx.Cols(), gt.Len(), raw.Len())
	}
	if len(path) == 0 {
		return nil, nil
	}

	steps := make([]Step, 0, len(path)-1)
	for k := 1; k < len(path); k++ {
		prev, cur := path[k-1], path[k]
		di, dj := cur.I-prev.I, cur.J-prev.J
		switch {
		case di == 1 && dj == 1:
			cost := c.unit(gt.Units[cur.I-1], raw.Units[cur.J-1])
			op := OpMatch
			if cost > 0 {
				op = OpSubstitute
			}
			steps = append(steps, Step{Op: op, GT: cur.I - 1, Raw: cur.J - 1, Cost: cost})
		case di == 1 && dj == 0:
			steps = append(steps, Step{Op: OpDelete, GT: cur.I - 1, Raw: Gap, Cost: c.Gap})
		case di == 0 && dj == 1:
			steps = append(steps, Step{Op: OpInsert, GT: Gap, Raw: cur.J - 1, Cost: c.Gap})
		default:
			return nil, fmt.Errorf("%w: %v -> %v", ErrBadPath, prev, cur)
		}
	}
	return steps, nil
}

// groupSyllables folds the unit-level steps into syllable-level spans.
//
// Pass 1 builds maximal runs: a step extends the current run when at
// least one of its consumed sides continues the run's current syllable on
// that side. Pass 2 merges adjacent runs that share a boundary syllable
// on either side, so that interleaved many-to-one correspondences (a
// single ground-truth syllable whose units straddle several raw
// syllables, or vice versa) end up in one span instead of being split.
//
// One-to-one alignments therefore split exactly at simultaneous syllable
// boundaries, and pure insertion/deletion runs between unrelated
// syllables remain spans with an empty index list on the gap side.
func groupSyllables(steps []Step, gt, raw jamo.Sequence) []SyllableSpan {
	var runs []SyllableSpan
	for k, st := range steps {
		g, r := Gap, Gap
		if st.GT != Gap {
			g = gt.Units[st.GT].Syllable
		}
		if st.Raw != Gap {
			r = raw.Units[st.Raw].Syllable
		}

		if len(runs) > 0 {
			cur := &runs[len(runs)-1]
			if (g != Gap && g == lastIndex(cur.GT)) || (r != Gap && r == lastIndex(cur.Raw)) {
				cur.End = k + 1
				if g != Gap && g != lastIndex(cur.GT) {
					cur.GT = append(cur.GT, g)
				}
				if r != Gap && r != lastIndex(cur.Raw) {
					cur.Raw = append(cur.Raw, r)
				}
				continue
			}
		}

		run := SyllableSpan{Start: k, End: k + 1}
		if g != Gap {
			run.GT = append(run.GT, g)
		}
		if r != Gap {
			run.Raw = append(run.Raw, r)
		}
		runs = append(runs, run)
	}

	// Merge adjacent runs linked by a shared syllable. The path is
	// monotonic, so only the boundary indices can coincide.
	var spans []SyllableSpan
	for _, run := range runs {
		if len(spans) > 0 {
			prev := &spans[len(spans)-1]
			if sharesBoundary(*prev, run) {
				prev.End = run.End
				prev.GT = appendNew(prev.GT, run.GT)
				prev.Raw = appendNew(prev.Raw, run.Raw)
				continue
			}
		}
		spans = append(spans, run)
	}
	return spans
}

// sharesBoundary reports whether b's first syllable continues a's last
// one on either side.
func sharesBoundary(a, b SyllableSpan) bool {
	if len(a.GT) > 0 && len(b.GT) > 0 && a.GT[len(a.GT)-1] == b.GT[0] {
		return true
	}
	return len(a.Raw) > 0 && len(b.Raw) > 0 && a.Raw[len(a.Raw)-1] == b.Raw[0]
}

// appendNew appends src onto dst, skipping a duplicated boundary value.
func appendNew(dst, src []int) []int {
	for _, v := range src {
		if v != lastIndex(dst) {
			dst = append(dst, v)
		}
	}
	return dst
}

// lastIndex returns the final element of s, or Gap when s is empty.
func lastIndex(s []int) int {
	if len(s) == 0 {
		return Gap
	}
	return s[len(s)-1]
}
