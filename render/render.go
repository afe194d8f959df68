package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dirhq88/hangul-dtw/align"
	"github.com/dirhq88/hangul-dtw/jamo"
)

// gapMark labels the boundary row/column of the matrix and the gap side
// of an insertion or deletion.
const gapMark = "·"

// Console renders results as plain text. It implements align.Renderer.
type Console struct {
	Out io.Writer
}

// New returns a Console writing to w.
func New(w io.Writer) *Console { return &Console{Out: w} }

// RenderMatrix writes the accumulated-cost matrix as a table: the column
// header carries the raw jamo, the row header the ground-truth jamo, and
// every cell on the alignment path is marked with '*'.
func (c *Console) RenderMatrix(res *align.Result) error {
	onPath := make(map[align.Coord]bool, len(res.Path))
	for _, p := range res.Path {
		onPath[p] = true
	}

	tw := tabwriter.NewWriter(c.Out, 0, 0, 2, ' ', tabwriter.AlignRight)

	var sb strings.Builder
	sb.WriteString("\t" + gapMark)
	for _, u := range res.Raw.Units {
		sb.WriteString("\t" + string(u.Rune))
	}
	if _, err := fmt.Fprintln(tw, sb.String()); err != nil {
		return err
	}

	for i := 0; i < res.Matrix.Rows(); i++ {
		sb.Reset()
		if i == 0 {
			sb.WriteString(gapMark)
		} else {
			sb.WriteString(string(res.GT.Units[i-1].Rune))
		}
		for j := 0; j < res.Matrix.Cols(); j++ {
			mark := ""
			if onPath[align.Coord{I: i, J: j}] {
				mark = "*"
			}
			sb.WriteString(fmt.Sprintf("\t%.1f%s", res.Matrix.At(i, j), mark))
		}
		if _, err := fmt.Fprintln(tw, sb.String()); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// RenderAlignment writes one block per syllable span: the syllable
// correspondence header, then the unit operations that justify it.
func (c *Console) RenderAlignment(res *align.Result) error {
	for _, span := range res.Syllables {
		header := fmt.Sprintf("%s <-> %s",
			syllableLabel(span.GT, res.GT),
			syllableLabel(span.Raw, res.Raw))
		if _, err := fmt.Fprintln(c.Out, header); err != nil {
			return err
		}
		for _, st := range res.Units[span.Start:span.End] {
			line := fmt.Sprintf("  %-10s %s -> %s",
				st.Op, unitLabel(st.GT, res.GT), unitLabel(st.Raw, res.Raw))
			if st.Cost > 0 {
				line += fmt.Sprintf("  (cost %.1f)", st.Cost)
			}
			if _, err := fmt.Fprintln(c.Out, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// syllableLabel formats one side of a span header, e.g. "[4 요]" or the
// gap mark when the side is unmatched.
func syllableLabel(indices []int, seq jamo.Sequence) string {
	if len(indices) == 0 {
		return gapMark
	}
	parts := make([]string, len(indices))
	for k, idx := range indices {
		parts[k] = fmt.Sprintf("%d %c", idx, seq.Syllables[idx].Rune)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// unitLabel formats one consumed unit, or the gap mark.
func unitLabel(idx int, seq jamo.Sequence) string {
	if idx == align.Gap {
		return gapMark
	}
	return string(seq.Units[idx].Rune)
}
