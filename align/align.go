package align

import "github.com/dirhq88/hangul-dtw/jamo"

// Align — jamo-level DTW alignment of two Hangul strings.
//
// Description:
//
//	Align decomposes the ground-truth and raw strings into phonetic-unit
//	sequences, computes the accumulated-cost DTW matrix under the
//	configured cost scheme, backtraces the optimal path with a fixed
//	diagonal-first tie order, and folds the path back into unit-level
//	steps and syllable-level spans.
//
// Pipeline:
//  1. jamo.Decompose both inputs under the same foreign-rune policy;
//     a decomposition failure surfaces before any matrix work.
//  2. Fill the (n+1)×(m+1) matrix and backtrace (see fillMatrix).
//  3. Decode the path into Steps and group them into SyllableSpans.
//  4. If requested, hand the finished Result to the Renderer; rendering
//     never changes the returned data.
//
// Empty inputs are valid and produce a degenerate all-gap alignment.
//
// Errors:
//   - wrapped jamo.ErrForeignRune — non-Hangul rune under ForeignFail.
//   - wrapped ErrBadCosts         — invalid cost scheme.
//
// Complexity: O(n·m) time and memory over the unit counts. Align has no
// shared mutable state; concurrent calls are safe.
func Align(gtText, rawText string, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Costs.validate(); err != nil {
		return nil, err
	}

	gtSeq, err := jamo.Decompose(gtText, o.Foreign)
	if err != nil {
		return nil, err
	}
	rawSeq, err := jamo.Decompose(rawText, o.Foreign)
	if err != nil {
		return nil, err
	}

	mx, path := fillMatrix(gtSeq, rawSeq, o.Costs)

	units, err := unitSteps(path, gtSeq, rawSeq, mx, o.Costs)
	if err != nil {
		return nil, err
	}

	res := &Result{
		GT:        gtSeq,
		Raw:       rawSeq,
		Matrix:    mx,
		Path:      path,
		Units:     units,
		Syllables: groupSyllables(units, gtSeq, rawSeq),
	}

	if o.Renderer != nil {
		if o.RenderMatrix {
			if err = o.Renderer.RenderMatrix(res); err != nil {
				return nil, err
			}
		}
		if o.RenderAlignment {
			if err = o.Renderer.RenderAlignment(res); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}
