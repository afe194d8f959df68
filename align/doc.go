// Package align computes jamo-level DTW alignments between Hangul
// strings: the cost model, the accumulated-cost matrix with its
// deterministic backtrace, and the re-aggregation of the unit-level path
// into syllable-level correspondences.
//
// 🚀 Why DTW over jamo?
//
//	A misspelled transcript rarely differs from its ground truth by whole
//	syllables — it differs by a vowel here, a dropped final consonant
//	there, an extra prolonged syllable. Decomposing both strings into
//	their phonetic units and warping those sequences against each other
//	finds the minimum-cost monotonic correspondence even when the
//	syllable counts disagree.
//
// ✨ Key features:
//   - explicit Costs scheme (gap / same-kind / cross-kind / per-pair
//     overrides), YAML-loadable, validated before any matrix work
//   - fixed backtrace tie order diagonal > vertical > horizontal, so
//     identical inputs always produce the identical path
//   - unit Steps (match / substitute / delete / insert) plus
//     SyllableSpans that keep many-to-one correspondences intact
//   - empty inputs degrade to an all-gap alignment instead of failing
//
// ⚙️ Usage:
//
//	opts := align.DefaultOptions()
//	opts.Costs.CrossKind = 3
//
//	res, err := align.Align("안녕하세요", "안녕하세여", &opts)
//	if err != nil {
//	  // wrapped jamo.ErrForeignRune or align.ErrBadCosts
//	}
//	fmt.Println(res.Distance(), len(res.Syllables))
//
// Performance:
//
//   - Time:   O(n·m) over the two unit counts
//   - Memory: O(n·m) for the full matrix (required for the backtrace)
//
// Align is a pure function of its inputs; concurrent calls on independent
// pairs need no locking.
package align
