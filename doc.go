// Package hanguldtw aligns two Hangul strings at the jamo level — the
// initial consonant / vowel / final consonant components of each syllable
// block — so that a raw, possibly misspelled transcript can be matched
// position-by-position against a ground-truth text even when syllable
// boundaries do not line up one-to-one.
//
// 🚀 What does it do?
//
//	A syllable block such as 안 hides three phonetic units (ᄋ, ᅡ, ᆫ);
//	comparing whole characters throws that structure away. hangul-dtw
//	decomposes both strings into flat jamo sequences, runs Dynamic Time
//	Warping over them with a phonetically aware cost model, and folds the
//	optimal path back into syllable-level correspondences — including
//	many-to-one cases where several raw syllables collapse onto a single
//	ground-truth syllable.
//
// ✨ Key features:
//   - deterministic DTW with a fixed diagonal-first tie-break
//   - explicit, pluggable cost schemes (gap / same-kind / cross-kind /
//     per-pair overrides, loadable from YAML)
//   - unit-level operations (match, substitution, insertion, deletion)
//     and syllable-level spans in one pass
//   - three policies for non-Hangul input: fail, keep as opaque unit, drop
//
// Under the hood, everything is organized under three subpackages:
//
//	jamo/   — syllable-block → phonetic-unit decomposition + range table
//	align/  — cost model, DTW matrix, backtrace, syllable aggregation
//	render/ — textual matrix and alignment rendering for terminals
//
// Quick example:
//
//	res, err := align.Align("안녕하세요", "안녕하세여", nil)
//	if err != nil { ... }
//	fmt.Println(res.Distance()) // total substitution cost: ㅛ vs ㅓ
//
//	go get github.com/dirhq88/hangul-dtw
package hanguldtw
