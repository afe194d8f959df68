// Package jamo decomposes Hangul text into its phonetic units.
//
// 🚀 What is a jamo?
//
//	Every precomposed Hangul syllable block (가..힣) is an arithmetic
//	combination of an initial consonant (choseong), a vowel (jungseong)
//	and an optional final consonant (jongseong). 하 decomposes into two
//	units (ᄒ, ᅡ), 안 into three (ᄋ, ᅡ, ᆫ). Alignment algorithms that
//	work on whole characters cannot see this structure; this package
//	flattens a string into its unit sequence and keeps a range table
//	recording which contiguous slice of units each source syllable owns.
//
// ✨ Key features:
//   - pure arithmetic decomposition into conjoining jamo (U+1100 block)
//   - arena-style range table: flat unit slice + half-open spans,
//     O(1) unit→syllable and syllable→units lookup
//   - three policies for non-Hangul runes: fail, keep as an opaque
//     single unit, or drop them entirely
//
// ⚙️ Usage:
//
//	seq, err := jamo.Decompose("안녕", jamo.ForeignFail)
//	if err != nil {
//	  // a rune outside the syllable block range, wrapped ErrForeignRune
//	}
//	for _, u := range seq.Units {
//	  fmt.Printf("%c is the %s of syllable %d\n", u.Rune, u.Kind, u.Syllable)
//	}
//
// Complexity: O(len(text)) time, O(len(text)) memory. Decompose is a pure
// function; concurrent calls are safe.
package jamo
