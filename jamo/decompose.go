package jamo

import "fmt"

// Hangul syllable block and conjoining-jamo arithmetic
// (Unicode chapter 3.12, "Conjoining Jamo Behavior").
const (
	syllableBase = 0xAC00 // 가
	syllableLast = 0xD7A3 // 힣

	initialBase = 0x1100 // ᄀ
	vowelBase   = 0x1161 // ᅡ
	finalBase   = 0x11A7 // one before ᆨ; jongseong index 0 means "absent"

	vowelCount = 21
	finalCount = 28

	unitsPerInitial = vowelCount * finalCount // 588
)

// Decompose converts text into its phonetic-unit sequence. Each syllable
// block contributes two units (initial, vowel) or three (plus final);
// runes outside the block are handled according to policy.
//
// The returned Sequence is freshly allocated on every call; Decompose has
// no side effects and no shared state.
//
// Complexity: O(len(text)).
func Decompose(text string, policy ForeignPolicy) (Sequence, error) {
	runes := []rune(text)
	seq := Sequence{
		Units:     make([]Unit, 0, 3*len(runes)),
		Syllables: make([]Syllable, 0, len(runes)),
	}

	for pos, r := range runes {
		if r < syllableBase || r > syllableLast {
			switch policy {
			case ForeignKeep:
				k := len(seq.Syllables)
				seq.Units = append(seq.Units, Unit{Kind: Other, Rune: r, Syllable: k})
				seq.Syllables = append(seq.Syllables, Syllable{
					Rune:  r,
					Pos:   pos,
					Units: Span{Start: len(seq.Units) - 1, End: len(seq.Units)},
				})
				continue
			case ForeignDrop:
				continue
			default:
				return Sequence{}, fmt.Errorf("%w: %q at rune %d", ErrForeignRune, r, pos)
			}
		}

		idx := r - syllableBase
		cho := idx / unitsPerInitial
		jung := (idx % unitsPerInitial) / finalCount
		jong := idx % finalCount

		k := len(seq.Syllables)
		start := len(seq.Units)
		seq.Units = append(seq.Units,
			Unit{Kind: Initial, Rune: initialBase + cho, Syllable: k},
			Unit{Kind: Vowel, Rune: vowelBase + jung, Syllable: k},
		)
		if jong > 0 {
			seq.Units = append(seq.Units, Unit{Kind: Final, Rune: finalBase + jong, Syllable: k})
		}
		seq.Syllables = append(seq.Syllables, Syllable{
			Rune:  r,
			Pos:   pos,
			Units: Span{Start: start, End: len(seq.Units)},
		})
	}

	return seq, nil
}
