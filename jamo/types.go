package jamo

import "errors"

// ErrForeignRune indicates the input contains a rune outside the Hangul
// syllable block while the policy is ForeignFail. The returned error wraps
// this sentinel together with the offending rune and its rune offset.
var ErrForeignRune = errors.New("jamo: rune outside Hangul syllable block")

// Kind classifies a phonetic unit within its syllable block.
type Kind uint8

const (
	// Initial is the leading consonant (choseong, U+1100..U+1112).
	Initial Kind = iota
	// Vowel is the medial vowel (jungseong, U+1161..U+1175).
	Vowel
	// Final is the optional trailing consonant (jongseong, U+11A8..U+11C2).
	Final
	// Other marks an opaque pass-through unit produced for a non-Hangul
	// rune under ForeignKeep.
	Other
)

// String returns a short human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Initial:
		return "initial"
	case Vowel:
		return "vowel"
	case Final:
		return "final"
	default:
		return "other"
	}
}

// ForeignPolicy controls how Decompose treats runes outside the Hangul
// syllable block (가..힣). Whatever policy a caller picks must be applied
// to both strings of an alignment pair; align.Align does so.
type ForeignPolicy uint8

const (
	// ForeignFail rejects the input with a wrapped ErrForeignRune.
	// This is the default.
	ForeignFail ForeignPolicy = iota
	// ForeignKeep emits the rune as a single opaque unit of Kind Other,
	// occupying a one-unit syllable of its own.
	ForeignKeep
	// ForeignDrop silently removes the rune. Dropped runes contribute no
	// syllable entry; surviving syllables keep their original rune offset
	// in Syllable.Pos.
	ForeignDrop
)

// Unit is one decomposed phonetic element. Units are immutable once
// produced by Decompose.
type Unit struct {
	// Kind is the position class of the unit within its syllable.
	Kind Kind
	// Rune is the conjoining-jamo code point (or the original rune for
	// Kind Other).
	Rune rune
	// Syllable indexes the owning entry of Sequence.Syllables.
	Syllable int
}

// Span is a half-open [Start, End) interval into Sequence.Units.
type Span struct {
	Start int
	End   int
}

// Len returns the number of units covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Syllable records one source syllable and the unit range it occupies.
type Syllable struct {
	// Rune is the original character (a syllable block, or any rune
	// under ForeignKeep).
	Rune rune
	// Pos is the rune offset of the character in the original input.
	Pos int
	// Units is the contiguous range of this syllable's units.
	Units Span
}

// Sequence is the decomposition of one input string: a flat ordered unit
// slice plus the syllable range table. Ranges are contiguous,
// non-overlapping, and cover Units exactly.
type Sequence struct {
	Units     []Unit
	Syllables []Syllable
}

// Len returns the number of phonetic units in the sequence.
func (s Sequence) Len() int { return len(s.Units) }
