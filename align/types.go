package align

import (
	"errors"

	"github.com/dirhq88/hangul-dtw/jamo"
)

var (
	// ErrBadCosts indicates an invalid cost scheme: a negative penalty,
	// or a cross-kind substitution cheaper than a same-kind one.
	ErrBadCosts = errors.New("align: invalid cost scheme")

	// ErrDimensionMismatch indicates the cost matrix does not match the
	// decomposed sequence lengths. This is a programming-contract
	// violation; it cannot occur through Align.
	ErrDimensionMismatch = errors.New("align: matrix dimensions do not match sequence lengths")

	// ErrBadPath indicates a path step that does not advance by a single
	// diagonal, vertical, or horizontal move. Also a contract violation.
	ErrBadPath = errors.New("align: path step is not a unit move")
)

// Gap marks the unconsumed side of an insertion or deletion Step.
const Gap = -1

// Coord is one cell coordinate of the cost matrix. The alignment path is
// an ordered Coord slice from {0,0} to {len(gt units), len(raw units)}.
type Coord struct {
	I int
	J int
}

// Op classifies one alignment step.
type Op uint8

const (
	// OpMatch is a diagonal step with zero cost.
	OpMatch Op = iota
	// OpSubstitute is a diagonal step with positive cost.
	OpSubstitute
	// OpDelete consumes a ground-truth unit against a gap (vertical step).
	OpDelete
	// OpInsert consumes a raw unit against a gap (horizontal step).
	OpInsert
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpMatch:
		return "match"
	case OpSubstitute:
		return "substitute"
	case OpDelete:
		return "delete"
	default:
		return "insert"
	}
}

// Step is the decoded meaning of one path edge: which unit each side
// consumed (index into the respective Sequence.Units, or Gap) and what
// the move cost.
type Step struct {
	Op   Op
	GT   int
	Raw  int
	Cost float64
}

// SyllableSpan is one syllable-level correspondence: the syllable indices
// it covers on each side (either list may be empty when the span consumes
// only one side, and either may hold several indices in many-to-one
// cases) plus the half-open [Start, End) range of Result.Units steps that
// justifies the grouping.
type SyllableSpan struct {
	GT    []int
	Raw   []int
	Start int
	End   int
}

// Options configures Align.
//
// Fields:
//   - Costs           — the penalty scheme for the unit cost model.
//   - Foreign         — policy for non-Hangul runes, applied to both inputs.
//   - RenderMatrix    — if true and Renderer is set, render the cost matrix.
//   - RenderAlignment — if true and Renderer is set, render the alignment.
//   - Renderer        — presentation collaborator; rendering never changes
//     the returned data.
type Options struct {
	Costs           Costs
	Foreign         jamo.ForeignPolicy
	RenderMatrix    bool
	RenderAlignment bool
	Renderer        Renderer
}

// DefaultOptions returns Options with DefaultCosts and ForeignFail.
func DefaultOptions() Options {
	return Options{Costs: DefaultCosts(), Foreign: jamo.ForeignFail}
}

// Renderer is the presentation collaborator invoked by Align when the
// render flags are set. render.Console is the provided implementation.
type Renderer interface {
	RenderMatrix(*Result) error
	RenderAlignment(*Result) error
}

// Result is the complete outcome of one alignment call. All fields are
// built fresh per call and are not mutated afterwards; treat them as
// read-only.
type Result struct {
	// GT and Raw are the decomposed input sequences.
	GT  jamo.Sequence
	Raw jamo.Sequence
	// Matrix is the accumulated-cost matrix, (GT.Len()+1)×(Raw.Len()+1).
	Matrix Matrix
	// Path is the backtraced alignment path from {0,0} to the bottom-right.
	Path []Coord
	// Units holds one Step per path edge: len(Units) == len(Path)-1.
	Units []Step
	// Syllables is the syllable-level grouping of Units.
	Syllables []SyllableSpan
}

// Distance returns the bottom-right matrix cell: the total cost of the
// optimal alignment. It equals the sum of Step costs along Units.
func (r *Result) Distance() float64 {
	return r.Matrix.At(r.Matrix.Rows()-1, r.Matrix.Cols()-1)
}
