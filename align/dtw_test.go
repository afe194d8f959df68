package align_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dirhq88/hangul-dtw/align"
)

// pairCases is a small cross-section of alignment inputs used by the
// structural property tests below.
var pairCases = []struct {
	name    string
	gt, raw string
}{
	{"identical", "안녕하세요", "안녕하세요"},
	{"vowel_sub", "안녕하세요", "안녕하세여"},
	{"raw_longer", "간", "가나안"},
	{"gt_longer", "가나안", "간"},
	{"disjoint", "하늘", "바다"},
	{"empty_gt", "", "가"},
	{"empty_raw", "가", ""},
}

// TestMatrix_Boundary verifies cell {0,0} is zero and that row 0 and
// column 0 carry cumulative gap costs.
func TestMatrix_Boundary(t *testing.T) {
	opts := align.DefaultOptions()
	opts.Costs.Gap = 0.5

	res, err := align.Align("안녕", "하세", &opts)
	require.NoError(t, err)

	m := res.Matrix
	assert.Equal(t, 0.0, m.At(0, 0))
	for i := 1; i < m.Rows(); i++ {
		assert.Equalf(t, float64(i)*0.5, m.At(i, 0), "row boundary %d", i)
	}
	for j := 1; j < m.Cols(); j++ {
		assert.Equalf(t, float64(j)*0.5, m.At(0, j), "column boundary %d", j)
	}
}

// TestMatrix_DimensionsMatchSequences verifies the matrix shape follows
// the decomposed unit counts.
func TestMatrix_DimensionsMatchSequences(t *testing.T) {
	for _, tc := range pairCases {
		res, err := align.Align(tc.gt, tc.raw, nil)
		require.NoErrorf(t, err, "%s", tc.name)
		assert.Equalf(t, res.GT.Len()+1, res.Matrix.Rows(), "%s rows", tc.name)
		assert.Equalf(t, res.Raw.Len()+1, res.Matrix.Cols(), "%s cols", tc.name)
	}
}

// TestPath_Monotonic verifies every path edge advances i, j, or both by
// exactly one and never retreats.
func TestPath_Monotonic(t *testing.T) {
	for _, tc := range pairCases {
		res, err := align.Align(tc.gt, tc.raw, nil)
		require.NoErrorf(t, err, "%s", tc.name)

		require.NotEmptyf(t, res.Path, "%s path", tc.name)
		assert.Equal(t, align.Coord{I: 0, J: 0}, res.Path[0])
		last := res.Path[len(res.Path)-1]
		assert.Equalf(t, align.Coord{I: res.GT.Len(), J: res.Raw.Len()}, last, "%s path end", tc.name)

		for k := 1; k < len(res.Path); k++ {
			di := res.Path[k].I - res.Path[k-1].I
			dj := res.Path[k].J - res.Path[k-1].J
			assert.Truef(t, di >= 0 && dj >= 0 && di <= 1 && dj <= 1 && di+dj > 0,
				"%s step %d: (%d,%d)", tc.name, k, di, dj)
		}
	}
}

// TestDistance_EqualsStepSum verifies the bottom-right cell equals the
// sum of step costs along the backtraced path, exactly, for every case.
func TestDistance_EqualsStepSum(t *testing.T) {
	for _, tc := range pairCases {
		res, err := align.Align(tc.gt, tc.raw, nil)
		require.NoErrorf(t, err, "%s", tc.name)

		sum := 0.0
		for _, st := range res.Units {
			sum += st.Cost
		}
		assert.Equalf(t, res.Distance(), sum, "%s matrix/backtrace consistency", tc.name)
	}
}

// TestUnits_OnePerPathEdge verifies len(Units) == len(Path)-1.
func TestUnits_OnePerPathEdge(t *testing.T) {
	for _, tc := range pairCases {
		res, err := align.Align(tc.gt, tc.raw, nil)
		require.NoErrorf(t, err, "%s", tc.name)
		assert.Equalf(t, len(res.Path)-1, len(res.Units), "%s", tc.name)
	}
}

// TestUnits_ConsumeEveryUnitExactlyOnce verifies no unit on either side
// is skipped or duplicated by the alignment.
func TestUnits_ConsumeEveryUnitExactlyOnce(t *testing.T) {
	for _, tc := range pairCases {
		res, err := align.Align(tc.gt, tc.raw, nil)
		require.NoErrorf(t, err, "%s", tc.name)

		gtSeen := make(map[int]int)
		rawSeen := make(map[int]int)
		for _, st := range res.Units {
			if st.GT != align.Gap {
				gtSeen[st.GT]++
			}
			if st.Raw != align.Gap {
				rawSeen[st.Raw]++
			}
		}
		for i := 0; i < res.GT.Len(); i++ {
			assert.Equalf(t, 1, gtSeen[i], "%s gt unit %d", tc.name, i)
		}
		for j := 0; j < res.Raw.Len(); j++ {
			assert.Equalf(t, 1, rawSeen[j], "%s raw unit %d", tc.name, j)
		}
	}
}

// TestBacktrace_DiagonalTiePrecedence pins the documented tie order.
// With gap 0.5 every predecessor of the first interior cell costs the
// same 1.0; the backtrace must take the diagonal, yielding the
// substitution path rather than a delete/insert pair.
func TestBacktrace_DiagonalTiePrecedence(t *testing.T) {
	opts := align.DefaultOptions()
	opts.Costs.Gap = 0.5

	res, err := align.Align("가", "나", &opts)
	require.NoError(t, err)

	assert.Equal(t, []align.Coord{{I: 0, J: 0}, {I: 1, J: 1}, {I: 2, J: 2}}, res.Path)
	require.Len(t, res.Units, 2)
	assert.Equal(t, align.OpSubstitute, res.Units[0].Op, "ᄀ vs ᄂ")
	assert.Equal(t, align.OpMatch, res.Units[1].Op, "ᅡ vs ᅡ")
}

// TestBacktrace_Reproducible verifies identical inputs produce identical
// paths across calls.
func TestBacktrace_Reproducible(t *testing.T) {
	first, err := align.Align("가나다라", "가느다라마", nil)
	require.NoError(t, err)

	for run := 0; run < 5; run++ {
		again, err := align.Align("가나다라", "가느다라마", nil)
		require.NoError(t, err)
		assert.Equal(t, first.Path, again.Path)
		assert.Equal(t, first.Units, again.Units)
	}
}
