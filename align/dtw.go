package align

import "github.com/dirhq88/hangul-dtw/jamo"

// Matrix is the accumulated-cost matrix of one alignment, dimensions
// (len(gt units)+1) × (len(raw units)+1). Cell {0,0} is 0 and row 0 /
// column 0 hold cumulative gap costs ("align against nothing"). The
// matrix is fully determined by the two sequences and the cost scheme and
// is never mutated after construction.
//
// Storage is a single flat row-major slice: O(1) indexing, one
// allocation, no row pointers to chase.
type Matrix struct {
	rows int
	cols int
	data []float64
}

// Rows returns the row count (gt units + 1).
func (m Matrix) Rows() int { return m.rows }

// Cols returns the column count (raw units + 1).
func (m Matrix) Cols() int { return m.cols }

// At returns the accumulated cost at cell {i, j}.
func (m Matrix) At(i, j int) float64 { return m.data[i*m.cols+j] }

func (m Matrix) set(i, j int, v float64) { m.data[i*m.cols+j] = v }

// fillMatrix builds the DTW matrix over the two unit sequences and
// backtraces the optimal path.
//
// Algorithm:
//  1. Boundary: cell[i][0] = i·gap, cell[0][j] = j·gap.
//  2. Row-major fill:
//     cell[i][j] = min(cell[i-1][j-1] + cost(gt[i-1], raw[j-1]),
//     cell[i-1][j] + gap,
//     cell[i][j-1] + gap)
//  3. Backtrace from {n,m} to {0,0}, preferring on ties
//     diagonal > vertical (gt deletion) > horizontal (raw insertion),
//     so the path is reproducible for identical inputs. The comparison is
//     exact: the backtrace recomputes the very float expressions the fill
//     minimized.
//
// Empty sequences are valid; the matrix degenerates to its boundary and
// the path is pure insertion or deletion.
//
// Complexity: O(n·m) time and memory.
func fillMatrix(gt, raw jamo.Sequence, c Costs) (Matrix, []Coord) {
	n, m := gt.Len(), raw.Len()
	mx := Matrix{rows: n + 1, cols: m + 1, data: make([]float64, (n+1)*(m+1))}

	for i := 1; i <= n; i++ {
		mx.set(i, 0, float64(i)*c.Gap)
	}
	for j := 1; j <= m; j++ {
		mx.set(0, j, float64(j)*c.Gap)
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			diag := mx.At(i-1, j-1) + c.unit(gt.Units[i-1], raw.Units[j-1])
			vert := mx.At(i-1, j) + c.Gap
			horiz := mx.At(i, j-1) + c.Gap
			mx.set(i, j, min3(diag, vert, horiz))
		}
	}

	// Backtrace. Path length is at most n+m edges plus the origin.
	path := make([]Coord, 0, n+m+1)
	i, j := n, m
	path = append(path, Coord{I: i, J: j})
	for i > 0 || j > 0 {
		switch {
		case i == 0:
			j--
		case j == 0:
			i--
		case mx.At(i, j) == mx.At(i-1, j-1)+c.unit(gt.Units[i-1], raw.Units[j-1]):
			i--
			j--
		case mx.At(i, j) == mx.At(i-1, j)+c.Gap:
			i--
		default:
			j--
		}
		path = append(path, Coord{I: i, J: j})
	}

	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return mx, path
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
