package render

import "math/rand"

// cellSize is the edge in pixels of one occupancy cell.
const cellSize = 4

// occupancy tracks which cells of the canvas are covered by words. A
// summed-area table answers "is this rectangle free" in constant time.
type occupancy struct {
	cols, rows int
	used       []bool
	sums       []int32 // (cols+1) x (rows+1)
}

func newOccupancy(width, height int) *occupancy {
	cols := width / cellSize
	rows := height / cellSize
	o := &occupancy{
		cols: cols,
		rows: rows,
		used: make([]bool, cols*rows),
		sums: make([]int32, (cols+1)*(rows+1)),
	}
	return o
}

func (o *occupancy) sumAt(col, row int) int32 {
	return o.sums[row*(o.cols+1)+col]
}

// covered counts used cells in [col, col+w) x [row, row+h).
func (o *occupancy) covered(col, row, w, h int) int32 {
	return o.sumAt(col+w, row+h) - o.sumAt(col, row+h) - o.sumAt(col+w, row) + o.sumAt(col, row)
}

// sample picks a uniformly random free position for a w x h cell box.
func (o *occupancy) sample(w, h int, rng *rand.Rand) (col, row int, ok bool) {
	if w <= 0 || h <= 0 || w > o.cols || h > o.rows {
		return 0, 0, false
	}
	hits := 0
	for r := 0; r+h <= o.rows; r++ {
		for c := 0; c+w <= o.cols; c++ {
			if o.covered(c, r, w, h) == 0 {
				hits++
			}
		}
	}
	if hits == 0 {
		return 0, 0, false
	}
	target := rng.Intn(hits)
	for r := 0; r+h <= o.rows; r++ {
		for c := 0; c+w <= o.cols; c++ {
			if o.covered(c, r, w, h) != 0 {
				continue
			}
			if target == 0 {
				return c, r, true
			}
			target--
		}
	}
	return 0, 0, false
}

// mark covers the box and rebuilds the summed-area table.
func (o *occupancy) mark(col, row, w, h int) {
	for r := row; r < row+h && r < o.rows; r++ {
		for c := col; c < col+w && c < o.cols; c++ {
			o.used[r*o.cols+c] = true
		}
	}
	o.rebuild()
}

func (o *occupancy) rebuild() {
	stride := o.cols + 1
	for r := 0; r < o.rows; r++ {
		var line int32
		for c := 0; c < o.cols; c++ {
			if o.used[r*o.cols+c] {
				line++
			}
			o.sums[(r+1)*stride+c+1] = o.sums[r*stride+c+1] + line
		}
	}
}
