package beads

// Grid is the bead rack: rows are heights, columns are rods.
type Grid struct {
	cells [][]bool
	cols  int
}

func NewGrid(rows, cols int) *Grid {
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, cols)
	}
	return &Grid{cells: cells, cols: cols}
}

func (g *Grid) Rows() int { return len(g.cells) }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) Set(row, col int) {
	g.cells[row][col] = true
}

func (g *Grid) Occupied(row, col int) bool {
	return g.cells[row][col]
}

// RowCount returns the number of beads at height row.
func (g *Grid) RowCount(row int) int {
	count := 0
	for _, b := range g.cells[row] {
		if b {
			count++
		}
	}
	return count
}

// Collapse lets the beads of one row fall to the rightmost columns and
// returns how many there were.
func (g *Grid) Collapse(row int) int {
	cells := g.cells[row]
	count := 0
	for col, b := range cells {
		if b {
			count++
			cells[col] = false
		}
	}
	for col := g.cols - count; col < g.cols; col++ {
		cells[col] = true
	}
	return count
}

// ColumnSum counts the beads stacked on rod col.
func (g *Grid) ColumnSum(col int) int {
	sum := 0
	for _, row := range g.cells {
		if row[col] {
			sum++
		}
	}
	return sum
}

func (g *Grid) ColumnSums() []int {
	sums := make([]int, g.cols)
	for _, row := range g.cells {
		for col, b := range row {
			if b {
				sums[col]++
			}
		}
	}
	return sums
}
