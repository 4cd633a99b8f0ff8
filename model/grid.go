package model

import (
	"iter"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/tomoyk/go-life-game/rules"
)

// live is the seed value that marks a cell as alive in pattern input.
const live uint8 = 1

// ErrEmptySeed is returned when a seed pattern has no rows, since the grid
// width cannot be derived from it.
var ErrEmptySeed = errors.New("seed pattern has no rows")

// Point is an (x, y) cell coordinate.
type Point struct {
	X, Y int
}

// Grid is the game board: a width×height matrix of live/dead cells plus a
// display name. Each Advance replaces the cells with the next generation;
// only the current generation is kept.
type Grid struct {
	name   string
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates an all-dead grid with the specified dimensions.
// Zero width or height yields a degenerate empty grid.
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

/*
NewGridFromSeed creates a grid from a named 0/1 seed pattern.

The grid height is the number of rows. The width is the length of the
shortest row, and every longer row is truncated to it: cells beyond the
shortest row are dropped, not padded. An empty pattern fails with
ErrEmptySeed.
*/
func NewGridFromSeed(name string, rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 {
		return nil, errors.Wrapf(ErrEmptySeed, "[NewGridFromSeed] pattern %q", name)
	}

	width := len(rows[0])
	for _, row := range rows[1:] {
		width = min(width, len(row))
	}

	cells := make([][]bool, len(rows))
	for y, row := range rows {
		cells[y] = make([]bool, width)
		for x := range width {
			cells[y][x] = row[x] == live
		}
	}

	return &Grid{
		name:   name,
		width:  width,
		height: len(rows),
		cells:  cells,
	}, nil
}

// Name returns the display label of the seed pattern
func (g *Grid) Name() string {
	return g.name
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y][x]
}

// SetAlive marks every referenced cell as alive. Coordinates must satisfy
// 0 <= x < width and 0 <= y < height; out-of-range points are a caller bug
// and panic on the index, they are not a recoverable error.
func (g *Grid) SetAlive(points []Point) {
	for _, p := range points {
		g.cells[p.Y][p.X] = true
	}
}

// Rows returns a lazy, restartable row-major view of the current generation,
// one sequence of live/dead values per row. Iterating never mutates the grid.
func (g *Grid) Rows() iter.Seq[iter.Seq[bool]] {
	cells := g.cells
	return func(yield func(iter.Seq[bool]) bool) {
		for _, row := range cells {
			if !yield(rowSeq(row)) {
				return
			}
		}
	}
}

func rowSeq(row []bool) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for _, cell := range row {
			if !yield(cell) {
				return
			}
		}
	}
}

// Advance computes the next generation from a snapshot of the current one
// and replaces the current generation with it. It returns true when at least
// one cell changed, and false once the grid has reached a fixed point; after
// that every further call keeps returning false.
//
// The next generation is computed in parallel over row stripes. Every worker
// reads only the previous generation, so the simultaneous-update rule holds.
func (g *Grid) Advance() bool {
	next := nextCells.Get(g.width, g.height)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers
		changed       = make([]bool, numWorkers)
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.width; x++ {
					alive := rules.ApplyConwayRules(g.countNeighbors(x, y), g.cells[y][x])
					next[y][x] = alive
					if alive != g.cells[y][x] {
						changed[i] = true
					}
				}
			}
			return nil
		})
	}

	// Workers never fail; Wait is only the join point.
	_ = eg.Wait()

	prev := g.cells
	g.cells = next
	nextCells.Put(prev)

	for _, c := range changed {
		if c {
			return true
		}
	}
	return false
}

// countNeighbors counts living neighbors among the up-to-8 adjacent cells.
// The scan range is clamped to the grid bounds: edge cells simply have fewer
// neighbors, there is no wraparound.
func (g *Grid) countNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// String renders the grid as one line per row, '+' for live and '.' for
// dead. It is a debugging convenience, not a stable format.
func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		for _, cell := range row {
			if cell {
				b.WriteByte('+')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
