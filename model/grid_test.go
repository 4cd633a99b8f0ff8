package model

import (
	"testing"

	"github.com/pkg/errors"
)

// collectRows drains the Rows view into a plain matrix.
func collectRows(g *Grid) [][]bool {
	var out [][]bool
	for row := range g.Rows() {
		var cells []bool
		for cell := range row {
			cells = append(cells, cell)
		}
		out = append(out, cells)
	}
	return out
}

func TestAllDeadGridStaysDead(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {1, 1}, {5, 3}, {0, 4}, {4, 0}} {
		grid := NewGrid(dims[0], dims[1])
		for i := 0; i < 3; i++ {
			if grid.Advance() {
				t.Fatalf("dead %dx%d grid reported a change on advance %d", dims[0], dims[1], i)
			}
		}
		if grid.CountLivingCells() != 0 {
			t.Fatalf("dead %dx%d grid has living cells after advancing", dims[0], dims[1])
		}
	}
}

func TestSeedRoundTrip(t *testing.T) {
	grid, err := NewGridFromSeed("GLIDER", [][]uint8{
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if grid.Name() != "GLIDER" {
		t.Fatalf("name = %q, expected GLIDER", grid.Name())
	}
	if grid.Width() != 3 || grid.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, expected 3x3", grid.Width(), grid.Height())
	}

	expected := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	rows := collectRows(grid)
	for y := range expected {
		for x := range expected[y] {
			if rows[y][x] != expected[y][x] {
				t.Fatalf("cell (%d,%d) = %v, expected %v", x, y, rows[y][x], expected[y][x])
			}
		}
	}
}

func TestJaggedSeedTruncatesToShortestRow(t *testing.T) {
	grid, err := NewGridFromSeed("jagged", [][]uint8{
		{1, 1, 1},
		{1, 1},
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if grid.Width() != 2 {
		t.Fatalf("width = %d, expected 2 (shortest row)", grid.Width())
	}
	if grid.Height() != 2 {
		t.Fatalf("height = %d, expected 2", grid.Height())
	}
	for _, row := range collectRows(grid) {
		if len(row) != 2 {
			t.Fatalf("row view has %d cells, expected 2", len(row))
		}
		if !row[0] || !row[1] {
			t.Fatalf("expected every kept cell to be alive, got %v", row)
		}
	}
}

func TestEmptySeedFails(t *testing.T) {
	if _, err := NewGridFromSeed("empty", nil); !errors.Is(err, ErrEmptySeed) {
		t.Fatalf("expected ErrEmptySeed, got %v", err)
	}
}

func TestZeroWidthSeedIsDegenerate(t *testing.T) {
	grid, err := NewGridFromSeed("thin", [][]uint8{{}, {1}})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if grid.Width() != 0 || grid.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, expected 0x2", grid.Width(), grid.Height())
	}
	if grid.Advance() {
		t.Fatal("degenerate grid reported a change")
	}
}

func TestSetAlive(t *testing.T) {
	grid := NewGrid(3, 3)
	grid.SetAlive([]Point{{X: 0, Y: 0}, {X: 2, Y: 1}})

	expects := map[[2]int]bool{
		{0, 0}: true,
		{2, 1}: true,
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if grid.Get(x, y) != shouldBeAlive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, grid.Get(x, y), shouldBeAlive)
			}
		}
	}
}

func TestSetAliveOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an out-of-range point")
		}
	}()
	NewGrid(2, 2).SetAlive([]Point{{X: 2, Y: 0}})
}

func TestBlinkerOscillates(t *testing.T) {
	grid, err := NewGridFromSeed("blinker", [][]uint8{
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if !grid.Advance() {
		t.Fatal("first advance reported no change")
	}
	if got := grid.String(); got != "...\n+++\n...\n" {
		t.Fatalf("after first advance:\n%s", got)
	}

	if !grid.Advance() {
		t.Fatal("second advance reported no change")
	}
	if got := grid.String(); got != ".+.\n.+.\n.+.\n" {
		t.Fatalf("after second advance:\n%s", got)
	}
}

func TestBlockIsStableAndAdvanceIdempotent(t *testing.T) {
	grid := NewGrid(4, 4)
	grid.SetAlive([]Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}})
	before := grid.String()

	for i := 0; i < 3; i++ {
		if grid.Advance() {
			t.Fatalf("stable block reported a change on advance %d", i)
		}
		if grid.String() != before {
			t.Fatalf("stable block mutated on advance %d:\n%s", i, grid.String())
		}
	}
}

func TestCornerCellSurvivesWithTwoNeighbors(t *testing.T) {
	grid := NewGrid(3, 3)
	grid.SetAlive([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})

	if !grid.Advance() {
		t.Fatal("expected the pre-block to change")
	}
	// The corner keeps its 2 clamped neighbors and survives; (1,1) is born.
	if got := grid.String(); got != "++.\n++.\n...\n" {
		t.Fatalf("after advance:\n%s", got)
	}
	if grid.Advance() {
		t.Fatal("block should be a fixed point")
	}
}

func TestNoWraparoundAtEdges(t *testing.T) {
	grid, err := NewGridFromSeed("edge-blinker", [][]uint8{
		{1, 0, 0},
		{1, 0, 0},
		{1, 0, 0},
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	grid.Advance()
	if got := grid.String(); got != "...\n++.\n...\n" {
		t.Fatalf("after advance:\n%s", got)
	}
	// Under a toroidal topology (2,1) would see three live cells and be born.
	if grid.Get(2, 1) {
		t.Fatal("right edge cell born, wraparound applied")
	}
}

func TestRowsViewIsRestartableAndReadOnly(t *testing.T) {
	grid, err := NewGridFromSeed("view", [][]uint8{
		{1, 0},
		{0, 1},
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	before := grid.String()

	first := collectRows(grid)
	// Abandon an iteration halfway to check the view restarts cleanly.
	for range grid.Rows() {
		break
	}
	second := collectRows(grid)

	for y := range first {
		for x := range first[y] {
			if first[y][x] != second[y][x] {
				t.Fatalf("view differs between iterations at (%d,%d)", x, y)
			}
		}
	}
	if grid.String() != before {
		t.Fatal("iterating the view mutated the grid")
	}
}
