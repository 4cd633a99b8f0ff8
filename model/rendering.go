package model

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomoyk/go-life-game/utils"
)

const (
	minCellSize = 1
	maxCellSize = 10
	maxOffset   = 100
	paletteSize = 16
)

// Setting holds the adjustable view state: where the board is drawn, how
// large each cell is, which palette color marks live cells, and how fast
// the simulation ticks.
type Setting struct {
	X, Y     int
	Size     int
	Color    int
	TickRate time.Duration
}

// NewSetting builds a Setting from the loaded config, clamping every field
// into its valid range.
func NewSetting(config utils.Config) *Setting {
	return &Setting{
		X:        clamp(config.OffsetX, 0, maxOffset),
		Y:        clamp(config.OffsetY, 0, maxOffset),
		Size:     clamp(config.CellSize, minCellSize, maxCellSize),
		Color:    ((config.Color % paletteSize) + paletteSize) % paletteSize,
		TickRate: config.TickRate,
	}
}

// AddSize grows or shrinks the cell blocks, staying within [1, 10].
func (s *Setting) AddSize(delta int) {
	s.Size = clamp(s.Size+delta, minCellSize, maxCellSize)
}

// NextColor cycles to the next of the 16 palette colors.
func (s *Setting) NextColor() {
	s.Color = (s.Color + 1) % paletteSize
}

// MoveX shifts the board horizontally, staying within [0, 100].
func (s *Setting) MoveX(delta int) {
	s.X = clamp(s.X+delta, 0, maxOffset)
}

// MoveY shifts the board vertically, staying within [0, 100].
func (s *Setting) MoveY(delta int) {
	s.Y = clamp(s.Y+delta, 0, maxOffset)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// Renderer draws a grid onto a tcell screen: a bold centered title bar, one
// colored block per live cell (white per dead cell), and a status line.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer returns a renderer drawing on the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame of the current generation. It only reads the grid.
func (r *Renderer) Draw(g *Grid, s *Setting, stats *utils.Stats, generation int) {
	r.screen.Clear()

	color := tcell.PaletteColor(s.Color)
	styleTitle := tcell.StyleDefault.Background(color).Foreground(tcell.ColorBlack).Bold(true)
	styleLive := tcell.StyleDefault.Background(color)
	styleDead := tcell.StyleDefault.Background(tcell.ColorWhite)

	// Terminal cells are roughly twice as tall as wide, so a square board
	// cell spans Size rows by 2*Size columns.
	cellW := s.Size * 2
	cellH := s.Size
	gridW := g.Width() * cellW

	r.fill(s.X, s.Y, gridW, 1, styleTitle)
	r.text(s.X+max(0, (gridW-len(g.Name()))/2), s.Y, g.Name(), styleTitle)

	y := s.Y + 1
	for row := range g.Rows() {
		x := s.X
		for cell := range row {
			style := styleDead
			if cell {
				style = styleLive
			}
			r.fill(x, y, cellW, cellH, style)
			x += cellW
		}
		y += cellH
	}

	status := fmt.Sprintf("gen %d | pop %d | avg %.1f | %.1f gen/sec",
		generation, g.CountLivingCells(), stats.AveragePopulation, stats.GenerationsPerSecond)
	r.text(s.X, y+1, status, tcell.StyleDefault)

	r.screen.Show()
}

func (r *Renderer) fill(x, y, w, h int, style tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			r.screen.SetContent(x+dx, y+dy, ' ', nil, style)
		}
	}
}

func (r *Renderer) text(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
