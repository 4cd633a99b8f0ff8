package model

import "sync"

// nextCells recycles successor cell buffers across Advance calls.
var nextCells = newCellPool()

// cellPool pools [][]bool cell buffers so repeated Advance calls do not
// allocate a fresh matrix per generation.
type cellPool struct {
	pool sync.Pool
}

func newCellPool() *cellPool {
	return &cellPool{
		pool: sync.Pool{
			New: func() interface{} {
				return [][]bool(nil)
			},
		},
	}
}

// Get returns a buffer reshaped to width×height. Contents are unspecified;
// callers must overwrite every cell.
func (p *cellPool) Get(width, height int) [][]bool {
	cells := p.pool.Get().([][]bool)
	if cap(cells) < height {
		cells = make([][]bool, height)
	}
	cells = cells[:height]
	for i := range cells {
		if cap(cells[i]) < width {
			cells[i] = make([]bool, width)
		}
		cells[i] = cells[i][:width]
	}
	return cells
}

// Put returns a buffer to the pool for reuse.
func (p *cellPool) Put(cells [][]bool) {
	p.pool.Put(cells)
}
