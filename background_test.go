package tileplay

import (
	"image"
	"testing"
)

// buildBackground assembles a layer from a grid of tile ids, -1 meaning
// an empty cell. The fake sheet is 128px wide with packed 16px tiles.
func buildBackground(grid [][]int, flips map[[2]int][2]bool) *Background {
	height := len(grid)
	width := len(grid[0])

	cells := make([]*Cell, width*height)
	for y, row := range grid {
		for x, id := range row {
			if id < 0 {
				continue
			}
			c := &Cell{ID: uint32(id)}
			if f, ok := flips[[2]int{x, y}]; ok {
				c.FlipH, c.FlipV = f[0], f[1]
			}
			cells[y*width+x] = c
		}
	}

	return &Background{
		Name:       "background",
		geom:       SheetGeometry{TileWidth: 16, TileHeight: 16},
		cells:      cells,
		width:      width,
		height:     height,
		sheetWidth: 128,
	}
}

func TestEmptyCellsProduceNoDraws(t *testing.T) {
	bg := buildBackground([][]int{
		{-1, -1, -1},
		{-1, -1, -1},
	}, nil)

	if got := bg.draws(); len(got) != 0 {
		t.Errorf("empty layer produced %d draw calls, want 0", len(got))
	}
}

func TestDrawsSkipOnlyEmptyCells(t *testing.T) {
	bg := buildBackground([][]int{
		{0, -1, 2},
		{-1, 9, -1},
	}, nil)

	if got := bg.draws(); len(got) != 3 {
		t.Errorf("got %d draw calls, want 3", len(got))
	}
}

func TestDrawPositionsAndSourceRects(t *testing.T) {
	bg := buildBackground([][]int{
		{0, 7},
		{8, 12},
	}, nil)

	want := []tileDraw{
		{src: image.Rect(0, 0, 16, 16), x: 0, y: 0},
		{src: image.Rect(112, 0, 128, 16), x: 16, y: 0},
		{src: image.Rect(0, 16, 16, 32), x: 0, y: 16},
		{src: image.Rect(64, 16, 80, 32), x: 16, y: 16},
	}

	got := bg.draws()
	if len(got) != len(want) {
		t.Fatalf("got %d draw calls, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("draw %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// Cells resolve in row-major order, matching the layer's storage.
func TestDrawOrderRowMajor(t *testing.T) {
	bg := buildBackground([][]int{
		{1, 2},
		{3, 4},
	}, nil)

	var lastX, lastY float64 = -1, 0
	for i, d := range bg.draws() {
		if d.y < lastY || (d.y == lastY && d.x <= lastX) {
			t.Fatalf("draw %d at (%g,%g) out of row-major order", i, d.x, d.y)
		}
		if d.y > lastY {
			lastX = -1
		}
		lastX, lastY = d.x, d.y
	}
}

func TestFlipFlagsCarried(t *testing.T) {
	bg := buildBackground([][]int{
		{5, 5, 5},
	}, map[[2]int][2]bool{
		{0, 0}: {true, false},
		{1, 0}: {false, true},
		{2, 0}: {true, true},
	})

	got := bg.draws()
	if len(got) != 3 {
		t.Fatalf("got %d draw calls, want 3", len(got))
	}
	wantFlips := [][2]bool{{true, false}, {false, true}, {true, true}}
	for i, d := range got {
		if d.flipH != wantFlips[i][0] || d.flipV != wantFlips[i][1] {
			t.Errorf("draw %d flips = (%v,%v), want (%v,%v)",
				i, d.flipH, d.flipV, wantFlips[i][0], wantFlips[i][1])
		}
	}
}
