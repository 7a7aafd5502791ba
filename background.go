package tileplay

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cell is one populated slot of a tile layer: a tile id within the
// layer's tileset plus the orientation bits stored in the map file.
type Cell struct {
	ID    uint32
	FlipH bool
	FlipV bool
}

// tileDraw is one resolved draw call: where to sample the sheet and
// where the tile lands in scene pixels.
type tileDraw struct {
	src          image.Rectangle
	x, y         float64
	flipH, flipV bool
}

// Background renders one tile layer of the map. Cells are stored
// row-major, nil where the map leaves the slot empty; the slice is
// decoded once at load and never mutated.
type Background struct {
	Name   string
	sheet  *ebiten.Image
	geom   SheetGeometry
	cells  []*Cell
	width  int
	height int

	sheetWidth int
}

func NewBackground(name string, sheet *ebiten.Image, geom SheetGeometry, cells []*Cell, width, height int) *Background {
	sheetWidth := 0
	if sheet != nil {
		sheetWidth = sheet.Bounds().Dx()
	}
	return &Background{
		Name:       name,
		sheet:      sheet,
		geom:       geom,
		cells:      cells,
		width:      width,
		height:     height,
		sheetWidth: sheetWidth,
	}
}

// draws resolves every populated cell into a draw call, row-major.
// Empty cells contribute nothing.
func (b *Background) draws() []tileDraw {
	if b.sheetWidth == 0 {
		return nil
	}

	var out []tileDraw
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			cell := b.cells[row*b.width+col]
			if cell == nil {
				continue
			}
			out = append(out, tileDraw{
				src:   b.geom.SourceRect(cell.ID, b.sheetWidth),
				x:     float64(col * b.geom.TileWidth),
				y:     float64(row * b.geom.TileHeight),
				flipH: cell.FlipH,
				flipV: cell.FlipV,
			})
		}
	}
	return out
}

// Draw paints the layer onto the scene buffer.
func (b *Background) Draw(dst *ebiten.Image) {
	for _, d := range b.draws() {
		tile := b.sheet.SubImage(d.src).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		w := float64(b.geom.TileWidth)
		h := float64(b.geom.TileHeight)
		if d.flipH {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(w, 0)
		}
		if d.flipV {
			op.GeoM.Scale(1, -1)
			op.GeoM.Translate(0, h)
		}
		op.GeoM.Translate(d.x, d.y)

		dst.DrawImage(tile, op)
	}
}
