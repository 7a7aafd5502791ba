package tileplay

import (
	"fmt"
	"image"
)

// SheetGeometry describes how tiles are packed into a sheet texture.
type SheetGeometry struct {
	TileWidth  int
	TileHeight int
	Margin     int
	Spacing    int
}

// Columns returns how many tiles fit in one row of a sheet of the given
// pixel width.
func (g SheetGeometry) Columns(textureWidth int) int {
	return (textureWidth - g.Margin + g.Spacing) / (g.TileWidth + g.Spacing)
}

// Rows returns how many full tile rows the sheet holds.
func (g SheetGeometry) Rows(textureHeight int) int {
	return (textureHeight - g.Margin + g.Spacing) / (g.TileHeight + g.Spacing)
}

// Validate rejects geometry that cannot resolve any tile on the given
// sheet. The original prototype left a zero-column sheet as undefined
// indexing; here it is a load-time configuration error.
func (g SheetGeometry) Validate(textureWidth, textureHeight int) error {
	if g.TileWidth <= 0 || g.TileHeight <= 0 {
		return fmt.Errorf("tileset: tile size %dx%d must be positive", g.TileWidth, g.TileHeight)
	}
	if g.Margin < 0 || g.Spacing < 0 {
		return fmt.Errorf("tileset: margin %d and spacing %d must be non-negative", g.Margin, g.Spacing)
	}
	if g.TileWidth+g.Spacing <= 0 {
		return fmt.Errorf("tileset: tile width %d plus spacing %d must be positive", g.TileWidth, g.Spacing)
	}
	if cols := g.Columns(textureWidth); cols < 1 {
		return fmt.Errorf("tileset: no columns derivable from a %dpx wide sheet", textureWidth)
	}
	if rows := g.Rows(textureHeight); rows < 1 {
		return fmt.Errorf("tileset: no rows derivable from a %dpx tall sheet", textureHeight)
	}
	return nil
}

// SourceRect maps a linear tile id to its pixel rectangle within the
// sheet. Geometry must have been validated; ids past the sheet's bottom
// edge are caught by CheckTileID at load, not here.
func (g SheetGeometry) SourceRect(tileID uint32, textureWidth int) image.Rectangle {
	cols := uint32(g.Columns(textureWidth))
	x := int(tileID%cols) * g.TileWidth
	y := int(tileID/cols) * g.TileHeight
	return image.Rect(x, y, x+g.TileWidth, y+g.TileHeight)
}

// CheckTileID reports whether the tile id resolves inside the sheet.
func (g SheetGeometry) CheckTileID(tileID uint32, textureWidth, textureHeight int) error {
	limit := uint32(g.Columns(textureWidth) * g.Rows(textureHeight))
	if tileID >= limit {
		return fmt.Errorf("tileset: tile id %d resolves past the sheet (holds %d tiles)", tileID, limit)
	}
	return nil
}
