package tileplay

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Viewport blits the fixed-size scene buffer into the window, scaled by
// the largest uniform factor that keeps the whole scene visible.
// Whatever the zoom leaves uncovered is letterboxed with the bar color.
//
// Ebiten's offscreen images share the window's Y orientation, so no
// vertical flip happens at the blit.
type Viewport struct {
	SceneWidth  int
	SceneHeight int
	BarColor    color.Color
}

// Fit returns the uniform zoom factor and the top-left offset of the
// centered destination rectangle for a window of the given size.
func (v Viewport) Fit(windowWidth, windowHeight int) (zoom, offsetX, offsetY float64) {
	zx := float64(windowWidth) / float64(v.SceneWidth)
	zy := float64(windowHeight) / float64(v.SceneHeight)
	zoom = zx
	if zy < zx {
		zoom = zy
	}

	destW := float64(v.SceneWidth) * zoom
	destH := float64(v.SceneHeight) * zoom
	offsetX = (float64(windowWidth) - destW) / 2
	offsetY = (float64(windowHeight) - destH) / 2
	return zoom, offsetX, offsetY
}

// Compose clears the window to the bar color and blits the scene buffer
// scaled and centered.
func (v Viewport) Compose(window, scene *ebiten.Image) {
	window.Fill(v.BarColor)

	zoom, offsetX, offsetY := v.Fit(window.Bounds().Dx(), window.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(offsetX, offsetY)
	window.DrawImage(scene, op)
}
