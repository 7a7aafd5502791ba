package tileplay

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game drives the scene through Ebiten's loop: fixed-tick animation
// updates, offscreen scene rendering, viewport composition into the
// window and the FPS overlay on top.
type Game struct {
	scene    *Scene
	viewport Viewport

	title        string
	windowWidth  int
	windowHeight int
}

func NewGame(scene *Scene, title string, windowWidth, windowHeight int) *Game {
	return &Game{
		scene: scene,
		viewport: Viewport{
			SceneWidth:  scene.Width,
			SceneHeight: scene.Height,
			BarColor:    scene.Background,
		},
		title:        title,
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
	}
}

func (g *Game) Update() error {
	g.scene.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.viewport.Compose(screen, g.scene.Draw())

	DrawText(screen, &TextProps{
		Text: fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()),
		X:    4,
		Y:    14,
	})
}

// Layout hands the real window size through so the viewport sees the
// dimensions it letterboxes against.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *Game) Run() error {
	ebiten.SetWindowSize(g.windowWidth, g.windowHeight)
	ebiten.SetWindowTitle(g.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(g)
}
