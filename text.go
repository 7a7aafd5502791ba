package tileplay

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type TextProps struct {
	Text  string
	X, Y  float64
	Color color.Color
	Font  font.Face
}

func DrawText(screen *ebiten.Image, props *TextProps) {
	if props == nil || props.Text == "" {
		return
	}

	if props.Font == nil {
		props.Font = basicfont.Face7x13
	}
	if props.Color == nil {
		props.Color = color.RGBA{255, 255, 255, 255}
	}

	text.Draw(screen, props.Text, props.Font, int(props.X), int(props.Y), props.Color)
}
