package tileplay

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene owns everything the render loop touches: the decoded map
// layers, the entity roster and the fixed-size offscreen buffer they
// all draw into. Loaded once before the loop starts, exclusively owned
// by it afterwards.
type Scene struct {
	Width  int // pixels: map width in tiles * tile width
	Height int

	Background color.Color
	Layers     []*Background
	Entities   []*Entity

	buffer *ebiten.Image
}

func NewScene(width, height int, background color.Color, layers []*Background, entities []*Entity) *Scene {
	if background == nil {
		background = color.Black
	}
	return &Scene{
		Width:      width,
		Height:     height,
		Background: background,
		Layers:     layers,
		Entities:   entities,
		buffer:     ebiten.NewImage(width, height),
	}
}

// Update advances every entity's animation clock by dt seconds.
func (s *Scene) Update(dt float64) {
	for _, e := range s.Entities {
		e.Update(dt)
	}
}

// Draw renders the frame into the offscreen buffer: layers back to
// front in declaration order, then entities in roster order with no
// depth sorting.
func (s *Scene) Draw() *ebiten.Image {
	s.buffer.Fill(s.Background)

	for _, layer := range s.Layers {
		layer.Draw(s.buffer)
	}
	for _, e := range s.Entities {
		e.Draw(s.buffer)
	}
	return s.buffer
}

// EntityByName returns the named entity, or nil.
func (s *Scene) EntityByName(name string) *Entity {
	for _, e := range s.Entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}
