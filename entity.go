package tileplay

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite pairs a sheet texture with the animator that picks frames out
// of it.
type Sprite struct {
	Name     string
	Sheet    *ebiten.Image
	Animator *Animator
}

// Entity is a named actor: a fixed world position and one or more
// animated sprites, of which one is active at a time. Name and Role are
// purely descriptive. Entities are created once from the roster and
// never move or despawn.
type Entity struct {
	Name     string
	Role     string
	Position Vector2

	sprites []*Sprite
	active  int
}

func NewEntity(name, role string, position Vector2, sprites ...*Sprite) (*Entity, error) {
	if len(sprites) == 0 {
		return nil, fmt.Errorf("entity %q: at least one sprite required", name)
	}
	return &Entity{
		Name:     name,
		Role:     role,
		Position: position,
		sprites:  sprites,
	}, nil
}

// SetSprite activates the named sprite, resetting its animator so the
// clip starts from frame zero.
func (e *Entity) SetSprite(name string) error {
	for i, s := range e.sprites {
		if s.Name != name {
			continue
		}
		if i != e.active {
			e.active = i
			s.Animator.Reset()
		}
		return nil
	}
	return fmt.Errorf("entity %q: no sprite %q", e.Name, name)
}

// ActiveSprite returns the sprite currently drawn.
func (e *Entity) ActiveSprite() *Sprite {
	return e.sprites[e.active]
}

// Update advances the active sprite's animation clock.
func (e *Entity) Update(dt float64) {
	e.sprites[e.active].Animator.Advance(dt)
}

// Draw paints the current animation frame at the entity's position.
func (e *Entity) Draw(dst *ebiten.Image) {
	s := e.sprites[e.active]
	frame := s.Sheet.SubImage(s.Animator.Frame()).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(e.Position.X, e.Position.Y)
	dst.DrawImage(frame, op)
}
