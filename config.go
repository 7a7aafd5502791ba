package tileplay

import (
	"fmt"
	"image/color"
)

// SpriteConfig names one sheet image and the clips cut out of it.
type SpriteConfig struct {
	Name        string
	Path        string
	FrameWidth  int
	FrameHeight int
	Clips       []Clip
}

// CharacterConfig is one roster entry: who the character is, where it
// spawns and which sheets animate it.
type CharacterConfig struct {
	Name    string
	Role    string
	Spawn   Vector2
	Sprites []SpriteConfig
}

// Config is the whole startup surface of the program: the compiled-in
// asset list and roster, passed explicitly into loading. There are no
// flags or environment variables.
type Config struct {
	Title        string
	WindowWidth  int
	WindowHeight int

	MapPath    string
	Layers     []string // drawn back to front in this order
	Background color.Color

	Roster []CharacterConfig
}

// Validate catches configuration mistakes before any file is touched.
func (c *Config) Validate() error {
	if c.MapPath == "" {
		return fmt.Errorf("config: map path required")
	}
	if len(c.Layers) == 0 {
		return fmt.Errorf("config: at least one layer name required")
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.WindowWidth, c.WindowHeight)
	}
	for _, ch := range c.Roster {
		if ch.Name == "" {
			return fmt.Errorf("config: roster entry needs a name")
		}
		if len(ch.Sprites) == 0 {
			return fmt.Errorf("config: character %q needs at least one sprite", ch.Name)
		}
		for _, sp := range ch.Sprites {
			if sp.Path == "" {
				return fmt.Errorf("config: character %q sprite %q needs a sheet path", ch.Name, sp.Name)
			}
			if len(sp.Clips) == 0 {
				return fmt.Errorf("config: character %q sprite %q needs at least one clip", ch.Name, sp.Name)
			}
		}
	}
	return nil
}

// DefaultConfig is the fixed asset list and spawn roster of the
// prototype.
func DefaultConfig() *Config {
	return &Config{
		Title:        "tileplay",
		WindowWidth:  1280,
		WindowHeight: 720,

		MapPath:    "data/world.tmx",
		Layers:     []string{"background"},
		Background: color.Black,

		Roster: []CharacterConfig{
			{
				Name:  "ada",
				Role:  "guide",
				Spawn: NewVector2(96, 128),
				Sprites: []SpriteConfig{
					{
						Name:        "idle",
						Path:        "data/ada_idle.png",
						FrameWidth:  16,
						FrameHeight: 16,
						Clips: []Clip{
							{Name: "idle", Row: 0, FrameCount: 4, FPS: 5},
						},
					},
					{
						Name:        "walk",
						Path:        "data/ada_walk.png",
						FrameWidth:  16,
						FrameHeight: 16,
						Clips: []Clip{
							{Name: "walk", Row: 0, FrameCount: 6, FPS: 8},
						},
					},
				},
			},
			{
				Name:  "bram",
				Role:  "merchant",
				Spawn: NewVector2(208, 64),
				Sprites: []SpriteConfig{
					{
						Name:        "idle",
						Path:        "data/bram_idle.png",
						FrameWidth:  16,
						FrameHeight: 16,
						Clips: []Clip{
							{Name: "idle", Row: 0, FrameCount: 4, FPS: 5},
						},
					},
					{
						Name:        "walk",
						Path:        "data/bram_walk.png",
						FrameWidth:  16,
						FrameHeight: 16,
						Clips: []Clip{
							{Name: "walk", Row: 0, FrameCount: 6, FPS: 8},
						},
					},
				},
			},
		},
	}
}
