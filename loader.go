package tileplay

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"go.uber.org/zap"
)

// sheet is one loaded tileset: its texture plus validated geometry.
type sheet struct {
	image *ebiten.Image
	geom  SheetGeometry
}

// LoadScene parses the map, loads and validates every tileset sheet,
// decodes the configured layers and builds the entity roster. Any
// failure here is fatal to the program; nothing is retried or skipped.
func LoadScene(cfg *Config, log *zap.SugaredLogger) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m, err := tiled.LoadFile(cfg.MapPath)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", cfg.MapPath, err)
	}
	if m.Width <= 0 || m.Height <= 0 || m.TileWidth <= 0 || m.TileHeight <= 0 {
		return nil, fmt.Errorf("map %s: missing grid dimensions", cfg.MapPath)
	}
	log.Infow("map loaded",
		"path", cfg.MapPath,
		"size", fmt.Sprintf("%dx%d", m.Width, m.Height),
		"tile", fmt.Sprintf("%dx%d", m.TileWidth, m.TileHeight),
	)

	sheets, err := loadSheets(m, log)
	if err != nil {
		return nil, err
	}

	var layers []*Background
	for _, name := range cfg.Layers {
		bg, err := decodeLayer(m, name, sheets)
		if err != nil {
			return nil, err
		}
		layers = append(layers, bg)
	}

	entities, err := buildRoster(cfg.Roster, log)
	if err != nil {
		return nil, err
	}

	return NewScene(
		m.Width*m.TileWidth,
		m.Height*m.TileHeight,
		cfg.Background,
		layers,
		entities,
	), nil
}

func loadSheets(m *tiled.Map, log *zap.SugaredLogger) (map[*tiled.Tileset]*sheet, error) {
	sheets := make(map[*tiled.Tileset]*sheet, len(m.Tilesets))
	for _, ts := range m.Tilesets {
		if ts.Image == nil {
			return nil, fmt.Errorf("tileset %s: no sheet image", ts.Name)
		}

		img, err := LoadImage(ts.GetFileFullPath(ts.Image.Source))
		if err != nil {
			return nil, fmt.Errorf("tileset %s: %w", ts.Name, err)
		}

		geom := SheetGeometry{
			TileWidth:  ts.TileWidth,
			TileHeight: ts.TileHeight,
			Margin:     ts.Margin,
			Spacing:    ts.Spacing,
		}
		if err := geom.Validate(img.Bounds().Dx(), img.Bounds().Dy()); err != nil {
			return nil, fmt.Errorf("tileset %s: %w", ts.Name, err)
		}

		log.Infow("tileset loaded", "name", ts.Name, "sheet", ts.Image.Source,
			"columns", geom.Columns(img.Bounds().Dx()))
		sheets[ts] = &sheet{image: img, geom: geom}
	}
	return sheets, nil
}

// decodeLayer turns one named tile layer into a Background. The layer
// must exist, its populated cells must all reference the same tileset
// and every tile id must resolve inside that tileset's sheet.
func decodeLayer(m *tiled.Map, name string, sheets map[*tiled.Tileset]*sheet) (*Background, error) {
	var layer *tiled.Layer
	for _, l := range m.Layers {
		if l.Name == name {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("map has no layer %q", name)
	}
	if len(layer.Tiles) != m.Width*m.Height {
		return nil, fmt.Errorf("layer %q: %d tiles for a %dx%d grid", name, len(layer.Tiles), m.Width, m.Height)
	}

	var sh *sheet
	var shTs *tiled.Tileset
	cells := make([]*Cell, len(layer.Tiles))
	for i, t := range layer.Tiles {
		if t.Nil {
			continue
		}

		if shTs == nil {
			shTs = t.Tileset
			sh = sheets[t.Tileset]
			if sh == nil {
				return nil, fmt.Errorf("layer %q: unknown tileset", name)
			}
		} else if t.Tileset != shTs {
			return nil, fmt.Errorf("layer %q: cells reference more than one tileset", name)
		}

		if err := sh.geom.CheckTileID(t.ID, sh.image.Bounds().Dx(), sh.image.Bounds().Dy()); err != nil {
			return nil, fmt.Errorf("layer %q cell %d: %w", name, i, err)
		}

		cells[i] = &Cell{
			ID:    t.ID,
			FlipH: t.HorizontalFlip,
			FlipV: t.VerticalFlip,
		}
	}

	var img *ebiten.Image
	var geom SheetGeometry
	if sh != nil {
		img = sh.image
		geom = sh.geom
	} else {
		// Fully empty layer: keep the map's cell size so positions
		// stay consistent, nothing will be drawn.
		geom = SheetGeometry{TileWidth: m.TileWidth, TileHeight: m.TileHeight}
	}

	return NewBackground(name, img, geom, cells, m.Width, m.Height), nil
}

func buildRoster(roster []CharacterConfig, log *zap.SugaredLogger) ([]*Entity, error) {
	var entities []*Entity
	for _, ch := range roster {
		var sprites []*Sprite
		for _, sc := range ch.Sprites {
			img, err := LoadImage(sc.Path)
			if err != nil {
				return nil, fmt.Errorf("character %s: %w", ch.Name, err)
			}
			anim, err := NewAnimator(sc.FrameWidth, sc.FrameHeight, sc.Clips...)
			if err != nil {
				return nil, fmt.Errorf("character %s: %w", ch.Name, err)
			}
			sprites = append(sprites, &Sprite{Name: sc.Name, Sheet: img, Animator: anim})
		}

		e, err := NewEntity(ch.Name, ch.Role, ch.Spawn, sprites...)
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
		log.Infow("character ready", "name", ch.Name, "role", ch.Role,
			"spawn", fmt.Sprintf("(%g,%g)", ch.Spawn.X, ch.Spawn.Y))
	}
	return entities, nil
}
