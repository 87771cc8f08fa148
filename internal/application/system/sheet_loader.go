package system

import (
	"image"

	"github.com/younwookim/runner/internal/domain/entity"
	"github.com/younwookim/runner/internal/infrastructure/config"
)

// TextureFunc turns a decoded image into a texture of the active renderer
type TextureFunc func(img image.Image) entity.Texture

// ImageTexture keeps the decoded image as the texture; used when running headless
func ImageTexture(img image.Image) entity.Texture {
	return img
}

// LoadSheet converts a SheetConfig into a SpriteSheet over texture
func LoadSheet(cfg *config.SheetConfig, texture entity.Texture) *entity.SpriteSheet {
	frames := make(map[string]entity.Cell, len(cfg.Frames))
	for name, cell := range cfg.Frames {
		frames[name] = entity.Cell{
			Frame:            sheetRect(cell.Frame),
			SpriteSourceSize: sheetRect(cell.SpriteSourceSize),
		}
	}
	return entity.NewSpriteSheet(entity.Sheet{Frames: frames}, texture)
}

func sheetRect(r config.RectConfig) entity.SheetRect {
	return entity.SheetRect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// LoadWorldAssets converts loaded assets into sheets and textures
func LoadWorldAssets(assets *config.Assets, texture TextureFunc) WorldAssets {
	return WorldAssets{
		CharacterSheet: LoadSheet(assets.CharacterSheet, texture(assets.CharacterImage)),
		TileSheet:      LoadSheet(assets.TileSheet, texture(assets.TileImage)),
		Background:     texture(assets.Background),
		Stone:          texture(assets.Stone),
	}
}

// LoadWalkConfig converts the world section of the tuning
func LoadWalkConfig(cfg config.TuningConfig) WalkConfig {
	return WalkConfig{
		TimelineMinimum: cfg.World.TimelineMinimum,
		ObstacleBuffer:  cfg.World.ObstacleBuffer,
		Nudge:           cfg.World.Nudge,
		ClearArea:       entity.NewRect(0, 0, cfg.Display.ScreenWidth, cfg.Physics.Height),
	}
}
